package models

// Status - положение заявки в жизненном цикле
// Pending -> In Progress -> On Scene -> Resolved
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusOnScene    Status = "On Scene"
	StatusResolved   Status = "Resolved"
)

// ParseStatus проверяет, что строка является одним из канонических статусов
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusOnScene, StatusResolved:
		return Status(s), true
	}
	return "", false
}

// IsResolved - правило разбиения на active/history: в историю попадают
// только завершённые заявки, всё остальное считается активным
func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// Next возвращает следующий статус по каноническому пути и подпись действия
// для дашборда. Для Resolved действий больше нет.
func (s Status) Next() (Status, string, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, "Accept", true
	case StatusInProgress:
		return StatusOnScene, "Arrived on Scene", true
	case StatusOnScene:
		return StatusResolved, "Mark as Resolved", true
	}
	return "", "", false
}

// Variant возвращает вариант отображения статуса на дашборде
func (s Status) Variant() string {
	switch s {
	case StatusPending:
		return "warning"
	case StatusInProgress:
		return "info"
	case StatusOnScene:
		return "primary"
	case StatusResolved:
		return "success"
	}
	return "secondary"
}
