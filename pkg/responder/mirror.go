package responder

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// mirror - локальная копия снапшота заявок, новые первыми.
// Снапшот и инкрементальные события сливаются через upsert по ID,
// поэтому гонка "снапшот против события" не даёт дубликатов.
type mirror struct {
	mu    sync.RWMutex
	items []*models.HelpRequest
}

// setSnapshot заменяет содержимое зеркала результатом полного снапшота
func (m *mirror) setSnapshot(items []*models.HelpRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]*models.HelpRequest, len(items))
	copy(m.items, items)
}

// upsert обрабатывает newHelpRequest: известный ID заменяется на месте,
// новая заявка добавляется в начало списка
func (m *mirror) upsert(request *models.HelpRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == request.ID {
			m.items[i] = request
			return
		}
	}
	m.items = append([]*models.HelpRequest{request}, m.items...)
}

// replace обрабатывает requestUpdated: запись заменяется на месте,
// неизвестный ID молча отбрасывается
func (m *mirror) replace(request *models.HelpRequest) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID == request.ID {
			m.items[i] = request
			return true
		}
	}
	return false
}

func (m *mirror) get(id uuid.UUID) (*models.HelpRequest, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// all возвращает копию списка заявок в текущем порядке
func (m *mirror) all() []*models.HelpRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.HelpRequest, len(m.items))
	copy(out, m.items)
	return out
}

// filtered возвращает заявки, у которых разрешённость статуса равна resolved
func (m *mirror) filtered(resolved bool) []*models.HelpRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.HelpRequest, 0, len(m.items))
	for _, item := range m.items {
		if item.Status.IsResolved() == resolved {
			out = append(out, item)
		}
	}
	return out
}
