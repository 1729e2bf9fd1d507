package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/events"
	"github.com/shenikar/emergency_dispatch_system/internal/metrics"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Типизированные ошибки границы сервиса, хендлеры отображают их в HTTP-коды
var (
	ErrNotFound      = errors.New("help request not found")
	ErrInvalidStatus = errors.New("invalid status value")
)

// Представления списка заявок. История - только Resolved, всё остальное активно.
const (
	ViewAll     = "all"
	ViewActive  = "active"
	ViewHistory = "history"
)

// HelpRequestRepository определяет контракт для работы с хранилищем заявок
type HelpRequestRepository interface {
	Create(ctx context.Context, request *models.HelpRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error)
	ListAll(ctx context.Context) ([]*models.HelpRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.HelpRequest, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.HelpRequest, error)
	GetFromCache(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error)
	SetCache(ctx context.Context, request *models.HelpRequest) error
	InvalidateCache(ctx context.Context, id uuid.UUID) error
}

// HelpRequestService определяет контракт для бизнес-логики жизненного цикла заявки
type HelpRequestService interface {
	Report(ctx context.Context, request *models.HelpRequest) error
	GetHelpRequest(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error)
	ListHelpRequests(ctx context.Context, view string) ([]*models.HelpRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.HelpRequest, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.HelpRequest, error)
}

type helpRequestService struct {
	repo      HelpRequestRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher events.Publisher
	dispatch  webhook.Publisher
}

func NewHelpRequestService(repo HelpRequestRepository, logger *logrus.Logger, cfg *config.Config, publisher events.Publisher, dispatch webhook.Publisher) HelpRequestService {
	return &helpRequestService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		dispatch:  dispatch,
	}
}

// Report сохраняет новую заявку и рассылает событие newHelpRequest.
// Порядок фиксирован: сначала запись в хранилище, затем публикация, чтобы
// получатель события всегда мог перечитать заявку из хранилища.
func (s *helpRequestService) Report(ctx context.Context, request *models.HelpRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "help_request",
		"method":  "Report",
		"type":    request.EmergencyType,
	})
	log.Info("Attempting to report a new help request")

	request.Status = models.StatusPending
	if err := s.repo.Create(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create help request in repository")
		return fmt.Errorf("service: could not create help request: %w", err)
	}

	if err := s.repo.SetCache(ctx, request); err != nil {
		log.WithError(err).Warn("Failed to warm help request cache")
	}

	metrics.HelpRequestsReported.Inc()
	s.publish(ctx, events.EventNewHelpRequest, request)

	if err := s.dispatch.Publish(ctx, webhook.DispatchEvent{
		Request:   request,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue dispatch webhook")
	}

	log.WithField("request_id", request.ID).Info("Help request reported successfully")
	return nil
}

// GetHelpRequest получает заявку по ID, сначала из кеша, затем из бд
func (s *helpRequestService) GetHelpRequest(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "help_request",
		"method":     "GetHelpRequest",
		"request_id": id,
	})

	cached, err := s.repo.GetFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read help request cache")
	}
	if cached != nil {
		metrics.CacheHits.WithLabelValues("get_help_request").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("get_help_request").Inc()

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get help request from repository")
		return nil, fmt.Errorf("service: could not get help request: %w", err)
	}

	if err := s.repo.SetCache(ctx, request); err != nil {
		log.WithError(err).Warn("Failed to set help request cache")
	}
	return request, nil
}

// ListHelpRequests возвращает полный снапшот заявок (новые первыми) и применяет
// представление active/history поверх него. Хранилище фильтрацию не делает.
func (s *helpRequestService) ListHelpRequests(ctx context.Context, view string) ([]*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "help_request",
		"method":  "ListHelpRequests",
		"view":    view,
	})

	requests, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list help requests from repository")
		return nil, fmt.Errorf("service: could not list help requests: %w", err)
	}

	switch view {
	case ViewActive, ViewHistory:
		wantResolved := view == ViewHistory
		filtered := make([]*models.HelpRequest, 0, len(requests))
		for _, r := range requests {
			if r.Status.IsResolved() == wantResolved {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}

	log.WithField("count", len(requests)).Info("Help requests listed successfully")
	return requests, nil
}

// UpdateStatus применяет смену статуса и рассылает событие requestUpdated.
// Пустой статус сохраняет текущий, но запись всё равно перезаписывается и
// событие всё равно публикуется - поведение исходной системы.
func (s *helpRequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "help_request",
		"method":     "UpdateStatus",
		"request_id": id,
		"status":     status,
	})
	log.Info("Attempting to update help request status")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent help request")
		return nil, fmt.Errorf("service: help request %s not found for update: %w", id, err)
	}

	next := existing.Status
	if status != "" {
		parsed, ok := models.ParseStatus(status)
		if !ok {
			log.Warn("Rejected non-canonical status value")
			return nil, fmt.Errorf("service: %w: %q", ErrInvalidStatus, status)
		}
		next = parsed
	}

	updated, err := s.repo.UpdateStatus(ctx, id, string(next))
	if err != nil {
		log.WithError(err).Error("Failed to update help request status in repository")
		return nil, fmt.Errorf("service: could not update help request status: %w", err)
	}

	if err := s.repo.InvalidateCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate help request cache")
	}

	metrics.StatusUpdates.WithLabelValues(string(next)).Inc()
	s.publish(ctx, events.EventRequestUpdated, updated)

	log.Info("Help request status updated successfully")
	return updated, nil
}

// FindNearby находит незавершённые заявки в радиусе от точки
func (s *helpRequestService) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "help_request",
		"method":  "FindNearby",
	})

	requests, err := s.repo.FindNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby help requests")
		return nil, fmt.Errorf("service: could not find nearby help requests: %w", err)
	}
	return requests, nil
}

// publish отправляет событие в канал вещания. Доставка best-effort: ошибка
// публикации логируется и не влияет на результат запроса.
func (s *helpRequestService) publish(ctx context.Context, event string, request *models.HelpRequest) {
	if err := s.publisher.Publish(ctx, event, request); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event":      event,
			"request_id": request.ID,
		}).Warn("Failed to publish help request event")
		return
	}
	metrics.EventsPublished.WithLabelValues(event).Inc()
}
