package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const cacheTTL = 5 * time.Minute

type HelpRequestRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewHelpRequestRepository(db *pgxpool.Pool, redisClient *redis.Client) service.HelpRequestRepository {
	return &HelpRequestRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о заявке в бд
func (r *HelpRequestRepository) Create(ctx context.Context, request *models.HelpRequest) error {
	query := `
		INSERT INTO help_requests (location, emergency_type, victim_count, medical_info, contact_number, image, status)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.Longitude,
		request.Latitude,
		request.EmergencyType,
		request.VictimCount,
		request.MedicalInfo,
		request.ContactNumber,
		request.Image,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create help request: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по её UUID
func (r *HelpRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	request := &models.HelpRequest{}
	query := `
		SELECT
			id,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			emergency_type,
			victim_count,
			medical_info,
			contact_number,
			image,
			status,
			created_at,
			updated_at
		FROM help_requests
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.Longitude,
		&request.Latitude,
		&request.EmergencyType,
		&request.VictimCount,
		&request.MedicalInfo,
		&request.ContactNumber,
		&request.Image,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("help request with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get help request by id: %w", err)
	}
	return request, nil
}

// ListAll возвращает полный снапшот заявок, новые первыми.
// Без пагинации и без фильтрации - контракт снапшота для клиентов.
func (r *HelpRequestRepository) ListAll(ctx context.Context) ([]*models.HelpRequest, error) {
	query := `
		SELECT
			id,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			emergency_type,
			victim_count,
			medical_info,
			contact_number,
			image,
			status,
			created_at,
			updated_at
		FROM help_requests
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list help requests: %w", err)
	}
	defer rows.Close()

	return scanHelpRequests(rows)
}

// UpdateStatus перезаписывает статус и updated_at, возвращая обновлённую
// запись целиком. Значение статуса хранилище не проверяет - это граница сервиса.
func (r *HelpRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.HelpRequest, error) {
	request := &models.HelpRequest{}
	query := `
		UPDATE help_requests SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING
			id,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			emergency_type,
			victim_count,
			medical_info,
			contact_number,
			image,
			status,
			created_at,
			updated_at;
	`
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&request.ID,
		&request.Longitude,
		&request.Latitude,
		&request.EmergencyType,
		&request.VictimCount,
		&request.MedicalInfo,
		&request.ContactNumber,
		&request.Image,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("help request with id %s not found for update: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update help request status: %w", err)
	}
	return request, nil
}

// FindNearby находит незавершённые заявки, попадающие в радиус от точки
func (r *HelpRequestRepository) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.HelpRequest, error) {
	query := `
		SELECT
			id,
			ST_X(location::geometry) as longitude,
			ST_Y(location::geometry) as latitude,
			emergency_type,
			victim_count,
			medical_info,
			contact_number,
			image,
			status,
			created_at,
			updated_at
		FROM help_requests
		WHERE
			status <> 'Resolved'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby help requests: %w", err)
	}
	defer rows.Close()

	return scanHelpRequests(rows)
}

func scanHelpRequests(rows pgx.Rows) ([]*models.HelpRequest, error) {
	requests := make([]*models.HelpRequest, 0)
	for rows.Next() {
		request := &models.HelpRequest{}
		err := rows.Scan(
			&request.ID,
			&request.Longitude,
			&request.Latitude,
			&request.EmergencyType,
			&request.VictimCount,
			&request.MedicalInfo,
			&request.ContactNumber,
			&request.Image,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan help request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during help request rows iteration: %w", err)
	}
	return requests, nil
}

// GetFromCache пытается получить заявку из Redis
func (r *HelpRequestRepository) GetFromCache(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	key := cacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get help request from cache: %w", err)
	}

	request := &models.HelpRequest{}
	if err := json.Unmarshal(val, request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal help request from cache: %w", err)
	}
	return request, nil
}

// SetCache сохраняет заявку в Redis
func (r *HelpRequestRepository) SetCache(ctx context.Context, request *models.HelpRequest) error {
	val, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal help request for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(request.ID), val, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set help request in cache: %w", err)
	}
	return nil
}

// InvalidateCache удаляет заявку из Redis кэша
func (r *HelpRequestRepository) InvalidateCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate help request cache: %w", err)
	}
	return nil
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("help_request:%s", id.String())
}
