package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	webhookQueueKey = "dispatch_webhook_events"
)

// DispatchEvent - уведомление внешнего диспетчерского центра о новой заявке
type DispatchEvent struct {
	Request   *models.HelpRequest `json:"request"`
	Timestamp time.Time           `json:"timestamp"`
}

// Publisher - интерфейс для постановки вебхуков в очередь доставки
type Publisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish добавляет событие в очередь доставки вебхуков
func (p *RedisPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH кладёт событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue dispatch event to Redis: %w", err)
	}
	return nil
}
