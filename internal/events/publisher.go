package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// Имена событий канала вещания
const (
	EventNewHelpRequest = "newHelpRequest"
	EventRequestUpdated = "requestUpdated"
)

// Envelope - конверт события: имя и полная запись заявки в JSON.
// В таком же виде конверт уходит сессиям дашборда по WebSocket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Publisher - интерфейс публикации событий заявок
type Publisher interface {
	Publish(ctx context.Context, event string, request *models.HelpRequest) error
}

// RedisPublisher публикует события в Redis pub/sub канал, откуда их
// забирают подписчики всех инстансов сервиса
type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		channel:     channel,
	}
}

// Publish отправляет конверт события в канал
func (p *RedisPublisher) Publish(ctx context.Context, event string, request *models.HelpRequest) error {
	data, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal help request event payload: %w", err)
	}

	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}
