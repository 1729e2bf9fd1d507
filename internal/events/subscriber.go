package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/metrics"
	"github.com/shenikar/emergency_dispatch_system/internal/ws"
	"github.com/sirupsen/logrus"
)

// Subscriber слушает Redis pub/sub канал и передаёт события локальному
// WebSocket-хабу. По одному подписчику на инстанс сервиса.
type Subscriber struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	hub         *ws.Hub
	channel     string
}

func NewSubscriber(client *redis.Client, logger *logrus.Logger, hub *ws.Hub, channel string) *Subscriber {
	return &Subscriber{
		redisClient: client,
		logger:      logger,
		hub:         hub,
		channel:     channel,
	}
}

// Start запускает горутину подписки на канал событий
func (s *Subscriber) Start(ctx context.Context) {
	s.logger.WithField("channel", s.channel).Info("Starting events subscriber...")
	go func() {
		pubsub := s.redisClient.Subscribe(ctx, s.channel)
		defer func() {
			if err := pubsub.Close(); err != nil {
				s.logger.WithError(err).Warn("Failed to close pubsub subscription")
			}
		}()

		msgCh := pubsub.Channel()
		for {
			select {
			case msg, ok := <-msgCh:
				if !ok {
					s.logger.Warn("Events pubsub channel closed by Redis")
					return
				}
				s.handleMessage(msg)
			case <-ctx.Done():
				s.logger.Info("Stopping events subscriber.")
				return
			}
		}
	}()
}

func (s *Subscriber) handleMessage(msg *redis.Message) {
	var envelope Envelope
	if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
		s.logger.WithError(err).Error("Failed to unmarshal event envelope from Redis")
		return
	}

	s.hub.Broadcast(ws.Message{
		Type: envelope.Event,
		Data: envelope.Data,
	})
	metrics.EventsDelivered.WithLabelValues(envelope.Event).Inc()
}
