package ws

import (
	"context"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Hub - реестр подключённых сессий дашборда. Хранит только живые
// подключения, никакого состояния заявок и никакого replay: сессия,
// подключившаяся позже публикации, событие не увидит.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	mu         sync.RWMutex
	logger     *logrus.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewHub(ctx context.Context, logger *logrus.Logger) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start запускает цикл обработки подключений. Блокирует вызывающую горутину.
func (h *Hub) Start() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			metrics.ConnectedClients.Inc()
			h.logger.WithField("client_id", client.ID).Info("Responder session connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				metrics.ConnectedClients.Dec()
				h.logger.WithField("client_id", client.ID).Info("Responder session disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Клиент не успевает вычитывать - отключаем его,
					// снапшот при переподключении вернёт актуальное состояние
					go h.forceDisconnect(client)
				}
			}
			h.mu.RUnlock()
		case <-h.ctx.Done():
			return
		}
	}
}

// HandleConnection оборачивает принятое WebSocket-соединение в клиента хаба
func (h *Hub) HandleConnection(conn *websocket.Conn) {
	client := newClient(uuid.NewString(), conn, h)
	client.start()
}

// Broadcast рассылает сообщение всем подключённым на данный момент сессиям.
// Доставка at-most-once, без подтверждений и повторов.
func (h *Hub) Broadcast(message Message) {
	select {
	case h.broadcast <- message:
	case <-h.ctx.Done():
	}
}

// ClientCount возвращает число подключённых сессий
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) forceDisconnect(c *Client) {
	c.close()
}

// Shutdown останавливает цикл и закрывает все подключения
func (h *Hub) Shutdown() {
	h.cancel()
	h.mu.Lock()
	for _, client := range h.clients {
		client.close()
	}
	h.mu.Unlock()
}
