// Package responder - клиентская библиотека дашборда ответственного.
// Держит одно общее WebSocket-подключение на процесс: компоненты дашборда
// регистрируют обработчики через Subscribe, а не открывают свои сокеты.
package responder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/events"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// Handler - обработчик события заявки, зарегистрированный компонентом дашборда
type Handler func(event string, request *models.HelpRequest)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mirror mirror

	mu       sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
	conn     *websocket.Conn
	cancel   context.CancelFunc
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		handlers:   make(map[string]map[int]Handler),
	}
}

// Connect загружает полный снапшот заявок и открывает подключение к каналу
// вещания. Снапшот обязателен: канал не даёт catch-up, события лишь
// накладываются поверх точки во времени.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.fetchSnapshot(ctx); err != nil {
		return err
	}

	wsURL := fmt.Sprintf("%s/api/v1/ws?api_key=%s", c.baseURL, c.apiKey)
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("responder: failed to dial event channel: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.conn = conn
	c.cancel = cancel
	c.mu.Unlock()

	go c.readLoop(runCtx, conn)
	return nil
}

// Close закрывает общее подключение
func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "closing")
	}
}

// Subscribe регистрирует обработчик события и возвращает функцию отписки.
// Подключение одно на всех подписчиков.
func (c *Client) Subscribe(event string, handler Handler) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]Handler)
	}
	id := c.nextID
	c.nextID++
	c.handlers[event][id] = handler

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[event], id)
	}
}

// Snapshot возвращает текущее зеркало заявок, новые первыми
func (c *Client) Snapshot() []*models.HelpRequest {
	return c.mirror.all()
}

// Active возвращает незавершённые заявки
func (c *Client) Active() []*models.HelpRequest {
	return c.mirror.filtered(false)
}

// History возвращает завершённые заявки
func (c *Client) History() []*models.HelpRequest {
	return c.mirror.filtered(true)
}

// Get возвращает заявку из зеркала по ID
func (c *Client) Get(id uuid.UUID) (*models.HelpRequest, bool) {
	return c.mirror.get(id)
}

func (c *Client) fetchSnapshot(ctx context.Context) error {
	url := c.baseURL + "/api/v1/requests"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("responder: failed to create snapshot request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("responder: snapshot fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("responder: snapshot fetch returned status %d", resp.StatusCode)
	}

	var snapshot []*models.HelpRequest
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return fmt.Errorf("responder: failed to decode snapshot: %w", err)
	}

	c.mirror.setSnapshot(snapshot)
	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var envelope events.Envelope
		if err := wsjson.Read(ctx, conn, &envelope); err != nil {
			return
		}

		request := &models.HelpRequest{}
		if err := json.Unmarshal(envelope.Data, request); err != nil {
			continue
		}

		c.apply(envelope.Event, request)
		c.dispatch(envelope.Event, request)
	}
}

// apply сливает событие в зеркало
func (c *Client) apply(event string, request *models.HelpRequest) {
	switch event {
	case events.EventNewHelpRequest:
		c.mirror.upsert(request)
	case events.EventRequestUpdated:
		c.mirror.replace(request)
	}
}

func (c *Client) dispatch(event string, request *models.HelpRequest) {
	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.handlers[event]))
	for _, h := range c.handlers[event] {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(event, request)
	}
}
