package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHub поднимает хаб и HTTP-сервер, принимающий WebSocket-подключения
func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	hub := NewHub(context.Background(), logger)
	go hub.Start()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.HandleConnection(conn)
	}))

	t.Cleanup(func() {
		hub.Shutdown()
		server.Close()
	})

	return hub, server
}

// dialTestHub подключается к тестовому серверу как сессия дашборда
func dialTestHub(t *testing.T, server *httptest.Server) *websocket.Conn {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close(websocket.StatusNormalClosure, "test done")
	})
	return conn
}

func TestHub_RegistersAndUnregistersClients(t *testing.T) {
	hub, server := newTestHub(t)

	conn := dialTestHub(t, server)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond, "клиент должен зарегистрироваться в хабе")

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, 2*time.Second, 10*time.Millisecond, "клиент должен выписаться после разрыва")
}

func TestHub_BroadcastDeliversToAllClients(t *testing.T) {
	hub, server := newTestHub(t)

	first := dialTestHub(t, server)
	second := dialTestHub(t, server)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload := json.RawMessage(`{"id":"abc","status":"Pending"}`)
	hub.Broadcast(Message{Type: "newHelpRequest", Data: payload})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, conn := range []*websocket.Conn{first, second} {
		var got Message
		require.NoError(t, wsjson.Read(ctx, conn, &got))
		assert.Equal(t, "newHelpRequest", got.Type)
		assert.JSONEq(t, string(payload), string(got.Data))
	}
}

func TestHub_BroadcastToNoClients_DoesNotBlock(t *testing.T) {
	hub, _ := newTestHub(t)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(Message{Type: "requestUpdated", Data: json.RawMessage(`{}`)})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("рассылка без подписчиков не должна блокироваться")
	}
}

func TestHub_LateSubscriberMissesEarlierEvents(t *testing.T) {
	hub, server := newTestHub(t)

	// Событие уходит до подключения: replay отсутствует
	hub.Broadcast(Message{Type: "newHelpRequest", Data: json.RawMessage(`{"id":"early"}`)})

	conn := dialTestHub(t, server)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: "requestUpdated", Data: json.RawMessage(`{"id":"late"}`)})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got Message
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, "requestUpdated", got.Type)
	assert.JSONEq(t, `{"id":"late"}`, string(got.Data))
}

func TestHub_Shutdown_ClosesClients(t *testing.T) {
	hub, server := newTestHub(t)

	conn := dialTestHub(t, server)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// После остановки хаба чтение завершается ошибкой закрытия
	var got Message
	err := wsjson.Read(ctx, conn, &got)
	require.Error(t, err)
}
