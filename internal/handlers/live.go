package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avc/analytics-dashboard/internal/store"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveSendBuffer = 16
)

// ActionSource уведомляет о примененных действиях
type ActionSource interface {
	Subscribe(l store.Listener) func()
}

// LiveHandler транслирует добавленные в хранилище уведомления по websocket
type LiveHandler struct {
	source   ActionSource
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewLiveHandler создает новый LiveHandler
func NewLiveHandler(source ActionSource, logger *zap.Logger) *LiveHandler {
	return &LiveHandler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// Live открывает websocket и отправляет каждое AddNotification клиенту.
// Медленный клиент пропускает сообщения, не блокируя хранилище.
func (h *LiveHandler) Live(w http.ResponseWriter, r *http.Request) {
	send := make(chan []byte, liveSendBuffer)

	// Подписка до Upgrade, чтобы не потерять уведомления сразу после рукопожатия
	unsubscribe := h.source.Subscribe(func(action store.Action) {
		add, ok := action.(store.AddNotification)
		if !ok {
			return
		}
		message, err := json.Marshal(add.Notification)
		if err != nil {
			h.logger.Error("failed to encode live notification", zap.Error(err))
			return
		}
		select {
		case send <- message:
		default:
			h.logger.Warn("live client is slow, dropping notification", zap.String("id", add.Notification.ID))
		}
	})
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	requestID := GetRequestID(r.Context())
	h.logger.Info("live client connected", zap.String("request_id", requestID))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(livePongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(livePongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			h.logger.Info("live client disconnected", zap.String("request_id", requestID))
			return
		case message := <-send:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Warn("failed to write live notification", zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
