package ws

import (
	"Source_Health_Sync/internal/health-sync/adapter"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type statePayload struct {
	Overview adapter.Overview     `json:"overview"`
	Sources  []adapter.SourceView `json:"sources"`
}

// Hub pushes the current health view to each connected dashboard client
// whenever the controller accepts a mutation.
type Hub struct {
	logger  *zap.Logger
	monitor adapter.HealthMonitorAdapter
}

func NewHub(logger *zap.Logger, monitor adapter.HealthMonitorAdapter) *Hub {
	return &Hub{
		logger:  logger,
		monitor: monitor,
	}
}

func (h *Hub) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		changes, unsubscribe := h.monitor.Subscribe()
		go h.writePump(conn, changes, unsubscribe)
		go h.readPump(conn)
	}
}

func (h *Hub) writePump(conn *websocket.Conn, changes <-chan struct{}, unsubscribe func()) {
	defer func() {
		unsubscribe()
		conn.Close()
	}()

	// initial state so the client renders without waiting for a change
	if !h.send(conn) {
		return
	}
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
			if !h.send(conn) {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) send(conn *websocket.Conn) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(statePayload{
		Overview: h.monitor.Overview(),
		Sources:  h.monitor.Sources(),
	})
	if err != nil {
		h.logger.Debug("websocket write failed, dropping client", zap.Error(err))
		return false
	}
	return true
}

// readPump discards inbound frames; the channel is push-only. Its exit (on
// client close) tears the connection down, which ends the write pump too.
func (h *Hub) readPump(conn *websocket.Conn) {
	defer conn.Close()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
