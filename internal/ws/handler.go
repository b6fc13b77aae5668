package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sessionfs/sessionfs/internal/logging"
	"github.com/sessionfs/sessionfs/internal/monitoring"
	"github.com/sessionfs/sessionfs/internal/registry"
	"github.com/sessionfs/sessionfs/internal/store"
	"github.com/sessionfs/sessionfs/internal/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket connections and forwards the registry's
// change notifications and the store's moved notifications to clients.
type Handler struct {
	registry *registry.Manager
	store    *store.Store
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(reg *registry.Manager, st *store.Store, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		registry: reg,
		store:    st,
		metrics:  metrics,
		logger:   logger,
	}
}

// conn wraps a websocket connection with a write lock: notifications
// arrive from whichever goroutine performed the mutation.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) send(data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(data)
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	client := &conn{ws: ws}

	// Forward registry change notifications so the UI re-queries the list.
	changeSub := h.registry.Subscribe(func(changes []types.RecordChange) {
		h.metrics.WSEvents.WithLabelValues("sessions_changed").Inc()
		client.send(map[string]interface{}{
			"type":      "sessions_changed",
			"changes":   changes,
			"timestamp": time.Now().Unix(),
		})
	})
	defer changeSub.Unsubscribe()

	// Forward moved notifications from the store layer.
	movedSub := h.store.SubscribeMoved(func(ev types.MovedEvent) {
		h.metrics.WSEvents.WithLabelValues("resource_moved").Inc()
		client.send(map[string]interface{}{
			"type":      "resource_moved",
			"old_key":   ev.OldKey,
			"new_key":   ev.NewKey,
			"timestamp": time.Now().Unix(),
		})
	})
	defer movedSub.Unsubscribe()

	client.send(map[string]interface{}{
		"type":    "system",
		"message": "Connected to SessionFS event stream",
	})

	for {
		var msg types.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			h.logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		switch msg.Type {
		case "list_sessions":
			client.send(map[string]interface{}{
				"type":     "sessions",
				"sessions": h.registry.List(),
			})
		case "ping":
			client.send(map[string]interface{}{"type": "pong"})
		default:
			client.send(map[string]interface{}{
				"type":    "error",
				"message": "unknown message type",
			})
		}
	}
}
