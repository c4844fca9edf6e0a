package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/infrastructure/logging"
	"github.com/forgeui/backend/internal/infrastructure/monitoring"
	"github.com/forgeui/backend/internal/shared/types"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Handler serves the live-preview websocket. Clients send blueprints
// and receive generated source per target as they edit.
type Handler struct {
	engine   *generator.Engine
	metrics  *monitoring.Metrics
	log      *logging.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler.
func NewHandler(engine *generator.Engine, metrics *monitoring.Metrics, log *logging.Logger) *Handler {
	return &Handler{
		engine:  engine,
		metrics: metrics,
		log:     log.Named("ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// outbound is the message shape sent to clients.
type outbound struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}

// wsConn serializes writes: the connection carries frames from both the
// dispatch loop and the keepalive ticker, and gorilla/websocket allows
// only one concurrent writer.
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.WriteJSON(v)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.WriteMessage(websocket.PingMessage, nil)
}

// Handle upgrades the connection and serves the preview loop.
func (h *Handler) Handle(c *gin.Context) {
	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	conn := &wsConn{Conn: raw}
	defer conn.Close()

	h.metrics.WSConnectionsActive.Inc()
	defer h.metrics.WSConnectionsActive.Dec()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.write(conn, outbound{Type: "welcome"})

	done := make(chan struct{})
	defer close(done)
	go h.keepalive(conn, done)

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}
		h.metrics.WSMessagesTotal.WithLabelValues(msg.Type, "in").Inc()
		h.dispatch(conn, &msg)
	}
}

func (h *Handler) dispatch(conn *wsConn, msg *types.WSMessage) {
	switch msg.Type {
	case "generate":
		h.generate(conn, msg)
	case "generate_all":
		h.generateAll(conn, msg)
	case "ping":
		h.write(conn, outbound{Type: "pong"})
	default:
		h.write(conn, outbound{Type: "error", Error: "unknown message type: " + msg.Type})
	}
}

func (h *Handler) generate(conn *wsConn, msg *types.WSMessage) {
	target := resolveTarget(msg.Target)
	opts := resolveOptions(msg.Options)

	start := time.Now()
	source, err := h.engine.GenerateJSON(msg.Blueprint, target, opts)
	h.metrics.RecordGeneration(string(target), time.Since(start), err == nil)
	if err != nil {
		h.write(conn, outbound{Type: "error", Target: string(target), Error: err.Error()})
		return
	}

	h.write(conn, outbound{Type: "source", Target: string(target), Source: source})
}

// generateAll streams one source message per target so previews render
// as each backend finishes.
func (h *Handler) generateAll(conn *wsConn, msg *types.WSMessage) {
	targets := generator.Targets()
	if len(msg.Targets) > 0 {
		targets = make([]generator.Target, 0, len(msg.Targets))
		for _, raw := range msg.Targets {
			targets = append(targets, resolveTarget(raw))
		}
	}

	opts := resolveOptions(msg.Options)

	for _, target := range targets {
		start := time.Now()
		source, err := h.engine.GenerateJSON(msg.Blueprint, target, opts)
		h.metrics.RecordGeneration(string(target), time.Since(start), err == nil)
		if err != nil {
			h.write(conn, outbound{Type: "error", Target: string(target), Error: err.Error()})
			return
		}
		h.write(conn, outbound{Type: "source", Target: string(target), Source: source})
	}

	h.write(conn, outbound{Type: "complete"})
}

func (h *Handler) write(conn *wsConn, msg outbound) {
	if err := conn.writeJSON(msg); err != nil {
		h.log.Debug("websocket write failed", zap.Error(err))
		return
	}
	h.metrics.WSMessagesTotal.WithLabelValues(msg.Type, "out").Inc()
}

func (h *Handler) keepalive(conn *wsConn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func resolveTarget(raw string) generator.Target {
	if raw == "" {
		return generator.TargetReactTailwind
	}
	return generator.Target(raw)
}

func resolveOptions(wire *types.GenerateOptions) generator.Options {
	opts := generator.DefaultOptions()
	if wire == nil {
		return opts
	}
	if wire.WithTypes != nil {
		opts.WithTypes = *wire.WithTypes
	}
	if wire.WithDocs != nil {
		opts.WithDocs = *wire.WithDocs
	}
	return opts
}
