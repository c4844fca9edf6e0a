package ws

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/infrastructure/logging"
	"github.com/forgeui/backend/internal/infrastructure/monitoring"
	"github.com/forgeui/backend/internal/vocab"
)

// metrics register against the default Prometheus registry, so the test
// binary shares one instance.
var testMetrics = monitoring.New()

type frame struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	Source string `json:"source"`
	Error  string `json:"error"`
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(generator.New(vocab.New()), testMetrics, logging.NewDefault())
	r := gin.New()
	r.GET("/ws", h.Handle)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var welcome frame
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Equal(t, "welcome", welcome.Type)

	return conn
}

func TestGenerateStreamsSource(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "generate",
		"blueprint": map[string]interface{}{"name": "Badge", "base": "text"},
		"target":    "solid",
	}))

	var msg frame
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "source", msg.Type)
	assert.Equal(t, "solid", msg.Target)
	assert.Contains(t, msg.Source, "splitProps")
}

func TestGenerateAllStreamsPerTarget(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "generate_all",
		"blueprint": map[string]interface{}{"name": "Badge", "base": "text"},
	}))

	seen := make(map[string]bool)
	for {
		var msg frame
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == "complete" {
			break
		}
		require.Equal(t, "source", msg.Type)
		seen[msg.Target] = true
	}
	assert.Len(t, seen, 6)
}

func TestGenerateInvalidBlueprintAnswersError(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":      "generate",
		"blueprint": map[string]interface{}{"base": "button"},
	}))

	var msg frame
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "name is required")
}

func TestPingPong(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "ping"}))

	var msg frame
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "pong", msg.Type)
}

func TestUnknownMessageType(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "transmute"}))

	var msg frame
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "unknown message type")
}

// Frames come from both the dispatch loop and the keepalive ticker, so
// writes through wsConn must be safe from multiple goroutines.
func TestConcurrentWritesAreSerialized(t *testing.T) {
	raw := dial(t)
	conn := &wsConn{Conn: raw}

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, conn.writeJSON(map[string]interface{}{"type": "ping"}))
		}()
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		var msg frame
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "pong", msg.Type)
	}
}
