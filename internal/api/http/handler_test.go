package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeui/backend/internal/catalog"
	"github.com/forgeui/backend/internal/generator"
	"github.com/forgeui/backend/internal/infrastructure/logging"
	"github.com/forgeui/backend/internal/infrastructure/monitoring"
	"github.com/forgeui/backend/internal/providers/forge"
	"github.com/forgeui/backend/internal/service"
	"github.com/forgeui/backend/internal/store/archive"
	"github.com/forgeui/backend/internal/store/tokens"
	"github.com/forgeui/backend/internal/vocab"
)

// metrics register against the default Prometheus registry, so the test
// binary shares one instance.
var testMetrics = monitoring.New()

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := generator.New(vocab.New())
	cat := catalog.New()

	archiveStore, err := archive.New(t.TempDir())
	require.NoError(t, err)
	tokenStore, err := tokens.New(t.TempDir())
	require.NoError(t, err)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(forge.NewProvider(engine, cat)))

	h := NewHandler(engine, cat, archiveStore, tokenStore, registry, testMetrics, logging.NewDefault())

	r := gin.New()
	r.POST("/generate", h.Generate)
	r.POST("/generate/all", h.GenerateAll)
	r.GET("/targets", h.Targets)
	r.GET("/patterns", h.Patterns)
	r.GET("/patterns/:key", h.Pattern)
	r.GET("/blueprints", h.ListBlueprints)
	r.POST("/blueprints", h.CreateBlueprint)
	r.PUT("/blueprints/:name", h.SaveBlueprint)
	r.GET("/blueprints/:name", h.GetBlueprint)
	r.DELETE("/blueprints/:name", h.DeleteBlueprint)
	r.POST("/blueprints/:name/generate", h.GenerateBlueprint)
	r.GET("/tokens", h.Tokens)
	r.GET("/tokens/:category", h.TokenCategory)
	r.PATCH("/tokens", h.MergeTokens)
	r.POST("/services/execute", h.Execute)
	return r
}

func do(r *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGenerateEndpoint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate", `{
		"blueprint": {"name": "Badge", "base": "text", "styles": {"base": "inline-flex"}},
		"target": "css-modules"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "css-modules", body["target"])
	assert.Contains(t, body["source"], "Badge.module.css")
}

func TestGenerateRejectsInvalidBlueprint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate", `{"blueprint": {"base": "button"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decode(t, w)
	assert.Contains(t, body["error"], "name is required")
}

func TestGenerateMissingBlueprintIsBadRequest(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate", `{"target": "vue"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateUnknownTargetFallsBack(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate", `{
		"blueprint": {"name": "Badge", "base": "text"},
		"target": "svelte"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Contains(t, body["source"], "React.forwardRef")
}

func TestGenerateAllEndpoint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate/all", `{
		"blueprint": {"name": "Badge", "base": "text", "styles": {"base": "inline-flex"}}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	sources := body["sources"].(map[string]interface{})
	assert.Len(t, sources, 6)
}

func TestGenerateOptionsDisableDocs(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/generate", `{
		"blueprint": {"name": "Badge", "base": "text"},
		"options": {"with_docs": false}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotContains(t, body["source"], "/**")
}

func TestTargetsEndpoint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "GET", "/targets", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	targets := body["targets"].([]interface{})
	assert.Len(t, targets, 6)
	assert.Equal(t, "react-tailwind", targets[0])
}

func TestPatternsEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(r, "GET", "/patterns", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.GreaterOrEqual(t, body["count"].(float64), float64(10))

	w = do(r, "GET", "/patterns/data-table", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, true, body["known"])

	w = do(r, "GET", "/patterns/quantum-slider", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, false, body["known"])
	bp := body["blueprint"].(map[string]interface{})
	assert.Equal(t, "Button", bp["name"])
}

func TestBlueprintLifecycle(t *testing.T) {
	r := newRouter(t)

	w := do(r, "PUT", "/blueprints/primary-button", `{
		"name": "Button",
		"base": "button",
		"variants": {"size": ["md", "sm"]},
		"styles": {"base": "inline-flex", "size": {"md": "h-10", "sm": "h-8"}}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/blueprints", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = do(r, "GET", "/blueprints/primary-button", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "POST", "/blueprints/primary-button/generate", `{"target": "html"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["source"], "<!-- base -->")

	w = do(r, "DELETE", "/blueprints/primary-button", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/blueprints/primary-button", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBlueprint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/blueprints", `{
		"name": "badge",
		"blueprint": {"name": "Badge", "base": "text"}
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, "GET", "/blueprints/badge", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateBlueprintRejectsUnsafeName(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/blueprints", `{
		"name": "../escape",
		"blueprint": {"name": "Badge"}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveBlueprintValidates(t *testing.T) {
	r := newRouter(t)

	w := do(r, "PUT", "/blueprints/broken", `{"base": "button"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteMissingBlueprint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "DELETE", "/blueprints/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTokensEndpoints(t *testing.T) {
	r := newRouter(t)

	w := do(r, "GET", "/tokens", "")
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode(t, w)["tokens"].(map[string]interface{})
	colors := doc["colors"].(map[string]interface{})
	assert.Equal(t, "#3b82f6", colors["primary"])

	w = do(r, "PATCH", "/tokens", `{"colors": {"primary": "#111111"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/tokens/colors", "")
	require.Equal(t, http.StatusOK, w.Code)
	category := decode(t, w)["tokens"].(map[string]interface{})
	assert.Equal(t, "#111111", category["primary"])

	w = do(r, "GET", "/tokens/gradients", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["tokens"])
}

func TestServicesExecuteEndpoint(t *testing.T) {
	r := newRouter(t)

	w := do(r, "POST", "/services/execute", `{
		"tool_id": "forge.targets",
		"params": {}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
}
