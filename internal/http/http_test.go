//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/guttosm/tour-service/internal/middleware"
	"github.com/guttosm/tour-service/internal/service"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) byAction(action string) []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.LogEntry
	for _, e := range s.entries {
		if e.ActionType == action {
			out = append(out, e)
		}
	}
	return out
}

// newTestRouter wires the real services over the default catalog. sink may
// be nil.
func newTestRouter(t *testing.T, sink *recordingSink) *gin.Engine {
	t.Helper()
	c := catalog.Default()
	defaults := service.DefaultPricingDefaults()

	var audit middleware.LogSink
	if sink != nil {
		audit = sink
	}

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.LogSink = audit

	pricing := NewPricingHandler(service.NewPricingCalculatorService(service.WithCatalog(c)), defaults, audit)
	content := NewCatalogHandler(c, service.NewComparisonService(c), catalog.DefaultItinerary(), defaults.MarginPercent, audit)

	router, stop := NewRouter(NewHealthHandler(), cfg, NewPricingRoutes(pricing), NewCatalogRoutes(content))
	t.Cleanup(stop)
	return router
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope decodes the "data" field of a SuccessResponse into out.
func envelope(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RequestID)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
