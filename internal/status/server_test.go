package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	current domain.Orientation
}

func (m *mockSource) Current() domain.Orientation { return m.current }

func newTestServer(o domain.Orientation) (*Server, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	return NewServer("127.0.0.1:0", &mockSource{current: o}, "sway", clock), clock
}

func serve(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleLiveness(t *testing.T) {
	srv, clock := newTestServer(domain.OrientationNormal)
	clock.Advance(90 * time.Second)

	rec := serve(t, srv, "/health/live")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 90.0, body["uptime"])
}

func TestHandleOrientation(t *testing.T) {
	srv, _ := newTestServer(domain.OrientationLeftUp)

	rec := serve(t, srv, "/orientation")
	require.Equal(t, http.StatusOK, rec.Code)

	var body orientationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, orientationResponse{
		Orientation: "left-up",
		Transform:   "90",
		Keyword:     "left",
		Backend:     "sway",
	}, body)
}

func TestHandleOrientation_Unknown(t *testing.T) {
	srv, _ := newTestServer(domain.OrientationUnknown)

	rec := serve(t, srv, "/orientation")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orientation":"unknown","backend":"sway"}`, rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	srv, _ := newTestServer(domain.OrientationNormal)

	rec := serve(t, srv, "/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"go_version"`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(domain.OrientationNormal)

	rec := serve(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
