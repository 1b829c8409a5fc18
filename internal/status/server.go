package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pscheid92/autorotate/internal/domain"
	"github.com/pscheid92/autorotate/internal/platform/version"
)

// orientationSource is satisfied by *app.Daemon.
type orientationSource interface {
	Current() domain.Orientation
}

type Server struct {
	echo      *echo.Echo
	addr      string
	source    orientationSource
	backend   string
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(addr string, source orientationSource, backend string, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.DebugContext(c.Request().Context(), "Status request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	srv := &Server{
		echo:      e,
		addr:      addr,
		source:    source,
		backend:   backend,
		clock:     clock,
		startTime: clock.Now(),
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/orientation", s.handleOrientation)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Start listens until Shutdown is called, then returns http.ErrServerClosed.
func (s *Server) Start() error {
	slog.Info("Status server starting", "addr", s.addr)
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": s.clock.Since(s.startTime).Seconds(),
	})
}

type orientationResponse struct {
	Orientation string `json:"orientation"`
	Transform   string `json:"transform,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
	Backend     string `json:"backend"`
}

func (s *Server) handleOrientation(c echo.Context) error {
	o := s.source.Current()
	return c.JSON(http.StatusOK, orientationResponse{
		Orientation: o.String(),
		Transform:   o.TransformID(),
		Keyword:     o.Keyword(),
		Backend:     s.backend,
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
