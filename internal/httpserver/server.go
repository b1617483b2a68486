package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	checkoutsvc "alanshor-pos/internal/checkout"
	customersvc "alanshor-pos/internal/service/customer"
	inventorysvc "alanshor-pos/internal/service/inventory"
	reportsvc "alanshor-pos/internal/service/report"
	settingssvc "alanshor-pos/internal/service/settings"
)

// Deps carries the services the router exposes.
type Deps struct {
	Checkout  *checkoutsvc.Manager
	Inventory *inventorysvc.Service
	Customers *customersvc.Service
	Reports   *reportsvc.Service
	Settings  *settingssvc.Service
}

// RouterOptions tune cross-cutting router behavior.
type RouterOptions struct {
	CORSOrigins    []string
	MetricsEnabled bool
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with all storefront routes wired.
func New(addr string, logger *log.Logger, deps Deps, opts RouterOptions) *Server {
	router := buildRouter(logger, deps, opts)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyHandler reports ready once the in-memory stores are wired; there is
// no external backend to probe.
func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Checkout == nil || deps.Inventory == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "services not wired"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
