// file: internal/server/server.go
// version: 2.1.0
// guid: 3f1c2a4e-8b7d-4e6f-9a0b-1c2d3e4f5a6b

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/encoding"

	"github.com/jdfalk/iptc-organizer/internal/cache"
	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/metrics"
	"github.com/jdfalk/iptc-organizer/internal/server/middleware"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Inspect results are cached by image hash.
const (
	inspectCacheTTL     = 5 * time.Minute
	inspectCacheEntries = 256
)

// jsonBodyLimit caps request bodies on routes that do not take an image.
const jsonBodyLimit = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	router       *gin.Engine
	cfg          config.Config
	fallback     encoding.Encoding
	inspectCache *cache.Cache[InspectResponse]
}

// NewServer creates a new server instance
func NewServer(cfg config.Config) (*Server, error) {
	fallback, err := cfg.Charset()
	if err != nil {
		return nil, err
	}

	router := gin.New()

	// Set up middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.BasicAuth(cfg.Server.BasicAuthUsername, cfg.Server.BasicAuthPassword))
	router.Use(middleware.NewIPRateLimiter(cfg.Server.RequestsPerMinute, 10).Middleware())
	router.Use(middleware.MaxRequestBodySize(min(jsonBodyLimit, cfg.Server.MaxBodyBytes), cfg.Server.MaxBodyBytes))

	// Register metrics (idempotent)
	metrics.Register()

	server := &Server{
		router:       router,
		cfg:          cfg,
		fallback:     fallback,
		inspectCache: cache.New[InspectResponse]("inspect", inspectCacheTTL, inspectCacheEntries),
	}

	server.setupRoutes()

	return server, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Starting server on %s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[INFO] Shutting down server...")

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.healthCheck)

		// Tag registry
		api.GET("/tags", s.listTags)
		api.GET("/tags/:id", s.getTag)

		// JPEG metadata
		api.POST("/inspect", s.inspect)
		api.POST("/apply", s.apply)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   Version,
	})
}
