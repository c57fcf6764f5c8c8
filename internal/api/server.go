package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pharmxd-server/internal/domain"
	"github.com/pharmxd-server/internal/feedback"
	"github.com/pharmxd-server/internal/middleware"
	"github.com/pharmxd-server/internal/service"
)

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	logger        *logrus.Logger
	extractor     domain.GenotypeExtractor
	caller        domain.DiplotypeCaller
	matcher       domain.GuidelineMatcher
	sessions      *service.SessionManager
	feedbackStore feedback.Store
	router        *gin.Engine
	server        *http.Server
}

// Deps bundles the pipeline services the server exposes. FeedbackStore may
// be nil when the feedback endpoints are disabled.
type Deps struct {
	Extractor     domain.GenotypeExtractor
	Caller        domain.DiplotypeCaller
	Matcher       domain.GuidelineMatcher
	Sessions      *service.SessionManager
	FeedbackStore feedback.Store
}

// NewServer creates a new HTTP server instance
func NewServer(configManager domain.ConfigManager, logger *logrus.Logger, deps Deps) *Server {
	cfg := configManager.GetConfig()

	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.AuditLogger())
	router.Use(corsMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	server := &Server{
		configManager: configManager,
		logger:        logger,
		extractor:     deps.Extractor,
		caller:        deps.Caller,
		matcher:       deps.Matcher,
		sessions:      deps.Sessions,
		feedbackStore: deps.FeedbackStore,
		router:        router,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/sessions", s.handleCreateSession)
		v1.POST("/sessions/demo", s.handleCreateDemoSession)
		v1.GET("/sessions/:id", s.handleGetSession)
		v1.DELETE("/sessions/:id", s.handleDeleteSession)
		v1.GET("/sessions/:id/profile", s.handleGetProfile)
		v1.GET("/sessions/:id/recommendations/:drug", s.handleGetRecommendation)

		v1.GET("/drugs", s.handleSearchDrugs)

		if s.feedbackStore != nil {
			v1.POST("/feedback", s.handleSaveFeedback)
			v1.GET("/feedback", s.handleListFeedback)
		}
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"sessions":  s.sessions.Count(),
	})
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-API-Key")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
