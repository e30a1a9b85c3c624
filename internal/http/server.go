// Package http provides the API HTTP server and its route assembly.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/expense-tracker/internal/auth/http"
	expenseHTTP "github.com/allisson/expense-tracker/internal/expense/http"
)

// RouterConfig carries the handlers and middleware the router mounts.
// Optional middleware fields may be nil, in which case they are skipped.
type RouterConfig struct {
	AuthHandler    *authHTTP.AuthHandler
	ExpenseHandler *expenseHTTP.ExpenseHandler

	// AuthenticationMiddleware attaches a principal to the request when a
	// valid token is present. It never rejects requests on its own.
	AuthenticationMiddleware gin.HandlerFunc
	// RequireAuthenticated rejects requests without an attached principal.
	RequireAuthenticated gin.HandlerFunc
	// RateLimitMiddleware limits authenticated endpoints per account.
	RateLimitMiddleware gin.HandlerFunc
	// LoginRateLimitMiddleware limits the register and login endpoints per IP.
	LoginRateLimitMiddleware gin.HandlerFunc
	// MetricsMiddleware records request counters and latency histograms.
	MetricsMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
	db     *sql.DB
	router *gin.Engine
}

// NewServer creates a new HTTP server and assembles the router.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
	routerConfig RouterConfig,
) *Server {
	s := &Server{
		logger: logger,
		db:     db,
	}
	s.router = s.setupRouter(routerConfig)
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRouter builds the gin engine with the middleware chain and routes.
func (s *Server) setupRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}
	if cfg.AuthenticationMiddleware != nil {
		router.Use(cfg.AuthenticationMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	if cfg.AuthHandler != nil {
		authGroup := v1.Group("/auth")
		if cfg.LoginRateLimitMiddleware != nil {
			authGroup.Use(cfg.LoginRateLimitMiddleware)
		}
		authGroup.POST("/register", cfg.AuthHandler.RegisterHandler)
		authGroup.POST("/login", cfg.AuthHandler.LoginHandler)
	}

	if cfg.ExpenseHandler != nil {
		expenses := v1.Group("/expenses")
		if cfg.RequireAuthenticated != nil {
			expenses.Use(cfg.RequireAuthenticated)
		}
		if cfg.RateLimitMiddleware != nil {
			expenses.Use(cfg.RateLimitMiddleware)
		}
		expenses.POST("", cfg.ExpenseHandler.CreateExpenseHandler)
		expenses.GET("", cfg.ExpenseHandler.ListExpensesHandler)
		expenses.GET("/summary", cfg.ExpenseHandler.SummaryHandler)
		expenses.GET("/categories", cfg.ExpenseHandler.CategoriesHandler)
		expenses.GET("/:id", cfg.ExpenseHandler.GetExpenseHandler)
		expenses.PUT("/:id", cfg.ExpenseHandler.UpdateExpenseHandler)
		expenses.PATCH("/:id", cfg.ExpenseHandler.UpdateExpenseHandler)
		expenses.DELETE("/:id", cfg.ExpenseHandler.DeleteExpenseHandler)
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	components["database"] = "ok"
	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
