package server

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"github.com/sessionfs/sessionfs/internal/config"
	"github.com/sessionfs/sessionfs/internal/events"
	httpapi "github.com/sessionfs/sessionfs/internal/http"
	"github.com/sessionfs/sessionfs/internal/logging"
	"github.com/sessionfs/sessionfs/internal/middleware"
	"github.com/sessionfs/sessionfs/internal/monitoring"
	"github.com/sessionfs/sessionfs/internal/providers"
	"github.com/sessionfs/sessionfs/internal/registry"
	"github.com/sessionfs/sessionfs/internal/service"
	"github.com/sessionfs/sessionfs/internal/store"
	"github.com/sessionfs/sessionfs/internal/types"
	"github.com/sessionfs/sessionfs/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *registry.Manager
	store    *store.Store
	services *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	movedSub *events.Subscription
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing SessionFS server",
		zap.String("port", cfg.Server.Port),
		zap.String("scheme", cfg.Store.Scheme),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// Seed and construct the session registry
	seeder := registry.NewSeeder(cfg.Store.Scheme, cfg.Seed.Dir, logger)
	records := seeder.Seed()
	sessionRegistry := registry.NewManager(records)
	metrics.SessionsTotal.Set(float64(sessionRegistry.Stats().TotalSessions))
	logger.Info("Session registry seeded", zap.Int("sessions", sessionRegistry.Stats().TotalSessions))

	// The store resolves keys against the registry
	sessionStore := store.New(cfg.Store.Scheme, sessionRegistry)

	// Phase two of the rename protocol: the store only announces the
	// move; this listener applies the registry mutation, which in turn
	// fires the registry's change notification.
	movedSub := sessionStore.SubscribeMoved(func(ev types.MovedEvent) {
		if err := sessionRegistry.Rename(ev.OldKey, ev.NewKey); err != nil {
			logger.Warn("Registry rename not applied",
				zap.String("old_key", ev.OldKey),
				zap.String("new_key", ev.NewKey),
				zap.Error(err),
			)
		}
	})

	// Register service providers
	serviceRegistry := service.NewRegistry()
	registerProviders(serviceRegistry, sessionRegistry, sessionStore, logger)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := httpapi.NewHandlers(sessionRegistry, sessionStore, serviceRegistry, metrics)
	wsHandler := ws.NewHandler(sessionRegistry, sessionStore, metrics, logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Session endpoints
	router.GET("/sessions", handlers.ListSessions)
	router.GET("/sessions/stat", handlers.StatSession)
	router.GET("/sessions/content", handlers.ReadSession)
	router.POST("/sessions/rename", handlers.RenameSession)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket event stream
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", metrics.Handler())

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: sessionRegistry,
		store:    sessionStore,
		services: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		movedSub: movedSub,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.movedSub.Unsubscribe()
	s.logger.Sync()
	return nil
}

func registerProviders(services *service.Registry, reg *registry.Manager, st *store.Store, logger *logging.Logger) {
	sessionsProvider := providers.NewSessions(reg)
	if err := services.Register(sessionsProvider); err != nil {
		logger.Warn("Failed to register sessions provider", zap.Error(err))
	}

	fsProvider := providers.NewSessionFS(st)
	if err := services.Register(fsProvider); err != nil {
		logger.Warn("Failed to register sessionfs provider", zap.Error(err))
	}

	stats := services.Stats()
	logger.Info("Registered service providers",
		zap.Int("services", stats.Services),
		zap.Int("tools", stats.Tools),
	)
}
