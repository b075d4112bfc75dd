package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nia806/Epoch/config"
	"github.com/Nia806/Epoch/internal/api"
	"github.com/Nia806/Epoch/internal/database"
	"github.com/Nia806/Epoch/internal/keyvalue"
	"github.com/Nia806/Epoch/internal/middleware"
	"github.com/Nia806/Epoch/internal/router"
	"github.com/Nia806/Epoch/internal/store"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New builds the persistence medium selected by the configuration, wires
// the record stores and handlers over it, and returns a ready-to-start
// server.
func New(cfg *config.Config) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	medium, rateLimiter, err := newMedium(cfg)
	if err != nil {
		return nil, err
	}

	recipes := store.NewRecipeStore(medium)
	archetypes := store.NewArchetypeStore(medium)

	engine := router.SetupRouter(
		api.NewRecipeHandler(recipes),
		api.NewArchetypeHandler(archetypes),
		api.NewDashboardHandler(recipes, archetypes),
		cfg.AllowedOrigins,
		rateLimiter,
	)

	return &Server{
		engine: engine,
		cfg:    cfg,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// NewStores builds the record stores over the configured medium, for
// callers that want the stores without the HTTP surface.
func NewStores(cfg *config.Config) (*store.RecipeStore, *store.ArchetypeStore, error) {
	medium, _, err := newMedium(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store.NewRecipeStore(medium), store.NewArchetypeStore(medium), nil
}

// newMedium constructs the keyvalue medium for the configured driver. The
// redis driver additionally yields a rate limiter over the same client.
func newMedium(cfg *config.Config) (keyvalue.Store, *middleware.RateLimiter, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return keyvalue.NewMemoryStore(), nil, nil

	case config.DriverRedis:
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
		return keyvalue.NewRedisStore(client), limiter, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		medium, err := keyvalue.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return medium, nil, nil

	case config.DriverS3:
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, nil, err
		}
		return keyvalue.NewS3Store(s3cfg.Client, s3cfg.BucketName), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// Start starts the server. It blocks until the listener stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
