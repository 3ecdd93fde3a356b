package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/api"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/core/service"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/config"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/dataset"
	memdb "github.com/lendsqr/admin-dashboard/internal/infrastructure/db/memory"
	mongodb "github.com/lendsqr/admin-dashboard/internal/infrastructure/db/mongo"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/queue"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/transport/memory"
	"github.com/lendsqr/admin-dashboard/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "admin-dashboard",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	userRepo, credRepo, auditRepo := buildRepositories(ctx, cfg, log)

	// Audit pipeline: mutations enqueue, workers persist.
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	transport := memory.New(userRepo, credRepo, dispatcher, memory.Options{
		ReadDelay:   cfg.Latency.Read,
		LogoutDelay: cfg.Latency.Logout,
		JWTSecret:   cfg.JWTSecret,
	})

	authService := service.NewAuthService(transport, log)
	userService := service.NewUserService(transport, auditRepo, log)

	e := api.NewRouter(authService, userService, cfg.JWTSecret, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("repository", cfg.Repository).
		Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped gracefully")
}

// buildRepositories wires the configured backend. Memory seeds a
// deterministic dataset in-process; mongo connects, ensures indexes and
// seeds only when its collections are empty.
func buildRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.UserRepository, ports.CredentialRepository, ports.AuditRepository) {
	switch cfg.Repository {
	case "mongo":
		_, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}

		userRepo := mongodb.NewUserRepository(db)
		credRepo := mongodb.NewCredentialRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}

		ds := dataset.Generate(cfg.Dataset.Size, cfg.Dataset.Seed)
		if err := userRepo.Seed(ctx, ds); err != nil {
			log.Fatal().Err(err).Msg("mongo user seed failed")
		}
		if err := credRepo.Seed(ctx, ds.Credentials); err != nil {
			log.Fatal().Err(err).Msg("mongo credential seed failed")
		}
		return userRepo, credRepo, mongodb.NewAuditRepository(db)

	case "memory":
		ds := dataset.Generate(cfg.Dataset.Size, cfg.Dataset.Seed)
		log.Info().Int("users", len(ds.Users)).Msg("seeded in-memory dataset")
		return memdb.NewUserRepository(ds), memdb.NewCredentialRepository(ds.Credentials), memdb.NewAuditRepository()

	default:
		log.Fatal().Str("repository", cfg.Repository).Msg("unknown repository backend")
		return nil, nil, nil
	}
}
