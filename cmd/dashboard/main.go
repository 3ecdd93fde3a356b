// Command dashboard is a terminal client for the admin API: it logs in,
// shows the dashboard aggregates and a page of users, and demonstrates the
// persisted session and cache working across runs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendsqr/admin-dashboard/internal/core/controller"
	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/core/service"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/cache"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/config"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/dataset"
	memdb "github.com/lendsqr/admin-dashboard/internal/infrastructure/db/memory"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/storage"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/transport/httpapi"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/transport/memory"
	"github.com/lendsqr/admin-dashboard/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "dashboard-cli",
	})

	ctx := context.Background()
	store := buildStore(ctx, cfg, log)
	sessions := cache.NewSessionStore(store)
	userCache := cache.NewUserCache(store)

	transport := buildTransport(cfg, sessions, log)
	authService := service.NewAuthService(transport, log)
	userService := service.NewUserService(transport, nil, log)

	auth := controller.NewAuthController(authService, sessions, userCache, log)
	if !auth.IsAuthenticated() {
		email := envOr("DASHBOARD_EMAIL", "admin@lendsqr.com")
		password := envOr("DASHBOARD_PASSWORD", "password123")
		if err := auth.Login(ctx, email, password); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		fmt.Printf("logged in as %s\n", email)
	} else {
		fmt.Println("resumed persisted session")
	}

	stats := controller.NewStatsController(userService)
	if err := stats.Fetch(ctx); err != nil {
		log.Fatal().Err(err).Msg("stats fetch failed")
	}
	s := stats.State().Stats
	fmt.Printf("users: %d  active: %d  with loans: %d  with savings: %d\n",
		s.TotalUsers, s.ActiveUsers, s.UsersWithLoans, s.UsersWithSavings)

	users := controller.NewUsersController(userService, userCache)
	if err := users.Fetch(ctx); err != nil {
		log.Fatal().Err(err).Msg("user list fetch failed")
	}
	page := users.State()
	fmt.Printf("page %d/%d (%d total)\n", page.Page, page.TotalPages, page.Total)
	for _, u := range page.Users {
		fmt.Printf("  %-6s %-16s %-28s %s\n", u.ID, u.Username, u.Email, u.Status)
	}

	if len(page.Users) > 0 {
		detail := controller.NewUserController(userService, userCache, 0)
		if err := detail.Fetch(ctx, page.Users[0].ID); err != nil {
			log.Fatal().Err(err).Msg("user detail fetch failed")
		}
		u := detail.State().User
		fmt.Printf("last viewed: %s (%s), may move to %v\n",
			u.Username, u.Status, availableStatusNames(u.Status))
	}
}

func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) ports.KeyValueStore {
	switch cfg.Store {
	case "redis":
		client, err := storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: 5 * time.Second,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		return storage.NewRedisStore(client, "dashboard", log, nil)
	default:
		path := cfg.StorePath
		if path == "" {
			path = storage.DefaultPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("store directory unavailable, running volatile")
			path = ""
		}
		return storage.NewFileStore(path, log)
	}
}

// buildTransport returns the HTTP client when API_URL is set, otherwise an
// in-process simulated backend so the CLI works standalone.
func buildTransport(cfg *config.Config, sessions *cache.SessionStore, log zerolog.Logger) ports.Transport {
	if apiURL := os.Getenv("API_URL"); apiURL != "" {
		return httpapi.NewClient(apiURL, httpapi.WithTokenSource(func() string {
			token, _ := sessions.Token()
			return token
		}))
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = "dashboard-local"
	}
	ds := dataset.Generate(cfg.Dataset.Size, cfg.Dataset.Seed)
	log.Info().Int("users", len(ds.Users)).Msg("running against in-process dataset")
	return memory.New(
		memdb.NewUserRepository(ds),
		memdb.NewCredentialRepository(ds.Credentials),
		nil,
		memory.Options{
			ReadDelay:   cfg.Latency.Read,
			LogoutDelay: cfg.Latency.Logout,
			JWTSecret:   secret,
		},
	)
}

func availableStatusNames(s domain.UserStatus) []string {
	next := domain.AvailableTransitions(s)
	out := make([]string, len(next))
	for i, st := range next {
		out[i] = string(st)
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
