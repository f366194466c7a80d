package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MassBabyGeek/RankPro-backend/internal/api"
	"github.com/MassBabyGeek/RankPro-backend/internal/cache"
	"github.com/MassBabyGeek/RankPro-backend/internal/config"
	"github.com/MassBabyGeek/RankPro-backend/internal/database"
	"github.com/MassBabyGeek/RankPro-backend/internal/handler"
	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	"github.com/MassBabyGeek/RankPro-backend/internal/provider"
	"github.com/MassBabyGeek/RankPro-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Source de données
	var source provider.Provider
	switch cfg.Provider {
	case "memory":
		mem := provider.NewMemory()
		provider.SeedDemo(mem, cfg.DemoPlayers, cfg.MinGamesPlayed, rand.New(rand.NewSource(time.Now().UnixNano())))
		logger.Warning("Using in-memory demo data (%d players)", cfg.DemoPlayers)
		source = mem
	default:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		source = provider.NewPostgres(db, cfg.Season, cfg.MinGamesPlayed)
	}

	// Cache Redis optionnel
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg)
		if err != nil {
			logger.Warning("Redis disabled: %v", err)
		} else {
			defer rdb.Close()
			source = cache.NewProvider(source, rdb, cfg.CacheTTL)
		}
	}

	leaderboard := service.NewLeaderboard(provider.NewCoalescing(source, cfg.FetchTimeout), cfg.RefreshInterval)
	if err := leaderboard.Refresh(ctx); err != nil {
		logger.Warning("Initial leaderboard refresh failed: %v", err)
	}
	leaderboard.StartRefresher(ctx, cfg.RefreshInterval)

	// Initialize routes
	router := api.SetupRouter(handler.New(leaderboard, cfg.CORSOrigins), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed: %v", err)
		}
	}()

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
