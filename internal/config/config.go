package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Provider : "postgres" ou "memory" (données de démonstration)
	Provider    string
	DemoPlayers int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis est optionnel : vide = pas de cache partagé
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	JWTSecret   string
	CORSOrigins []string
	LogLevel    string

	Season          int
	MinGamesPlayed  int
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          envOr("PORT", "8080"),
		Provider:      envOr("PROVIDER", "postgres"),
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        envOr("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envOr("DB_NAME", "rankpro"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Season, err = envInt("SEASON", 1); err != nil {
		return nil, err
	}
	if cfg.MinGamesPlayed, err = envInt("MIN_GAMES_PLAYED", 10); err != nil {
		return nil, err
	}
	if cfg.DemoPlayers, err = envInt("DEMO_PLAYERS", 500); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = envDuration("REFRESH_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = envDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.Provider != "postgres" && cfg.Provider != "memory" {
		return nil, fmt.Errorf("PROVIDER must be postgres or memory, got %q", cfg.Provider)
	}
	if cfg.MinGamesPlayed < 0 {
		return nil, fmt.Errorf("MIN_GAMES_PLAYED must be >= 0, got %d", cfg.MinGamesPlayed)
	}

	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return d, nil
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
