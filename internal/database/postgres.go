package database

import (
	"context"
	"fmt"
	"time"

	"github.com/MassBabyGeek/RankPro-backend/internal/config"
	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err = pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ensure schema: %w", err)
	}

	logger.Success("Connected to PostgreSQL (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS players (
  id INTEGER PRIMARY KEY,
  login TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS leaderboard_ratings (
  player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
  rating_type TEXT NOT NULL,
  mean DOUBLE PRECISION NOT NULL,
  deviation DOUBLE PRECISION NOT NULL,
  games_played INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (player_id, rating_type)
);

CREATE TABLE IF NOT EXISTS divisions (
  season INTEGER NOT NULL,
  major_division_index INTEGER NOT NULL,
  sub_division_index INTEGER NOT NULL,
  major_division_name TEXT NOT NULL,
  sub_division_name TEXT NOT NULL,
  highest_score INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (season, major_division_index, sub_division_index)
);

CREATE TABLE IF NOT EXISTS league_scores (
  season INTEGER NOT NULL,
  player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
  score INTEGER NOT NULL DEFAULT 0,
  major_division_index INTEGER NOT NULL,
  sub_division_index INTEGER NOT NULL,
  games_played INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (season, player_id)
);
`
