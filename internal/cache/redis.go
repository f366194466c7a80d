// Package cache partage les snapshots du provider entre instances via Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MassBabyGeek/RankPro-backend/internal/config"
	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/provider"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "leaderboard:"

func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: 20,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	logger.Success("Connected to Redis (%s)", cfg.RedisAddr)
	return rdb, nil
}

// Provider est un cache read-through devant un autre provider.
// Une panne Redis n'est jamais fatale : on lit directement la source.
type Provider struct {
	next provider.Provider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewProvider(next provider.Provider, rdb *redis.Client, ttl time.Duration) *Provider {
	return &Provider{next: next, rdb: rdb, ttl: ttl}
}

func readThrough[T any](ctx context.Context, p *Provider, key string, fetch func(context.Context) (T, error)) (T, error) {
	key = keyPrefix + key

	raw, err := p.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		jsonErr := json.Unmarshal(raw, &cached)
		if jsonErr == nil {
			logger.Debug("cache hit %s", key)
			return cached, nil
		}
		logger.Warning("cache: corrupted value for %s: %v", key, jsonErr)
	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss %s", key)
	default:
		logger.Warning("cache: redis get %s failed: %v", key, err)
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warning("cache: could not encode %s: %v", key, err)
		return value, nil
	}
	if err := p.rdb.Set(ctx, key, payload, p.ttl).Err(); err != nil {
		logger.Warning("cache: redis set %s failed: %v", key, err)
	}
	return value, nil
}

func (p *Provider) GetDivisions(ctx context.Context) ([]model.Division, error) {
	return readThrough(ctx, p, "divisions", p.next.GetDivisions)
}

func (p *Provider) GetEntries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error) {
	return readThrough(ctx, p, "entries:"+string(ratingType), func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return p.next.GetEntries(ctx, ratingType)
	})
}

func (p *Provider) GetLeagueEntryForPlayer(ctx context.Context, playerID int) (model.LeaderboardEntry, error) {
	return readThrough(ctx, p, "league:"+strconv.Itoa(playerID), func(ctx context.Context) (model.LeaderboardEntry, error) {
		return p.next.GetLeagueEntryForPlayer(ctx, playerID)
	})
}

func (p *Provider) GetPlayerRating(ctx context.Context, playerID int, ratingType model.RatingType) (model.RatingSnapshot, error) {
	key := fmt.Sprintf("rating:%d:%s", playerID, ratingType)
	return readThrough(ctx, p, key, func(ctx context.Context) (model.RatingSnapshot, error) {
		return p.next.GetPlayerRating(ctx, playerID, ratingType)
	})
}

func (p *Provider) GetLadder1v1Stats(ctx context.Context) ([]model.RatingStat, error) {
	return readThrough(ctx, p, "ladder1v1stats", p.next.GetLadder1v1Stats)
}

// GetDivisionEntries n'est pas mis en cache : la combinaison de sous-divisions varie
func (p *Provider) GetDivisionEntries(ctx context.Context, majorIndex int, subIndexes []int) ([]model.LeaderboardEntry, error) {
	return p.next.GetDivisionEntries(ctx, majorIndex, subIndexes)
}
