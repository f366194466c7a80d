package provider

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"golang.org/x/sync/singleflight"
)

// Coalescing partage une seule requête en vol entre les appels identiques.
//
// L'annulation est consultative : un appelant dont le contexte se termine
// récupère ctx.Err() tout de suite, mais la requête partagée continue pour les
// autres. Elle tourne sur un contexte détaché borné par FetchTimeout.
type Coalescing struct {
	next         Provider
	group        singleflight.Group
	fetchTimeout time.Duration
}

func NewCoalescing(next Provider, fetchTimeout time.Duration) *Coalescing {
	return &Coalescing{next: next, fetchTimeout: fetchTimeout}
}

func coalesce[T any](ctx context.Context, c *Coalescing, key string, fetch func(context.Context) (T, error)) (T, error) {
	ch := c.group.DoChan(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		if c.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, c.fetchTimeout)
			defer cancel()
		}
		return fetch(fetchCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (c *Coalescing) GetDivisions(ctx context.Context) ([]model.Division, error) {
	return coalesce(ctx, c, "divisions", c.next.GetDivisions)
}

func (c *Coalescing) GetEntries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error) {
	return coalesce(ctx, c, "entries:"+string(ratingType), func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return c.next.GetEntries(ctx, ratingType)
	})
}

func (c *Coalescing) GetLeagueEntryForPlayer(ctx context.Context, playerID int) (model.LeaderboardEntry, error) {
	return coalesce(ctx, c, "league:"+strconv.Itoa(playerID), func(ctx context.Context) (model.LeaderboardEntry, error) {
		return c.next.GetLeagueEntryForPlayer(ctx, playerID)
	})
}

func (c *Coalescing) GetLadder1v1Stats(ctx context.Context) ([]model.RatingStat, error) {
	return coalesce(ctx, c, "ladder1v1stats", c.next.GetLadder1v1Stats)
}

func (c *Coalescing) GetPlayerRating(ctx context.Context, playerID int, ratingType model.RatingType) (model.RatingSnapshot, error) {
	key := fmt.Sprintf("rating:%d:%s", playerID, ratingType)
	return coalesce(ctx, c, key, func(ctx context.Context) (model.RatingSnapshot, error) {
		return c.next.GetPlayerRating(ctx, playerID, ratingType)
	})
}

func (c *Coalescing) GetDivisionEntries(ctx context.Context, majorIndex int, subIndexes []int) ([]model.LeaderboardEntry, error) {
	return coalesce(ctx, c, divisionEntriesKey(majorIndex, subIndexes), func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return c.next.GetDivisionEntries(ctx, majorIndex, subIndexes)
	})
}

func divisionEntriesKey(majorIndex int, subIndexes []int) string {
	subs := append([]int(nil), subIndexes...)
	sort.Ints(subs)
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = strconv.Itoa(s)
	}
	return fmt.Sprintf("division-entries:%d:%s", majorIndex, strings.Join(parts, ","))
}
