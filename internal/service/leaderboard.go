// Package service assemble le provider, les snapshots et les calculs purs.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MassBabyGeek/RankPro-backend/internal/division"
	"github.com/MassBabyGeek/RankPro-backend/internal/histogram"
	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/provider"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
	"github.com/MassBabyGeek/RankPro-backend/internal/search"
	"github.com/MassBabyGeek/RankPro-backend/internal/snapshot"
)

// ErrUnknownDivision : division (ou division majeure) absente du snapshot
var ErrUnknownDivision = errors.New("unknown division")

// indexedDivisions associe un snapshot de divisions à son index
type indexedDivisions struct {
	source []model.Division
	index  *division.Index
}

type Leaderboard struct {
	provider  provider.Provider
	maxAge    time.Duration
	now       func() time.Time
	divisions snapshot.Store[model.Division]
	index     atomic.Pointer[indexedDivisions]
	entries   map[model.RatingType]*snapshot.Store[model.LeaderboardEntry]
}

// NewLeaderboard crée le service. maxAge <= 0 : les snapshots ne sont
// renouvelés que par Refresh.
func NewLeaderboard(p provider.Provider, maxAge time.Duration) *Leaderboard {
	return &Leaderboard{
		provider: p,
		maxAge:   maxAge,
		now:      time.Now,
		entries: map[model.RatingType]*snapshot.Store[model.LeaderboardEntry]{
			model.RatingTypeGlobal:    {},
			model.RatingTypeLadder1v1: {},
		},
	}
}

func (l *Leaderboard) fresh(at time.Time) bool {
	return l.maxAge <= 0 || l.now().Sub(at) < l.maxAge
}

// load retourne le snapshot courant ou en publie un nouveau. Si la requête
// échoue et qu'un ancien snapshot existe, l'ancien est servi.
func load[T any](ctx context.Context, l *Leaderboard, store *snapshot.Store[T], what string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	items, at, ok := store.Load()
	if ok && l.fresh(at) {
		return items, nil
	}

	fetched, err := fetch(ctx)
	if err != nil {
		if ok && provider.IsUnavailable(err) {
			logger.Warning("%s: serving snapshot from %s: %v", what, at.Format(time.RFC3339), err)
			return items, nil
		}
		return nil, err
	}

	store.Publish(fetched, l.now())
	items, _, _ = store.Load()
	return items, nil
}

func (l *Leaderboard) Divisions(ctx context.Context) ([]model.Division, error) {
	return load(ctx, l, &l.divisions, "divisions", l.provider.GetDivisions)
}

// divisionIndex retourne l'index du snapshot courant, reconstruit seulement
// quand un nouveau snapshot a été publié
func (l *Leaderboard) divisionIndex(ctx context.Context) (*division.Index, error) {
	divisions, err := l.Divisions(ctx)
	if err != nil {
		return nil, err
	}
	if cached := l.index.Load(); cached != nil && sameSnapshot(cached.source, divisions) {
		return cached.index, nil
	}
	idx := division.NewIndex(divisions)
	l.index.Store(&indexedDivisions{source: divisions, index: idx})
	return idx, nil
}

// sameSnapshot compare l'identité des slices (un snapshot publié n'est jamais modifié)
func sameSnapshot(a, b []model.Division) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func (l *Leaderboard) MajorDivisions(ctx context.Context) ([]model.Division, error) {
	divisions, err := l.Divisions(ctx)
	if err != nil {
		return nil, err
	}
	return division.MajorDivisionOptions(divisions), nil
}

func (l *Leaderboard) SubDivisions(ctx context.Context, majorIndex int) ([]model.Division, error) {
	divisions, err := l.Divisions(ctx)
	if err != nil {
		return nil, err
	}
	return division.SubDivisionsOf(divisions, majorIndex), nil
}

func (l *Leaderboard) Entries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error) {
	store, ok := l.entries[ratingType]
	if !ok {
		return nil, fmt.Errorf("unsupported rating type %q", ratingType)
	}
	return load(ctx, l, store, "entries "+string(ratingType), func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return l.provider.GetEntries(ctx, ratingType)
	})
}

// Refresh recharge tous les snapshots et les publie un par un, chacun d'un bloc
func (l *Leaderboard) Refresh(ctx context.Context) error {
	var errs []error

	divisions, err := l.provider.GetDivisions(ctx)
	if err != nil {
		errs = append(errs, err)
	} else {
		l.divisions.Publish(divisions, l.now())
	}

	for ratingType, store := range l.entries {
		entries, err := l.provider.GetEntries(ctx, ratingType)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		store.Publish(entries, l.now())
	}

	return errors.Join(errs...)
}

// StartRefresher lance Refresh toutes les interval jusqu'à l'annulation de ctx
func (l *Leaderboard) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					logger.Warning("leaderboard refresh failed: %v", err)
					continue
				}
				logger.Debug("leaderboard snapshots refreshed")
			}
		}
	}()
}

// Placement retourne l'entrée de ligue du joueur, sa division et la jauge.
// provider.ErrNotFound pour un joueur non classé.
func (l *Leaderboard) Placement(ctx context.Context, playerID int) (model.Placement, error) {
	entry, err := l.provider.GetLeagueEntryForPlayer(ctx, playerID)
	if errors.Is(err, provider.ErrNotFound) {
		logger.Debug("no league entry for player %d", playerID)
		return model.Placement{}, err
	}
	if err != nil {
		return model.Placement{}, err
	}

	idx, err := l.divisionIndex(ctx)
	if err != nil {
		return model.Placement{}, err
	}

	placement, err := idx.Place(entry)
	if errors.Is(err, division.ErrInvalidHighestScore) {
		logger.Warning("data integrity: %v", err)
		return placement, nil
	}
	return placement, err
}

// Histogram construit la distribution du ladder 1v1 autour de viewerRating
func (l *Leaderboard) Histogram(ctx context.Context, viewerRating int) ([]model.RatingBucket, error) {
	stats, err := l.provider.GetLadder1v1Stats(ctx)
	if err != nil {
		return nil, err
	}
	return histogram.Build(stats, viewerRating), nil
}

// PlayerHistogram marque la tranche du joueur d'après son rating ladder 1v1.
// Un joueur sans rating obtient la distribution sans tranche marquée.
func (l *Leaderboard) PlayerHistogram(ctx context.Context, playerID int) ([]model.RatingBucket, error) {
	snap, err := l.provider.GetPlayerRating(ctx, playerID, model.RatingTypeLadder1v1)
	if errors.Is(err, provider.ErrNotFound) {
		stats, err := l.provider.GetLadder1v1Stats(ctx)
		if err != nil {
			return nil, err
		}
		return histogram.BuildUnflagged(stats), nil
	}
	if err != nil {
		return nil, err
	}
	return l.Histogram(ctx, rating.Project(snap))
}

// NewSearchSession ouvre une session de recherche sur le snapshot courant
func (l *Leaderboard) NewSearchSession(ctx context.Context, ratingType model.RatingType) (*search.Session, error) {
	entries, err := l.Entries(ctx, ratingType)
	if err != nil {
		return nil, err
	}
	return search.NewSession(search.NewIndex(entries)), nil
}

// Search résout une requête ponctuelle
func (l *Leaderboard) Search(ctx context.Context, ratingType model.RatingType, query string) (search.Result, error) {
	session, err := l.NewSearchSession(ctx, ratingType)
	if err != nil {
		return search.Result{}, err
	}
	return session.Update(query), nil
}

// DivisionEntries retourne les entrées de toutes les sous-divisions d'une division majeure
func (l *Leaderboard) DivisionEntries(ctx context.Context, majorIndex int) ([]model.LeaderboardEntry, error) {
	subs, err := l.SubDivisions(ctx, majorIndex)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: major %d", ErrUnknownDivision, majorIndex)
	}

	subIndexes := make([]int, len(subs))
	for i, d := range subs {
		subIndexes[i] = d.SubIndex
	}
	return l.provider.GetDivisionEntries(ctx, majorIndex, subIndexes)
}

// SubDivisionEntries retourne le classement d'une seule sous-division, rangs
// contigus à l'intérieur de celle-ci
func (l *Leaderboard) SubDivisionEntries(ctx context.Context, majorIndex, subIndex int) ([]model.LeaderboardEntry, error) {
	idx, err := l.divisionIndex(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := idx.Find(majorIndex, subIndex); !ok {
		return nil, fmt.Errorf("%w: major %d sub %d", ErrUnknownDivision, majorIndex, subIndex)
	}
	return l.provider.GetDivisionEntries(ctx, majorIndex, []int{subIndex})
}
