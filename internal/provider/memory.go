package provider

import (
	"context"
	"sort"
	"sync"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
)

// Memory est un provider en mémoire (mode démo et tests).
// Chaque Set remplace une collection entière.
type Memory struct {
	mu        sync.RWMutex
	divisions []model.Division
	entries   map[model.RatingType][]model.LeaderboardEntry
	league    map[int]model.LeaderboardEntry
	ratings   map[model.RatingType]map[int]model.RatingSnapshot
	stats     []model.RatingStat
	err       error
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[model.RatingType][]model.LeaderboardEntry),
		league:  make(map[int]model.LeaderboardEntry),
		ratings: make(map[model.RatingType]map[int]model.RatingSnapshot),
	}
}

func (m *Memory) SetDivisions(divisions []model.Division) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.divisions = append([]model.Division(nil), divisions...)
}

func (m *Memory) SetEntries(ratingType model.RatingType, entries []model.LeaderboardEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[ratingType] = append([]model.LeaderboardEntry(nil), entries...)
}

func (m *Memory) SetLeagueEntries(entries []model.LeaderboardEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.league = make(map[int]model.LeaderboardEntry, len(entries))
	for _, e := range entries {
		m.league[e.PlayerID] = e
	}
}

func (m *Memory) SetPlayerRating(playerID int, ratingType model.RatingType, s model.RatingSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ratings[ratingType] == nil {
		m.ratings[ratingType] = make(map[int]model.RatingSnapshot)
	}
	m.ratings[ratingType][playerID] = s
}

func (m *Memory) SetLadder1v1Stats(stats []model.RatingStat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = append([]model.RatingStat(nil), stats...)
}

// SetError fait échouer tous les appels suivants (nil pour rétablir)
func (m *Memory) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) failure(op string) error {
	if m.err == nil {
		return nil
	}
	return Wrap(op, m.err)
}

func (m *Memory) GetDivisions(ctx context.Context) ([]model.Division, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get divisions"); err != nil {
		return nil, err
	}
	return append([]model.Division(nil), m.divisions...), nil
}

func (m *Memory) GetEntries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get entries"); err != nil {
		return nil, err
	}
	return append([]model.LeaderboardEntry(nil), m.entries[ratingType]...), nil
}

func (m *Memory) GetLeagueEntryForPlayer(ctx context.Context, playerID int) (model.LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get league entry"); err != nil {
		return model.LeaderboardEntry{}, err
	}
	e, ok := m.league[playerID]
	if !ok {
		return model.LeaderboardEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) GetPlayerRating(ctx context.Context, playerID int, ratingType model.RatingType) (model.RatingSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get player rating"); err != nil {
		return model.RatingSnapshot{}, err
	}
	s, ok := m.ratings[ratingType][playerID]
	if !ok {
		return model.RatingSnapshot{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) GetLadder1v1Stats(ctx context.Context) ([]model.RatingStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get ladder stats"); err != nil {
		return nil, err
	}
	return append([]model.RatingStat(nil), m.stats...), nil
}

func (m *Memory) GetDivisionEntries(ctx context.Context, majorIndex int, subIndexes []int) ([]model.LeaderboardEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failure("get division entries"); err != nil {
		return nil, err
	}

	wanted := make(map[int]bool, len(subIndexes))
	for _, s := range subIndexes {
		wanted[s] = true
	}

	// rang par score décroissant, puis joueur
	matched := make([]model.LeaderboardEntry, 0)
	for _, e := range m.league {
		if e.MajorDivisionIndex == majorIndex && wanted[e.SubDivisionIndex] {
			matched = append(matched, e)
		}
	}
	sortByScore(matched)
	for i := range matched {
		matched[i].Rank = i + 1
	}
	return matched, nil
}

func sortByScore(entries []model.LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].PlayerID < entries[j].PlayerID
		}
		return entries[i].Score > entries[j].Score
	})
}
