package provider

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryNotFoundAndErrors(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.GetLeagueEntryForPlayer(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.GetPlayerRating(ctx, 1, model.RatingTypeLadder1v1)
	assert.ErrorIs(t, err, ErrNotFound)

	m.SetError(errors.New("network down"))
	_, err = m.GetDivisions(ctx)
	assert.True(t, IsUnavailable(err))

	m.SetError(nil)
	divs, err := m.GetDivisions(ctx)
	require.NoError(t, err)
	assert.Empty(t, divs)
}

func TestMemoryDivisionEntriesAreRankedWithinDivision(t *testing.T) {
	m := NewMemory()
	m.SetLeagueEntries([]model.LeaderboardEntry{
		{PlayerID: 1, Score: 5, MajorDivisionIndex: 1, SubDivisionIndex: 1},
		{PlayerID: 2, Score: 9, MajorDivisionIndex: 1, SubDivisionIndex: 2},
		{PlayerID: 3, Score: 7, MajorDivisionIndex: 2, SubDivisionIndex: 1},
		{PlayerID: 4, Score: 9, MajorDivisionIndex: 1, SubDivisionIndex: 3},
	})

	entries, err := m.GetDivisionEntries(context.Background(), 1, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].PlayerID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].PlayerID)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestSeedDemo(t *testing.T) {
	m := NewMemory()
	SeedDemo(m, 50, 10, rand.New(rand.NewSource(1)))
	ctx := context.Background()

	divs, err := m.GetDivisions(ctx)
	require.NoError(t, err)
	assert.Len(t, divs, 15)

	for _, rt := range []model.RatingType{model.RatingTypeGlobal, model.RatingTypeLadder1v1} {
		entries, err := m.GetEntries(ctx, rt)
		require.NoError(t, err)
		require.Len(t, entries, 50)
		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
			if i > 0 {
				assert.LessOrEqual(t, e.Rating, entries[i-1].Rating)
			}
		}
	}

	stats, err := m.GetLadder1v1Stats(ctx)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, s := range stats {
		assert.False(t, seen[s.Rating], "duplicate bucket %d", s.Rating)
		seen[s.Rating] = true
		assert.Zero(t, s.Rating%100)
	}

	entry, err := m.GetLeagueEntryForPlayer(ctx, 1)
	require.NoError(t, err)
	assert.NotZero(t, entry.MajorDivisionIndex)
}
