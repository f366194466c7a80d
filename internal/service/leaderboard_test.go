package service

import (
	"context"
	"errors"
	"testing"
	"time"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/provider"
	"github.com/MassBabyGeek/RankPro-backend/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() *provider.Memory {
	m := provider.NewMemory()
	m.SetDivisions([]model.Division{
		{MajorIndex: 1, SubIndex: 1, MajorName: "bronze", SubName: "I", HighestScore: 10},
		{MajorIndex: 1, SubIndex: 2, MajorName: "bronze", SubName: "II", HighestScore: 20},
		{MajorIndex: 2, SubIndex: 1, MajorName: "silver", SubName: "I", HighestScore: 0},
	})
	m.SetEntries(model.RatingTypeLadder1v1, []model.LeaderboardEntry{
		{Rank: 1, PlayerID: 1, Username: "Alice", Rating: 1900},
		{Rank: 2, PlayerID: 2, Username: "Bob", Rating: 1500},
		{Rank: 3, PlayerID: 3, Username: "alice2", Rating: 1200},
	})
	m.SetLeagueEntries([]model.LeaderboardEntry{
		{PlayerID: 1, Username: "Alice", Score: 5, MajorDivisionIndex: 1, SubDivisionIndex: 2},
		{PlayerID: 2, Username: "Bob", Score: 3, MajorDivisionIndex: 2, SubDivisionIndex: 1},
		{PlayerID: 3, Username: "alice2", Score: 8, MajorDivisionIndex: 1, SubDivisionIndex: 1},
	})
	m.SetPlayerRating(1, model.RatingTypeLadder1v1, model.RatingSnapshot{Mean: 1500, Deviation: 200})
	m.SetLadder1v1Stats([]model.RatingStat{{Rating: 900, CountWithEnoughGamesPlayed: 5}, {Rating: 800, CountWithEnoughGamesPlayed: 3}})
	return m
}

func TestPlacement(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)

	p, err := l.Placement(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p.Division)
	assert.Equal(t, "II", p.Division.SubName)
	require.NotNil(t, p.GaugeArcLength)
	assert.Equal(t, -90.0, *p.GaugeArcLength)
}

func TestPlacementUnranked(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)
	_, err := l.Placement(context.Background(), 404)
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestPlacementInvalidHighestScoreIsReportedNotFatal(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)
	p, err := l.Placement(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, p.Division)
	assert.Nil(t, p.GaugeArcLength)
}

func TestHistogram(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)

	buckets, err := l.Histogram(context.Background(), 820)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, 800, buckets[0].Rating)
	assert.True(t, buckets[0].IsViewerBucket)

	// joueur 1 : 1500 - 3*200 = 900
	buckets, err = l.PlayerHistogram(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, buckets[1].IsViewerBucket)

	buckets, err = l.PlayerHistogram(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, buckets[0].IsViewerBucket)
	assert.False(t, buckets[1].IsViewerBucket)
}

func TestSearch(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)
	res, err := l.Search(context.Background(), model.RatingTypeLadder1v1, "al")
	require.NoError(t, err)
	require.NotNil(t, res.Selected)
	assert.Equal(t, 1, res.Selected.Rank)

	_, err = l.Search(context.Background(), model.RatingType("bogus"), "al")
	assert.Error(t, err)
}

func TestSearchSessionKeepsItsSnapshot(t *testing.T) {
	m := fixture()
	l := NewLeaderboard(m, 0)

	session, err := l.NewSearchSession(context.Background(), model.RatingTypeLadder1v1)
	require.NoError(t, err)

	m.SetEntries(model.RatingTypeLadder1v1, nil)
	require.NoError(t, l.Refresh(context.Background()))

	res := session.Update("bob")
	assert.Equal(t, search.ActionSelect, res.Action)

	entries, err := l.Entries(context.Background(), model.RatingTypeLadder1v1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSnapshotServedUntilStale(t *testing.T) {
	m := fixture()
	l := NewLeaderboard(m, time.Minute)
	now := time.Now()
	l.now = func() time.Time { return now }

	divs, err := l.Divisions(context.Background())
	require.NoError(t, err)
	require.Len(t, divs, 3)

	m.SetDivisions(nil)
	divs, err = l.Divisions(context.Background())
	require.NoError(t, err)
	assert.Len(t, divs, 3)

	now = now.Add(2 * time.Minute)
	divs, err = l.Divisions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, divs)
}

func TestProviderFailureDegrades(t *testing.T) {
	m := fixture()
	l := NewLeaderboard(m, time.Minute)
	now := time.Now()
	l.now = func() time.Time { return now }

	m.SetError(errors.New("connection refused"))
	_, err := l.Divisions(context.Background())
	assert.True(t, provider.IsUnavailable(err))

	m.SetError(nil)
	_, err = l.Divisions(context.Background())
	require.NoError(t, err)

	// snapshot périmé + panne : l'ancien snapshot est servi
	m.SetError(errors.New("connection refused"))
	now = now.Add(time.Hour)
	divs, err := l.Divisions(context.Background())
	require.NoError(t, err)
	assert.Len(t, divs, 3)

	_, err = l.Histogram(context.Background(), 800)
	assert.True(t, provider.IsUnavailable(err))

	assert.Error(t, l.Refresh(context.Background()))
}

func TestDivisionViews(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)
	ctx := context.Background()

	majors, err := l.MajorDivisions(ctx)
	require.NoError(t, err)
	assert.Len(t, majors, 2)

	entries, err := l.DivisionEntries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice2", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)

	_, err = l.DivisionEntries(ctx, 9)
	assert.ErrorIs(t, err, ErrUnknownDivision)
}

func TestSubDivisionEntries(t *testing.T) {
	l := NewLeaderboard(fixture(), time.Minute)
	ctx := context.Background()

	entries, err := l.SubDivisionEntries(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)

	entries, err = l.SubDivisionEntries(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice2", entries[0].Username)

	_, err = l.SubDivisionEntries(ctx, 1, 3)
	assert.ErrorIs(t, err, ErrUnknownDivision)
}

func TestDivisionIndexFollowsSnapshots(t *testing.T) {
	m := fixture()
	l := NewLeaderboard(m, 0)
	ctx := context.Background()

	first, err := l.divisionIndex(ctx)
	require.NoError(t, err)
	again, err := l.divisionIndex(ctx)
	require.NoError(t, err)
	assert.Same(t, first, again)

	m.SetDivisions([]model.Division{{MajorIndex: 1, SubIndex: 2, MajorName: "bronze", SubName: "II", HighestScore: 40}})
	require.NoError(t, l.Refresh(ctx))

	p, err := l.Placement(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, p.GaugeArcLength)
	assert.Equal(t, -45.0, *p.GaugeArcLength)
}

func TestRefresher(t *testing.T) {
	m := fixture()
	l := NewLeaderboard(m, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := l.Divisions(ctx)
	require.NoError(t, err)
	m.SetDivisions(nil)

	l.StartRefresher(ctx, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		divs, _ := l.Divisions(ctx)
		return len(divs) == 0
	}, time.Second, 5*time.Millisecond)
}
