package search

import (
	"strings"
	"testing"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranked() []model.LeaderboardEntry {
	names := []string{"Alice", "Bob", "alice2", "carol", "dave"}
	entries := make([]model.LeaderboardEntry, len(names))
	for i, n := range names {
		entries[i] = model.LeaderboardEntry{Rank: i + 1, Username: n}
	}
	return entries
}

func TestPrefixWinsOverLaterPrefix(t *testing.T) {
	res := Resolve(ranked(), "al")
	require.NotNil(t, res.Selected)
	assert.Equal(t, ActionSelect, res.Action)
	assert.Equal(t, 1, res.Selected.Rank)
	assert.Equal(t, "Alice", res.Selected.Username)
	assert.Equal(t, 0, res.ScrollTo)
}

func TestPrefixBeatsEarlierSubstring(t *testing.T) {
	entries := []model.LeaderboardEntry{
		{Rank: 1, Username: "xxcar"},
		{Rank: 2, Username: "bob"},
		{Rank: 3, Username: "Carmen"},
	}
	res := Resolve(entries, "CAR")
	require.NotNil(t, res.Selected)
	assert.Equal(t, 3, res.Selected.Rank)
}

func TestSubstringFallback(t *testing.T) {
	res := Resolve(ranked(), "AV")
	require.NotNil(t, res.Selected)
	assert.Equal(t, "dave", res.Selected.Username)
	assert.Equal(t, 4, res.ScrollTo)
}

func TestNoMatchClearsSelection(t *testing.T) {
	s := NewSession(NewIndex(ranked()))
	require.NotNil(t, s.Update("bo").Selected)

	res := s.Update("zzz")
	assert.Equal(t, ActionClearSelection, res.Action)
	assert.Equal(t, NoScroll, res.ScrollTo)
	assert.Nil(t, res.Selected)
	assert.Nil(t, s.Selected())
}

func TestEmptyList(t *testing.T) {
	res := Resolve(nil, "al")
	assert.Equal(t, ActionClearSelection, res.Action)
	assert.Nil(t, res.Selected)
}

func TestNumericQueryScrollsWithoutSelecting(t *testing.T) {
	s := NewSession(NewIndex(ranked()))
	s.Update("car")

	res := s.Update("2")
	assert.Equal(t, ActionScroll, res.Action)
	assert.Equal(t, 1, res.ScrollTo)
	require.NotNil(t, res.Selected)
	assert.Equal(t, "carol", res.Selected.Username)
}

func TestNumericOutOfRangeIsNoop(t *testing.T) {
	s := NewSession(NewIndex(ranked()))
	s.Update("bob")

	for _, q := range []string{"42", "0", "99999999999999999999999"} {
		res := s.Update(q)
		assert.Equal(t, ActionNone, res.Action, q)
		assert.Equal(t, NoScroll, res.ScrollTo, q)
		require.NotNil(t, res.Selected, q)
		assert.Equal(t, "Bob", res.Selected.Username, q)
	}
}

func TestMalformedNumbersFallThroughToText(t *testing.T) {
	entries := []model.LeaderboardEntry{{Rank: 1, Username: "a"}, {Rank: 2, Username: "player-3"}}
	res := Resolve(entries, "-3")
	require.NotNil(t, res.Selected)
	assert.Equal(t, 2, res.Selected.Rank)

	res = Resolve(entries, "12abc")
	assert.Equal(t, ActionClearSelection, res.Action)
}

func TestPrefixIndexMatchesLinearScan(t *testing.T) {
	entries := ranked()
	idx := NewIndex(entries)
	for _, q := range []string{"a", "al", "ALICE", "alice2", "b", "c", "d", "e", ""} {
		want := -1
		for i, e := range entries {
			if len(e.Username) >= len(q) && strings.EqualFold(e.Username[:len(q)], q) {
				want = i
				break
			}
		}
		got, ok := idx.PrefixMatch(q)
		assert.Equal(t, want != -1, ok, q)
		if ok {
			assert.Equal(t, want, got, q)
		}
	}
}
