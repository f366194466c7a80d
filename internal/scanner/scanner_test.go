package scanner

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow copie des valeurs dans les destinations, dans l'ordre
type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r.values[i].(int)
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *sql.NullInt64:
			if r.values[i] == nil {
				*p = sql.NullInt64{}
			} else {
				*p = sql.NullInt64{Int64: int64(r.values[i].(int)), Valid: true}
			}
		case *sql.NullFloat64:
			if r.values[i] == nil {
				*p = sql.NullFloat64{}
			} else {
				*p = sql.NullFloat64{Float64: r.values[i].(float64), Valid: true}
			}
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestScanDivision(t *testing.T) {
	d, err := ScanDivision(fakeRow{values: []interface{}{2, 1, "silver", "I", 30}})
	require.NoError(t, err)
	assert.Equal(t, 30, d.HighestScore)
	assert.Equal(t, "silver", d.MajorName)

	d, err = ScanDivision(fakeRow{values: []interface{}{2, 1, "silver", "I", nil}})
	require.NoError(t, err)
	assert.Equal(t, 0, d.HighestScore)
}

func TestScanRatedEntryProjectsRating(t *testing.T) {
	e, err := ScanRatedEntry(fakeRow{values: []interface{}{1, 42, "alice", 120, 1500.0, 200.0}})
	require.NoError(t, err)
	assert.Equal(t, 900, e.Rating)
	assert.Equal(t, 42, e.PlayerID)
	assert.Equal(t, 120, e.GamesPlayed)
}

func TestScanLeagueEntryWithoutLadderRating(t *testing.T) {
	e, err := ScanLeagueEntry(fakeRow{values: []interface{}{3, 7, "bob", 10, 25, 2, 1, nil, nil}})
	require.NoError(t, err)
	assert.Equal(t, 0, e.Rating)
	assert.Equal(t, 25, e.Score)
	assert.Equal(t, 2, e.MajorDivisionIndex)
	assert.Equal(t, 1, e.SubDivisionIndex)
}

func TestScanPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := ScanPlayerRating(fakeRow{err: boom})
	assert.ErrorIs(t, err, boom)
}
