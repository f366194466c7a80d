package provider

import (
	"context"
	"errors"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
	"github.com/MassBabyGeek/RankPro-backend/internal/scanner"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Postgres lit les classements de la saison courante
type Postgres struct {
	pool           *pgxpool.Pool
	season         int
	minGamesPlayed int
}

func NewPostgres(pool *pgxpool.Pool, season, minGamesPlayed int) *Postgres {
	return &Postgres{pool: pool, season: season, minGamesPlayed: minGamesPlayed}
}

func (p *Postgres) GetDivisions(ctx context.Context) ([]model.Division, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT major_division_index, sub_division_index, major_division_name, sub_division_name, highest_score
		FROM divisions
		WHERE season = $1
		ORDER BY major_division_index, sub_division_index
	`, p.season)
	if err != nil {
		return nil, Wrap("get divisions", err)
	}
	defer rows.Close()

	divisions := make([]model.Division, 0)
	for rows.Next() {
		d, err := scanner.ScanDivision(rows)
		if err != nil {
			return nil, Wrap("scan division", err)
		}
		divisions = append(divisions, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap("get divisions", err)
	}
	return divisions, nil
}

func (p *Postgres) GetEntries(ctx context.Context, ratingType model.RatingType) ([]model.LeaderboardEntry, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT
			ROW_NUMBER() OVER (ORDER BY lr.mean - 3 * lr.deviation DESC, p.id) AS rank,
			p.id,
			p.login,
			lr.games_played,
			lr.mean,
			lr.deviation
		FROM leaderboard_ratings lr
		INNER JOIN players p ON p.id = lr.player_id
		WHERE lr.rating_type = $1
		ORDER BY rank
	`, string(ratingType))
	if err != nil {
		return nil, Wrap("get entries", err)
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0)
	for rows.Next() {
		e, err := scanner.ScanRatedEntry(rows)
		if err != nil {
			return nil, Wrap("scan entry", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap("get entries", err)
	}
	return entries, nil
}

const leagueEntrySelect = `
	WITH ranked AS (
		SELECT
			ROW_NUMBER() OVER (ORDER BY ls.score DESC, ls.player_id) AS rank,
			ls.player_id,
			ls.games_played,
			ls.score,
			ls.major_division_index,
			ls.sub_division_index
		FROM league_scores ls
		WHERE ls.season = $1
	)
	SELECT
		r.rank, p.id, p.login, r.games_played,
		r.score, r.major_division_index, r.sub_division_index,
		lr.mean, lr.deviation
	FROM ranked r
	INNER JOIN players p ON p.id = r.player_id
	LEFT JOIN leaderboard_ratings lr ON lr.player_id = r.player_id AND lr.rating_type = 'ladder_1v1'
`

func (p *Postgres) GetLeagueEntryForPlayer(ctx context.Context, playerID int) (model.LeaderboardEntry, error) {
	row := p.pool.QueryRow(ctx, leagueEntrySelect+`WHERE r.player_id = $2`, p.season, playerID)

	e, err := scanner.ScanLeagueEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LeaderboardEntry{}, ErrNotFound
	}
	if err != nil {
		return model.LeaderboardEntry{}, Wrap("get league entry", err)
	}
	return *e, nil
}

func (p *Postgres) GetPlayerRating(ctx context.Context, playerID int, ratingType model.RatingType) (model.RatingSnapshot, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT mean, deviation
		FROM leaderboard_ratings
		WHERE player_id = $1 AND rating_type = $2
	`, playerID, string(ratingType))

	s, err := scanner.ScanPlayerRating(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RatingSnapshot{}, ErrNotFound
	}
	if err != nil {
		return model.RatingSnapshot{}, Wrap("get player rating", err)
	}
	return *s, nil
}

// GetLadder1v1Stats regroupe les joueurs ayant assez de parties par tranche de 100
func (p *Postgres) GetLadder1v1Stats(ctx context.Context) ([]model.RatingStat, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT mean, deviation
		FROM leaderboard_ratings
		WHERE rating_type = 'ladder_1v1' AND games_played >= $1
	`, p.minGamesPlayed)
	if err != nil {
		return nil, Wrap("get ladder stats", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	order := make([]int, 0)
	for rows.Next() {
		s, err := scanner.ScanPlayerRating(rows)
		if err != nil {
			return nil, Wrap("scan ladder stat", err)
		}
		bucket := rating.RoundRatingToNextLowest100(float64(rating.Project(*s)))
		if _, seen := counts[bucket]; !seen {
			order = append(order, bucket)
		}
		counts[bucket]++
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap("get ladder stats", err)
	}

	stats := make([]model.RatingStat, 0, len(order))
	for _, bucket := range order {
		stats = append(stats, model.RatingStat{Rating: bucket, CountWithEnoughGamesPlayed: counts[bucket]})
	}
	return stats, nil
}

func (p *Postgres) GetDivisionEntries(ctx context.Context, majorIndex int, subIndexes []int) ([]model.LeaderboardEntry, error) {
	subs := make([]int64, len(subIndexes))
	for i, s := range subIndexes {
		subs[i] = int64(s)
	}

	rows, err := p.pool.Query(ctx, leagueEntrySelect+`
		WHERE r.major_division_index = $2 AND r.sub_division_index = ANY($3)
		ORDER BY r.rank
	`, p.season, majorIndex, pq.Array(subs))
	if err != nil {
		return nil, Wrap("get division entries", err)
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0)
	for rows.Next() {
		e, err := scanner.ScanLeagueEntry(rows)
		if err != nil {
			return nil, Wrap("scan division entry", err)
		}
		// rang contigu à l'intérieur de la division
		e.Rank = len(entries) + 1
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, Wrap("get division entries", err)
	}
	return entries, nil
}
