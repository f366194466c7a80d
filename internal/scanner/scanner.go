package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
)

type row interface {
	Scan(dest ...interface{}) error
}

// ScanDivision scanne une ligne SQL vers une Division
func ScanDivision(scanner row) (*model.Division, error) {
	var d model.Division
	var highestScore sql.NullInt64

	err := scanner.Scan(
		&d.MajorIndex, &d.SubIndex, &d.MajorName, &d.SubName, &highestScore,
	)
	if err != nil {
		return nil, err
	}

	// Un plafond NULL est traité comme 0, signalé plus tard par la jauge
	d.HighestScore = utils.NullInt64ToInt(highestScore)

	return &d, nil
}

// ScanRatedEntry scanne une ligne (rang, joueur, parties, moyenne, écart-type)
// et projette le rating conservateur
func ScanRatedEntry(scanner row) (*model.LeaderboardEntry, error) {
	var e model.LeaderboardEntry
	var mean, deviation float64

	err := scanner.Scan(
		&e.Rank, &e.PlayerID, &e.Username, &e.GamesPlayed, &mean, &deviation,
	)
	if err != nil {
		return nil, err
	}

	e.Rating = rating.ConservativeRating(mean, deviation)

	return &e, nil
}

// ScanLeagueEntry scanne une entrée de ligue. La moyenne et l'écart-type du
// ladder 1v1 peuvent être NULL pour un joueur sans partie classée.
func ScanLeagueEntry(scanner row) (*model.LeaderboardEntry, error) {
	var e model.LeaderboardEntry
	var mean, deviation sql.NullFloat64

	err := scanner.Scan(
		&e.Rank, &e.PlayerID, &e.Username, &e.GamesPlayed,
		&e.Score, &e.MajorDivisionIndex, &e.SubDivisionIndex,
		&mean, &deviation,
	)
	if err != nil {
		return nil, err
	}

	e.Rating = rating.ConservativeRating(
		utils.NullFloat64ToFloat64(mean),
		utils.NullFloat64ToFloat64(deviation),
	)

	return &e, nil
}

// ScanPlayerRating scanne (moyenne, écart-type) vers un RatingSnapshot
func ScanPlayerRating(scanner row) (*model.RatingSnapshot, error) {
	var s model.RatingSnapshot
	if err := scanner.Scan(&s.Mean, &s.Deviation); err != nil {
		return nil, err
	}
	return &s, nil
}
