// Package division place un score dans la hiérarchie division majeure -> sous-division.
package division

import (
	"errors"
	"fmt"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
)

// ErrInvalidHighestScore signale une division dont le score plafond vaut zéro
var ErrInvalidHighestScore = errors.New("division has no highest score")

// FindDivision cherche la division (major, sub). Le premier doublon rencontré gagne.
func FindDivision(divisions []model.Division, majorIndex, subIndex int) (model.Division, bool) {
	for _, d := range divisions {
		if d.MajorIndex == majorIndex && d.SubIndex == subIndex {
			return d, true
		}
	}
	return model.Division{}, false
}

// GaugeArcLength retourne la longueur d'arc (en degrés, sens horaire) du score dans la division
func GaugeArcLength(score int, division model.Division) (float64, error) {
	if division.HighestScore == 0 {
		return 0, fmt.Errorf("%w: major %d sub %d", ErrInvalidHighestScore, division.MajorIndex, division.SubIndex)
	}
	return -360.0 * float64(score) / float64(division.HighestScore), nil
}

// MajorDivisionOptions garde la sous-division 1 de chaque division majeure
func MajorDivisionOptions(divisions []model.Division) []model.Division {
	out := make([]model.Division, 0)
	for _, d := range divisions {
		if d.SubIndex == 1 {
			out = append(out, d)
		}
	}
	return out
}

// SubDivisionsOf garde les divisions de la division majeure donnée
func SubDivisionsOf(divisions []model.Division, majorIndex int) []model.Division {
	out := make([]model.Division, 0)
	for _, d := range divisions {
		if d.MajorIndex == majorIndex {
			out = append(out, d)
		}
	}
	return out
}
