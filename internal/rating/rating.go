// Package rating projette une distribution (moyenne, écart-type) en ratings affichables.
//
// Les deux lois d'arrondi (RoundRatingToNextLowest100 et RoundedRating) ne se comportent
// pas de la même façon sur les valeurs négatives. Elles restent séparées.
package rating

import model "github.com/MassBabyGeek/RankPro-backend/internal/models"

// ConservativeRating retourne mean - 3*deviation tronqué vers zéro
func ConservativeRating(mean, deviation float64) int {
	return int(mean - 3*deviation)
}

// Project applique ConservativeRating à un snapshot
func Project(s model.RatingSnapshot) int {
	return ConservativeRating(s.Mean, s.Deviation)
}

// RoundRatingToNextLowest100 arrondit à la centaine inférieure.
// Pour une valeur négative on retire 100 avant la division tronquée,
// donc -100 donne -200 alors qu'un vrai floor donnerait -100.
func RoundRatingToNextLowest100(rating float64) int {
	adjusted := rating
	if rating < 0 {
		adjusted = rating - 100
	}
	return int(adjusted/100) * 100
}

// RoundedRating arrondit à la centaine la plus proche (0.5 vers le haut),
// avec division entière tronquée : RoundedRating(-149) == 0.
func RoundedRating(rating int) int {
	return (rating + 50) / 100 * 100
}

// Projection calcule toutes les projections d'un snapshot en une fois
func Projection(s model.RatingSnapshot) model.ProjectedRating {
	conservative := Project(s)
	return model.ProjectedRating{
		Snapshot:        s,
		Conservative:    conservative,
		Rounded:         RoundedRating(conservative),
		HistogramBucket: RoundRatingToNextLowest100(float64(conservative)),
	}
}
