package histogram

import (
	"sort"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
)

// Build trie les stats par rating croissant et marque la tranche du joueur.
// Les tranches à zéro joueur sont conservées ; le filtrage sur le nombre de
// parties est déjà fait par le provider.
func Build(stats []model.RatingStat, viewerRating int) []model.RatingBucket {
	sorted := make([]model.RatingStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating < sorted[j].Rating
	})

	viewerBucket := rating.RoundRatingToNextLowest100(float64(viewerRating))

	buckets := make([]model.RatingBucket, 0, len(sorted))
	for _, s := range sorted {
		buckets = append(buckets, model.RatingBucket{
			Rating:         s.Rating,
			Count:          s.CountWithEnoughGamesPlayed,
			IsViewerBucket: s.Rating == viewerBucket,
		})
	}
	return buckets
}

// BuildUnflagged trie les stats sans marquer de tranche (joueur sans rating)
func BuildUnflagged(stats []model.RatingStat) []model.RatingBucket {
	buckets := Build(stats, 0)
	for i := range buckets {
		buckets[i].IsViewerBucket = false
	}
	return buckets
}
