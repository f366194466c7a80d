package handler

import (
	"fmt"
	"math"
	"net/http"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/rating"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
)

// ratingLimit borne les ratings reçus pour que projection et arrondis restent dans int
const ratingLimit = 1 << 30

func checkRatingRange(name string, v float64) error {
	if math.Abs(v) > ratingLimit {
		return fmt.Errorf("%s out of range: %g", name, v)
	}
	return nil
}

func snapshotFromQuery(r *http.Request) (model.RatingSnapshot, error) {
	mean, err := utils.QueryFloat(r, "mean")
	if err != nil {
		return model.RatingSnapshot{}, err
	}
	deviation, err := utils.QueryFloat(r, "deviation")
	if err != nil {
		return model.RatingSnapshot{}, err
	}
	if err := checkRatingRange("mean", mean); err != nil {
		return model.RatingSnapshot{}, err
	}
	if err := checkRatingRange("deviation", deviation); err != nil {
		return model.RatingSnapshot{}, err
	}
	if err := checkRatingRange("conservative rating", mean-3*deviation); err != nil {
		return model.RatingSnapshot{}, err
	}
	return model.RatingSnapshot{Mean: mean, Deviation: deviation}, nil
}

// ProjectRating expose les projections d'un couple (mean, deviation)
func ProjectRating(w http.ResponseWriter, r *http.Request) {
	snap, err := snapshotFromQuery(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.Success(w, rating.Projection(snap))
}

// GetLadderHistogram : ?rating= (déjà projeté) ou ?mean=&deviation=
func (h *Handler) GetLadderHistogram(w http.ResponseWriter, r *http.Request) {
	var viewer int
	if r.URL.Query().Has("rating") {
		v, err := utils.QueryInt(r, "rating", 0)
		if err == nil {
			err = checkRatingRange("rating", float64(v))
		}
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		viewer = v
	} else {
		snap, err := snapshotFromQuery(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "rating or mean and deviation are required: "+err.Error())
			return
		}
		viewer = rating.Project(snap)
	}

	buckets, err := h.leaderboard.Histogram(r.Context(), viewer)
	if err != nil {
		fail(w, err, "histogram")
		return
	}
	utils.Success(w, buckets)
}
