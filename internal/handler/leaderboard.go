package handler

import (
	"net/http"

	model "github.com/MassBabyGeek/RankPro-backend/internal/models"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/gorilla/mux"
)

func ratingTypeFromPath(w http.ResponseWriter, r *http.Request) (model.RatingType, bool) {
	rt, ok := model.ParseRatingType(mux.Vars(r)["ratingType"])
	if !ok {
		utils.Error(w, http.StatusBadRequest, "unknown rating type "+mux.Vars(r)["ratingType"])
	}
	return rt, ok
}

// GetLeaderboard récupère le classement d'un type de rating
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	rt, ok := ratingTypeFromPath(w, r)
	if !ok {
		return
	}

	limit, err := utils.QueryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		utils.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	entries, err := h.leaderboard.Entries(r.Context(), rt)
	if err != nil {
		fail(w, err, "leaderboard")
		return
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	utils.Success(w, entries)
}

// SearchLeaderboard résout une requête ponctuelle (?q=)
func (h *Handler) SearchLeaderboard(w http.ResponseWriter, r *http.Request) {
	rt, ok := ratingTypeFromPath(w, r)
	if !ok {
		return
	}

	result, err := h.leaderboard.Search(r.Context(), rt, r.URL.Query().Get("q"))
	if err != nil {
		fail(w, err, "leaderboard")
		return
	}
	utils.Success(w, result)
}
