package handler

import (
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/RankPro-backend/internal/middleware"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/gorilla/mux"
)

func playerIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	playerID, err := strconv.Atoi(mux.Vars(r)["playerId"])
	if err != nil || playerID <= 0 {
		utils.Error(w, http.StatusBadRequest, "invalid player id")
		return 0, false
	}
	return playerID, true
}

func (h *Handler) GetPlayerLeague(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}
	h.writePlacement(w, r, playerID)
}

// GetMyLeague nécessite RequireAuth en amont
func (h *Handler) GetMyLeague(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	h.writePlacement(w, r, playerID)
}

func (h *Handler) writePlacement(w http.ResponseWriter, r *http.Request, playerID int) {
	placement, err := h.leaderboard.Placement(r.Context(), playerID)
	if err != nil {
		fail(w, err, "league entry")
		return
	}
	utils.Success(w, placement)
}

func (h *Handler) GetPlayerHistogram(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDFromPath(w, r)
	if !ok {
		return
	}
	h.writePlayerHistogram(w, r, playerID)
}

func (h *Handler) GetMyHistogram(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())
	h.writePlayerHistogram(w, r, playerID)
}

func (h *Handler) writePlayerHistogram(w http.ResponseWriter, r *http.Request, playerID int) {
	buckets, err := h.leaderboard.PlayerHistogram(r.Context(), playerID)
	if err != nil {
		fail(w, err, "histogram")
		return
	}
	utils.Success(w, buckets)
}
