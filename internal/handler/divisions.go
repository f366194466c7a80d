package handler

import (
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/gorilla/mux"
)

func majorFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	major, err := strconv.Atoi(mux.Vars(r)["major"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid major division index")
		return 0, false
	}
	return major, true
}

func (h *Handler) GetDivisions(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.leaderboard.Divisions(r.Context())
	if err != nil {
		fail(w, err, "divisions")
		return
	}
	utils.Success(w, divisions)
}

// GetMajorDivisions liste une entrée par division majeure (sous-division 1)
func (h *Handler) GetMajorDivisions(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.leaderboard.MajorDivisions(r.Context())
	if err != nil {
		fail(w, err, "divisions")
		return
	}
	utils.Success(w, divisions)
}

func (h *Handler) GetSubDivisions(w http.ResponseWriter, r *http.Request) {
	major, ok := majorFromPath(w, r)
	if !ok {
		return
	}

	divisions, err := h.leaderboard.SubDivisions(r.Context(), major)
	if err != nil {
		fail(w, err, "divisions")
		return
	}
	utils.Success(w, divisions)
}

// GetDivisionEntries liste les joueurs de toutes les sous-divisions d'une division majeure
func (h *Handler) GetDivisionEntries(w http.ResponseWriter, r *http.Request) {
	major, ok := majorFromPath(w, r)
	if !ok {
		return
	}

	entries, err := h.leaderboard.DivisionEntries(r.Context(), major)
	if err != nil {
		fail(w, err, "division entries")
		return
	}
	utils.Success(w, entries)
}

// GetSubDivisionEntries liste le classement d'une seule sous-division
func (h *Handler) GetSubDivisionEntries(w http.ResponseWriter, r *http.Request) {
	major, ok := majorFromPath(w, r)
	if !ok {
		return
	}
	sub, err := strconv.Atoi(mux.Vars(r)["sub"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid sub division index")
		return
	}

	entries, err := h.leaderboard.SubDivisionEntries(r.Context(), major, sub)
	if err != nil {
		fail(w, err, "division entries")
		return
	}
	utils.Success(w, entries)
}
