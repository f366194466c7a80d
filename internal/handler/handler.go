package handler

import (
	"errors"
	"net/http"

	"github.com/MassBabyGeek/RankPro-backend/internal/provider"
	"github.com/MassBabyGeek/RankPro-backend/internal/service"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/gorilla/websocket"
)

// Handler regroupe les dépendances des routes HTTP
type Handler struct {
	leaderboard *service.Leaderboard
	upgrader    websocket.Upgrader
}

// New crée les handlers. allowedOrigins filtre l'upgrade websocket ; "*" accepte tout.
func New(leaderboard *service.Leaderboard, allowedOrigins []string) *Handler {
	return &Handler{
		leaderboard: leaderboard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// fail traduit une erreur du service en réponse HTTP
func fail(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		utils.Error(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, service.ErrUnknownDivision):
		utils.Error(w, http.StatusNotFound, err.Error())
	case provider.IsUnavailable(err):
		utils.Error(w, http.StatusServiceUnavailable, "leaderboard unavailable")
	default:
		utils.Error(w, http.StatusInternalServerError, "could not load "+what+": "+err.Error())
	}
}
