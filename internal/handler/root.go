package handler

import (
	"net/http"

	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "RankPro API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard/{ratingType}", "description": "Classement complet (global ou ladder_1v1), ?limit="},
				{"method": "GET", "path": "/leaderboard/{ratingType}/search?q=", "description": "Recherche ponctuelle (rang ou pseudo)"},
				{"method": "GET", "path": "/leaderboard/{ratingType}/search/ws", "description": "Session de recherche au fil de la frappe (websocket)"},
			},
			"divisions": []map[string]string{
				{"method": "GET", "path": "/divisions", "description": "Toutes les divisions"},
				{"method": "GET", "path": "/divisions/major", "description": "Divisions majeures"},
				{"method": "GET", "path": "/divisions/{major}/sub", "description": "Sous-divisions d'une division majeure"},
				{"method": "GET", "path": "/divisions/{major}/entries", "description": "Joueurs d'une division majeure"},
				{"method": "GET", "path": "/divisions/{major}/{sub}/entries", "description": "Classement d'une sous-division"},
			},
			"players": []map[string]string{
				{"method": "GET", "path": "/players/{playerId}/league", "description": "Division et jauge d'un joueur"},
				{"method": "GET", "path": "/players/me/league", "description": "Division et jauge du joueur connecté"},
				{"method": "GET", "path": "/players/{playerId}/histogram", "description": "Distribution ladder 1v1 centrée sur un joueur"},
				{"method": "GET", "path": "/players/me/histogram", "description": "Distribution ladder 1v1 du joueur connecté"},
			},
			"rating": []map[string]string{
				{"method": "GET", "path": "/ladder1v1/histogram?rating= | ?mean=&deviation=", "description": "Distribution ladder 1v1"},
				{"method": "GET", "path": "/rating/project?mean=&deviation=", "description": "Rating conservateur et arrondis"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
