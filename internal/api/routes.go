package api

import (
	"net/http"

	"github.com/MassBabyGeek/RankPro-backend/internal/config"
	"github.com/MassBabyGeek/RankPro-backend/internal/handler"
	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	"github.com/MassBabyGeek/RankPro-backend/internal/middleware"
	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.OptionalAuth(cfg.JWTSecret))

	meRoutes := r.PathPrefix("/players/me").Subrouter()
	meRoutes.Use(middleware.RequireAuth)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard/{ratingType}", h.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/{ratingType}/search", h.SearchLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/{ratingType}/search/ws", h.SearchSocket).Methods(http.MethodGet)

	// Divisions
	r.HandleFunc("/divisions", h.GetDivisions).Methods(http.MethodGet)
	r.HandleFunc("/divisions/major", h.GetMajorDivisions).Methods(http.MethodGet)
	r.HandleFunc("/divisions/{major:[0-9]+}/sub", h.GetSubDivisions).Methods(http.MethodGet)
	r.HandleFunc("/divisions/{major:[0-9]+}/entries", h.GetDivisionEntries).Methods(http.MethodGet)
	r.HandleFunc("/divisions/{major:[0-9]+}/{sub:[0-9]+}/entries", h.GetSubDivisionEntries).Methods(http.MethodGet)

	// Players
	meRoutes.HandleFunc("/league", h.GetMyLeague).Methods(http.MethodGet)
	meRoutes.HandleFunc("/histogram", h.GetMyHistogram).Methods(http.MethodGet)
	r.HandleFunc("/players/{playerId:[0-9]+}/league", h.GetPlayerLeague).Methods(http.MethodGet)
	r.HandleFunc("/players/{playerId:[0-9]+}/histogram", h.GetPlayerHistogram).Methods(http.MethodGet)

	// Rating
	r.HandleFunc("/ladder1v1/histogram", h.GetLadderHistogram).Methods(http.MethodGet)
	r.HandleFunc("/rating/project", handler.ProjectRating).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	})

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(r)
}
