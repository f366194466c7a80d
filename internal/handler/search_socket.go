package handler

import (
	"net/http"
	"time"

	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
	"github.com/MassBabyGeek/RankPro-backend/internal/middleware"
	"github.com/MassBabyGeek/RankPro-backend/internal/search"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	socketWriteWait = 5 * time.Second
	socketIdle      = 2 * time.Minute
)

// searchMessage est envoyé par le client à chaque frappe
type searchMessage struct {
	Query string `json:"query"`
}

// searchReply enveloppe un résultat de recherche
type searchReply struct {
	SessionID string        `json:"sessionId"`
	Result    search.Result `json:"result"`
}

// SearchSocket ouvre une session de recherche sur le snapshot courant.
// Le snapshot est figé pour toute la durée de la connexion.
func (h *Handler) SearchSocket(w http.ResponseWriter, r *http.Request) {
	rt, ok := ratingTypeFromPath(w, r)
	if !ok {
		return
	}

	session, err := h.leaderboard.NewSearchSession(r.Context(), rt)
	if err != nil {
		fail(w, err, "leaderboard")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade a déjà répondu au client
		logger.Warning("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	logger.Debug("search session %s opened (%s, request %s)", sessionID, rt, middleware.RequestIDFromContext(r.Context()))

	for {
		conn.SetReadDeadline(time.Now().Add(socketIdle))

		var msg searchMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warning("search session %s: %v", sessionID, err)
			}
			break
		}

		reply := searchReply{SessionID: sessionID, Result: session.Update(msg.Query)}
		conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warning("search session %s: %v", sessionID, err)
			break
		}
	}

	logger.Debug("search session %s closed", sessionID)
}
