package utils

import (
	"encoding/json"
	"net/http"

	"github.com/MassBabyGeek/RankPro-backend/internal/logger"
)

type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// JSON encode avant d'écrire le statut : une valeur non encodable devient un 500
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("could not encode response [%s]: %v", requestID(w), err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(APIResponse{Success: false, Error: "could not encode response", RequestID: requestID(w)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// requestID relit l'identifiant posé par le middleware de log
func requestID(w http.ResponseWriter) string {
	return w.Header().Get("X-Request-ID")
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error renvoie l'enveloppe d'erreur avec l'identifiant de requête, pour
// retrouver la ligne correspondante dans les logs
func Error(w http.ResponseWriter, status int, err string) {
	id := requestID(w)
	logger.Debug("[%d] %s (request %s)", status, err, id)
	JSON(w, status, APIResponse{Success: false, Error: err, RequestID: id})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
