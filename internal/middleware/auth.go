package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/MassBabyGeek/RankPro-backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys
type contextKey string

const playerContextKey = contextKey("playerID")

// Claims du token : sub contient l'identifiant du joueur
type Claims struct {
	jwt.RegisteredClaims
}

// OptionalAuth injecte l'identifiant du joueur quand un token valide est présent.
// Sans token la requête passe ; un token invalide est refusé.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			playerID, err := parsePlayerToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "invalid token: "+err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth refuse les requêtes sans joueur authentifié
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PlayerIDFromContext(r.Context()); !ok {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parsePlayerToken(raw, secret string) (int, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	playerID, err := strconv.Atoi(claims.Subject)
	if err != nil || playerID <= 0 {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return playerID, nil
}

// PlayerIDFromContext récupère le joueur authentifié
func PlayerIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(playerContextKey).(int)
	return id, ok
}

// SignPlayerToken signe un token HS256 pour un joueur (outils et tests)
func SignPlayerToken(playerID int, secret string) (string, error) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: strconv.Itoa(playerID)}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
