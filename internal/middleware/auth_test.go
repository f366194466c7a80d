package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "s3cret"

func whoAmI(w http.ResponseWriter, r *http.Request) {
	id, ok := PlayerIDFromContext(r.Context())
	if !ok {
		w.Write([]byte("anonymous"))
		return
	}
	w.Write([]byte(strconv.Itoa(id)))
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	h := OptionalAuth(secret)(http.HandlerFunc(whoAmI))

	w := serve(h, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	token, err := SignPlayerToken(42, secret)
	require.NoError(t, err)
	w = serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	other, err := SignPlayerToken(42, "another-secret")
	require.NoError(t, err)
	w = serve(h, "Bearer "+other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthRejectsBadSubject(t *testing.T) {
	h := OptionalAuth(secret)(http.HandlerFunc(whoAmI))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte(secret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+token).Code)
}

func TestOptionalAuthRejectsOtherAlgorithms(t *testing.T) {
	h := OptionalAuth(secret)(http.HandlerFunc(whoAmI))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte(secret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+token).Code)
}

func TestRequireAuth(t *testing.T) {
	h := OptionalAuth(secret)(RequireAuth(http.HandlerFunc(whoAmI)))

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)

	token, err := SignPlayerToken(7, secret)
	require.NoError(t, err)
	w := serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())
}
