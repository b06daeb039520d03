package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(a *Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", a.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDisabledAuthUsesLocalUser(t *testing.T) {
	w := get(newTestRouter(New("", nil)), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, LocalUser, w.Body.String())
}

func TestValidToken(t *testing.T) {
	a := New("s3cret", nil)
	token, err := a.Issue("alice", time.Hour)
	require.NoError(t, err)

	w := get(newTestRouter(a), "bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestRejectedTokens(t *testing.T) {
	a := New("s3cret", nil)
	expired, err := a.Issue("alice", -time.Minute)
	require.NoError(t, err)
	forged, err := New("other", nil).Issue("alice", time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing", "", "missing or invalid token"},
		{"not bearer", "Basic abc", "missing or invalid token"},
		{"expired", "Bearer " + expired, "invalid token"},
		{"forged", "Bearer " + forged, "invalid token"},
		{"no subject", "Bearer " + noSubject, "invalid token"},
		{"wrong alg", "Bearer " + wrongAlg, "invalid token"},
	}
	r := newTestRouter(a)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"unauthorized","message":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER abc"))
	assert.Equal(t, "", bearerToken("Bearer "))
	assert.Equal(t, "", bearerToken("Token abc"))
}
