package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, admin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": "user@example.com",
		"name":  "Test User",
		"admin": admin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(mw func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, *Claims) {
	var got *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := FromContext(r.Context()); ok {
			got = &c
		}
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)
	return rec, got
}

func TestUserAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, claims := runMiddleware(UserAuthMiddleware, "Bearer "+signToken(t, "test-secret", false))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user@example.com", claims.Email)

	rec, _ = runMiddleware(UserAuthMiddleware, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runMiddleware(UserAuthMiddleware, "Bearer "+signToken(t, "wrong-secret", false))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthMiddlewareRequiresAdminClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, _ := runMiddleware(AdminAuthMiddleware, "Bearer "+signToken(t, "test-secret", true))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = runMiddleware(AdminAuthMiddleware, "Bearer "+signToken(t, "test-secret", false))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthMiddlewareNeverRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, claims := runMiddleware(OptionalAuthMiddleware, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, claims)

	rec, claims = runMiddleware(OptionalAuthMiddleware, "Bearer "+signToken(t, "test-secret", false))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user@example.com", claims.Email)
}
