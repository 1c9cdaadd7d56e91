package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"whisperwall/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("a-test-secret-that-is-long-enough")

	token, err := manager.GenerateToken("user-42", []string{"admin"}, time.Hour)
	req.NoError(err)

	claims, err := manager.ValidateToken(token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.True(claims.HasRole("admin"))
	req.False(claims.HasRole("moderator"))
}

func TestTokenManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("first-secret")
	other := NewTokenManager("second-secret")

	// Given a token signed with another secret
	token, err := other.GenerateToken("user-1", nil, time.Hour)
	req.NoError(err)
	_, err = manager.ValidateToken(token)
	req.ErrorIs(err, errors.ErrInvalidToken)

	// Given an already expired token
	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := manager.GenerateToken("user-1", nil, time.Hour)
	req.NoError(err)
	manager.now = time.Now
	_, err = manager.ValidateToken(expired)
	req.ErrorIs(err, errors.ErrInvalidToken)
}

func TestTokenManager_Disabled(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("")

	_, err := manager.UserIDFromToken("anything")
	req.ErrorIs(err, errors.ErrAuthDisabled)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := NewTokenManager("middleware-secret")
	admin, err := manager.GenerateToken("op", []string{"admin"}, time.Hour)
	require.NoError(t, err)
	student, err := manager.GenerateToken("student", []string{"member"}, time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/ops", RequireRole(manager, "admin"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(UserIDKey)))
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + student, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := httptest.NewRequest(http.MethodGet, "/ops", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)
			req.Equal(tt.code, w.Code)
		})
	}
}

func TestPassword_HashAndCompare(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("correct horse battery staple")
	req.NoError(err)
	req.Contains(hash, "$argon2id$v=19$m=65536,t=3,p=2$")

	ok, err := ComparePassword("correct horse battery staple", hash)
	req.NoError(err)
	req.True(ok)

	ok, err = ComparePassword("wrong", hash)
	req.NoError(err)
	req.False(ok)

	// Two hashes of the same password differ by their salt
	other, err := HashPassword("correct horse battery staple")
	req.NoError(err)
	req.NotEqual(hash, other)

	_, err = ComparePassword("x", "not-a-hash")
	req.Error(err)
}

func TestAdminLogin(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("a-test-secret-that-is-long-enough")
	hash, err := HashPassword("s3cret")
	req.NoError(err)
	login := NewAdminLogin(tokens, hash, time.Hour)

	token, err := login.Login("s3cret")
	req.NoError(err)
	claims, err := tokens.ValidateToken(token)
	req.NoError(err)
	req.True(claims.HasRole(AdminRole))

	_, err = login.Login("guess")
	req.ErrorIs(err, errors.ErrInvalidCredentials)

	_, err = NewAdminLogin(tokens, "", time.Hour).Login("s3cret")
	req.ErrorIs(err, errors.ErrAuthDisabled)
}
