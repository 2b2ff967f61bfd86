package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-secret")

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":         "5f0c7a7e-4b7e-4a55-9d2a-0f6f3c7b9a11",
		"national_id": "1010101010",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
}

type stubChecker struct {
	allowed map[int64]string
	err     error
}

func (s stubChecker) IsAuthorized(_ context.Context, govID int64, nationalID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.allowed[govID] == nationalID, nil
}

func newRouter(checker AccessChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/api", RequireAuth(testSecret))
	authed.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID)+"|"+c.GetString(ContextNationalID))
	})
	scoped := authed.Group("/waqfs/:govId", RequireWaqfAccess(checker))
	scoped.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"gov_id": c.MustGet(ContextGovID)})
	})
	return r
}

func TestParseToken(t *testing.T) {
	claims, err := ParseToken(signToken(t, validClaims(), testSecret), testSecret)
	require.NoError(t, err)
	assert.Equal(t, "1010101010", claims.NationalID)

	_, err = ParseToken(signToken(t, validClaims(), []byte("other")), testSecret)
	assert.Error(t, err)

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err = ParseToken(signToken(t, expired, testSecret), testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noNationalID := validClaims()
	delete(noNationalID, "national_id")
	_, err = ParseToken(signToken(t, noNationalID, testSecret), testSecret)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(stubChecker{})
	token := signToken(t, validClaims(), testSecret)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{"missing token", func(*http.Request) {}, http.StatusUnauthorized},
		{"wrong scheme", func(req *http.Request) { req.Header.Set("Authorization", "Token "+token) }, http.StatusUnauthorized},
		{"garbage token", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "access_token", Value: token}) }, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "5f0c7a7e-4b7e-4a55-9d2a-0f6f3c7b9a11|1010101010", w.Body.String())
			}
		})
	}
}

func TestRequireWaqfAccess(t *testing.T) {
	token := signToken(t, validClaims(), testSecret)
	checker := stubChecker{allowed: map[int64]string{7: "1010101010", 8: "someone-else"}}

	tests := []struct {
		name    string
		checker AccessChecker
		path    string
		status  int
	}{
		{"member", checker, "/api/waqfs/7/dashboard", http.StatusOK},
		{"not a member", checker, "/api/waqfs/8/dashboard", http.StatusForbidden},
		{"malformed id", checker, "/api/waqfs/abc/dashboard", http.StatusBadRequest},
		{"non-positive id", checker, "/api/waqfs/0/dashboard", http.StatusBadRequest},
		{"checker failure", stubChecker{err: errors.New("db down")}, "/api/waqfs/7/dashboard", http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			newRouter(tc.checker).ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	SetTokenCookies(c, true, "access", "refresh")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	}
	assert.Equal(t, 7*24*3600, cookies[1].MaxAge)
}
