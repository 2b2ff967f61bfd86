package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"awqaf/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth and RequireWaqfAccess
const (
	ContextUserID     = "userID"
	ContextNationalID = "nationalID"
	ContextGovID      = "govID"
)

// SetTokenCookies sets access_token and refresh_token as HttpOnly cookies
func SetTokenCookies(c *gin.Context, secure bool, accessToken, refreshToken string) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	c.SetSameSite(sameSiteMode(secure))
	// access_token: 24h
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", secure, true)
	// refresh_token: 7 days
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", secure, true)
}

// ClearTokenCookies removes access_token and refresh_token cookies
func ClearTokenCookies(c *gin.Context, secure bool) {
	c.SetSameSite(sameSiteMode(secure))
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
}

func sameSiteMode(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// Claims is what an access token carries about its holder.
type Claims struct {
	UserID     string
	NationalID string
}

// ParseToken validates an HS256 token and extracts the account claims.
func ParseToken(tokenString string, secret []byte) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	nationalID, _ := claims["national_id"].(string)
	if sub == "" || nationalID == "" {
		return Claims{}, errors.New("token is missing subject or national id")
	}
	return Claims{UserID: sub, NationalID: nationalID}, nil
}

// tokenFromRequest reads the access token from the cookie, falling back to the Authorization header.
func tokenFromRequest(c *gin.Context) (string, string) {
	if tokenString, err := c.Cookie("access_token"); err == nil && tokenString != "" {
		return tokenString, ""
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization is missing"
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "Invalid authorization format. Expected 'Bearer <token>'"
	}
	return parts[1], ""
}

// RequireAuth validates the JWT and stores the caller's user id and national id in the context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, problem := tokenFromRequest(c)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, problem))
			return
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextNationalID, claims.NationalID)

		c.Next()
	}
}

// AccessChecker answers whether a national id may act on a waqf.
type AccessChecker interface {
	IsAuthorized(ctx context.Context, govID int64, nationalID string) (bool, error)
}

// RequireWaqfAccess parses :govId and rejects callers who are not authorized users of that waqf.
// Must run after RequireAuth.
func RequireWaqfAccess(checker AccessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		govID, err := strconv.ParseInt(c.Param("govId"), 10, 64)
		if err != nil || govID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid waqf gov id"))
			return
		}

		nationalID := c.GetString(ContextNationalID)
		if nationalID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "National ID not found in context"))
			return
		}

		ok, err := checker.IsAuthorized(c.Request.Context(), govID, nationalID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify waqf access"))
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied for this waqf"))
			return
		}

		c.Set(ContextGovID, govID)
		c.Next()
	}
}
