package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-talenthub-backend/config"
	"go-talenthub-backend/internal/delivery/http/response"
	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or auth_token cookie), mirrors
// the subject into the local users table on first sight, and loads the
// session identity into the request context. Requests without a valid token
// are rejected.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, email, ok := authenticate(c, jwksProvider, cfg)
		if !ok {
			c.Abort()
			return
		}

		// Mirror the identity provider's subject locally so profile, jobs
		// and chats can reference it.
		user := &domain.User{ID: sub, Email: email}
		if err := authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		current, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		setSession(c, sub, email, current.Role)
		c.Next()
	}
}

// OptionalAuth loads the session identity when a valid token is present but
// never rejects the request. Used on public views that adapt to a signed-in
// viewer (the profile page's contact affordance).
func OptionalAuth(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if sub, email, err := parseToken(tokenString, jwksProvider, cfg); err == nil {
				setSession(c, sub, email, "")
			}
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwksProvider *auth.Provider, cfg *config.Config) (sub, email string, ok bool) {
	tokenString := extractToken(c)
	if tokenString == "" {
		response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
		return "", "", false
	}

	sub, email, err := parseToken(tokenString, jwksProvider, cfg)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
		return "", "", false
	}
	return sub, email, true
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenString string, jwksProvider *auth.Provider, cfg *config.Config) (sub, email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			// HS256 - shared secret
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			// RS256 - JWKS
			return jwksProvider.KeyFunc(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid claims")
	}

	sub, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	if sub == "" {
		return "", "", fmt.Errorf("sub claim missing")
	}
	return sub, email, nil
}

// setSession stores the identity both in gin's key store (for c.GetString)
// and in the request context (for usecases reading typed context keys).
func setSession(c *gin.Context, sub, email, role string) {
	c.Set(string(domain.KeyUserID), sub)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(string(domain.KeyUserRole), role)

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyUserID, sub)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	c.Request = c.Request.WithContext(ctx)
}
