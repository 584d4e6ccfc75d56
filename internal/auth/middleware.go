package auth

import (
	"errors"
	"net/http"
	"strings"

	"sportbook/internal/api"
	"sportbook/internal/apperr"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "user_email"
	ctxRole   = "user_role"
)

func abort(c *gin.Context, status int, kind apperr.Kind, message string) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{
		Error: api.ErrorBody{Kind: string(kind), Message: message},
	})
}

func AuthMiddleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Token is empty")
			return
		}

		claims, err := tokens.Parse(tokenString, TokenTypeAccess)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Token expired")
			case errors.Is(err, ErrInvalidTokenType):
				abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Access token required")
			default:
				abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Invalid or malformed token")
			}
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// OptionalAuthMiddleware sets the caller when a valid access token is sent
// and lets anonymous requests through. A bad token is still rejected.
func OptionalAuthMiddleware(tokens *TokenManager) gin.HandlerFunc {
	required := AuthMiddleware(tokens)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		required(c)
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "User role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			abort(c, http.StatusUnauthorized, apperr.KindUnauthorized, "Invalid role type")
			return
		}

		if roleStr != requiredRole {
			abort(c, http.StatusForbidden, apperr.KindForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}

// GetActor resolves the caller set by AuthMiddleware.
func GetActor(c *gin.Context) (Actor, error) {
	id, ok := GetUserID(c)
	if !ok {
		return Actor{}, apperr.Unauthorized("User not authenticated")
	}
	return NewActor(id, c.GetString(ctxRole)), nil
}
