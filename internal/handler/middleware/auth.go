package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

const ctxAdminNameKey = "admin_name"

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		name, ok := m.auth.Validate(token)
		if !ok {
			slog.Warn("セッション検証に失敗しました", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminNameKey, name)
		c.Next()
	}
}

func GetAdminName(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminNameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// SessionToken extracts the raw token so logout can revoke it.
func SessionToken(c *gin.Context) string {
	token := cookie.GetSessionToken(c)
	if token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
