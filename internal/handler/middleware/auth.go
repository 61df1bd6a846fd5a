package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"roombook/internal/domain/principal"

	"github.com/gin-gonic/gin"
)

// TokenValidator turns a bearer token from the external identity provider
// into a Principal. Satisfied by jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (principal.Principal, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but never
// aborts: calendar reads stay open to anonymous viewers, who get the
// redacted projection.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue anonymously rather than aborting.
			c.Next()
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetPrincipal returns the authenticated principal from context.
func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	value, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return principal.Principal{}, false
	}

	p, ok := value.(principal.Principal)
	return p, ok
}

// GetViewer returns the viewer identity for read requests; anonymous when
// the request carried no valid token.
func GetViewer(c *gin.Context) principal.Viewer {
	if p, ok := GetPrincipal(c); ok {
		return &p
	}
	return principal.Anonymous()
}
