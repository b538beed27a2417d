package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the acting user's
// ID and role in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin allows only admins past. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(r authorization.Role) bool { return r.IsAdmin() })
}

// RequireAgent allows only agents past. It must run after RequireAuth.
func RequireAgent() gin.HandlerFunc {
	return requireRole(func(r authorization.Role) bool { return r.IsAgent() })
}

func requireRole(allowed func(authorization.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := ActorRole(c)
		if !ok || !allowed(role) {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorID reads the authenticated user's ID from the request context.
func ActorID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// ActorRole reads the authenticated user's role from the request
// context.
func ActorRole(c *gin.Context) (authorization.Role, bool) {
	v, ok := c.Get(constants.ContextKeyUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(authorization.Role)
	return role, ok
}
