package middleware

import (
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/common"
	"github.com/DhavalSuthar-24/livescore/pkg/responses"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleLookup resolves a user's current role. An empty role with a nil error
// means the user no longer exists.
type RoleLookup interface {
	GetUserRole(id uint) (string, error)
}

// AuthMiddleware requires a valid bearer access token and a live user.
// The role placed on the context comes from the store, not the token, so a
// demotion takes effect on the next request.
func AuthMiddleware(jwtSecret string, users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		role, err := users.GetUserRole(claims.UserID)
		if err != nil {
			log.Error().Err(err).Uint("user_id", claims.UserID).Msg("role lookup failed")
			responses.InternalServerError(c, "Failed to verify user", err)
			return
		}
		if role == "" {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Set(common.ContextUserRoleKey, role)
		c.Next()
	}
}
