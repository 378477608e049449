package middleware

import (
	"strings"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/logger"
	"compass-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the token's session id in fiber.Ctx locals
)

// RequireSessionToken protects /sessions/:id routes. The bearer token must be
// valid and issued for the session named in the path.
func RequireSessionToken(tokens service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			logger.Get().Debug("Session token rejected", zap.Error(err), zap.String("path", c.Path()))
			return err
		}

		if sessionID := c.Params("id"); sessionID != "" && claims.SessionID != sessionID {
			return domain.NewUnauthorizedError("token was not issued for this session").
				WithContext("session_id", sessionID)
		}

		c.Locals(SessionIDKey, claims.SessionID)
		return c.Next()
	}
}
