package middleware

import (
	"errors"
	"strings"

	"parish-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxUserIDKey = "user_id"

// AuthMiddleware admits requests carrying a valid bearer access token and
// stores the caller's id in the request locals.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return Unauthorized("Unauthorized", nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Unauthorized("Token expired", err)
		case err != nil:
			return Unauthorized("Invalid token", err)
		}

		c.Locals(CtxUserIDKey, claims.UserID())
		return c.Next()
	}
}

// UserID returns the authenticated caller, or uuid.Nil outside the auth
// middleware.
func UserID(c fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
