package middleware

import (
	"errors"
	"strings"
	"time"

	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const authLocal = "auth"

// Claims is the JWT payload: subject is the user id, Role gates routes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUser is the authenticated principal attached to the request.
type AuthUser struct {
	ID   uuid.UUID
	Role string
}

// GenerateToken signs an HS256 token for the user, expiring after ttl.
func GenerateToken(secret []byte, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// RequireAuth validates the bearer token and attaches the AuthUser to
// Locals. 401 with the standard error format otherwise.
func RequireAuth(secret []byte) fiber.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return response.Unauthorized(c, "Missing bearer token")
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		var claims Claims
		token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "Invalid or expired token")
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return response.Unauthorized(c, "Invalid token subject")
		}

		c.Locals(authLocal, AuthUser{ID: userID, Role: claims.Role})
		return c.Next()
	}
}

// RequireRole allows only the listed roles past. Must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(authLocal).(AuthUser)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return response.Error(c, "Forbidden", fiber.StatusForbidden, nil)
	}
}

// GetAuthUser returns the authenticated user, if any.
func GetAuthUser(c *fiber.Ctx) (AuthUser, bool) {
	user, ok := c.Locals(authLocal).(AuthUser)
	return user, ok
}
