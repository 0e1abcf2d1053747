package simulator

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// mintToken issues a signed HS256 access token for an account.
func (s *Server) mintToken(acc *account, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":         acc.ID,
		"phoneNumber": acc.PhoneNumber,
		"iat":         now.Unix(),
		"exp":         now.Add(s.cfg.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// bearerAuth validates the Authorization header and stores the caller's
// phone number in the request locals.
func (s *Server) bearerAuth(c *fiber.Ctx) error {
	authz := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
	}
	tokenStr := strings.TrimSpace(authz[len("Bearer "):])

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return fiber.NewError(http.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "invalid token")
	}
	phone, _ := claims["phoneNumber"].(string)
	if phone == "" {
		return fiber.NewError(http.StatusUnauthorized, "invalid token")
	}

	c.Locals("phoneNumber", phone)
	return c.Next()
}
