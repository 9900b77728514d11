package middleware

import (
	"strings"

	"github.com/bigBrother1996/devConnector/internal/config"
	"github.com/bigBrother1996/devConnector/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected guards private routes. A missing token and an invalid one get
// distinct messages; validity is signature plus expiry only.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "token is not valid"
			if strings.Contains(err.Error(), "missing or malformed") {
				message = "no token, authorization denied"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: message,
			})
		},
	})
}
