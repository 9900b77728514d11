package token

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token is not valid")

// Claims carries the signed payload. The user id travels nested under
// "user" to stay wire-compatible with existing clients.
type Claims struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token embedding the user's id with the given expiry.
func Sign(secret string, userID uuid.UUID, expiry time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	claims.User.ID = userID.String()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseUserID verifies a raw token string and resolves the embedded user id.
// Validity is solely signature plus expiry.
func ParseUserID(secret, raw string) (uuid.UUID, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// UserIDFromCtx extracts the user id from the jwtware-parsed token in Fiber
// context locals.
func UserIDFromCtx(c *fiber.Ctx) (uuid.UUID, error) {
	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("missing user claim")
	}

	id, ok := user["id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user id claim")
	}

	return uuid.Parse(id)
}
