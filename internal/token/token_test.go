package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestSignAndParse(t *testing.T) {
	userID := uuid.New()

	raw, err := Sign(secret, userID, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseUserID(secret, raw)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseUserID_WrongSecret(t *testing.T) {
	raw, err := Sign(secret, uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = ParseUserID("other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseUserID_Expired(t *testing.T) {
	raw, err := Sign(secret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseUserID(secret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseUserID_Garbage(t *testing.T) {
	_, err := ParseUserID(secret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_NestedUserID(t *testing.T) {
	userID := uuid.New()
	raw, err := Sign(secret, userID, time.Hour)
	require.NoError(t, err)

	// The wire payload carries the id under user.id.
	var claims jwt.MapClaims
	_, err = jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]interface{})
	require.True(t, ok, "expected nested user claim")
	assert.Equal(t, userID.String(), user["id"])
}
