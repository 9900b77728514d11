package services

import (
	"testing"
	"time"

	"github.com/bigBrother1996/devConnector/internal/config"
	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/bigBrother1996/devConnector/internal/store"
	"github.com/bigBrother1996/devConnector/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
}

func newAuthService() (*AuthService, *store.MemoryUserStore) {
	users := store.NewMemoryUserStore()
	return NewAuthService(users, testConfig()), users
}

func TestRegister_IssuesTokenForStoredUser(t *testing.T) {
	svc, users := newAuthService()

	resp, err := svc.Register(&dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	stored, err := users.FindByEmail("jane@example.com")
	require.NoError(t, err)

	parsed, err := token.ParseUserID("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, parsed)

	assert.Contains(t, stored.Avatar, "gravatar.com/avatar/")
	assert.Contains(t, stored.Avatar, "s=200")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestRegister_DuplicateEmailLeavesUserUntouched(t *testing.T) {
	svc, users := newAuthService()

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	first, err := users.FindByEmail("jane@example.com")
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Name: "Impostor", Email: "jane@example.com", Password: "different"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	second, err := users.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane", second.Name)
	assert.Equal(t, first.Password, second.Password)
}

func TestLogin_ValidCredentials(t *testing.T) {
	svc, users := newAuthService()

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	stored, _ := users.FindByEmail("jane@example.com")
	parsed, err := token.ParseUserID("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, parsed)
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	_, errWrongPw := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestCurrentUser(t *testing.T) {
	svc, users := newAuthService()

	_, err := svc.Register(&dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	stored, _ := users.FindByEmail("jane@example.com")

	user, err := svc.CurrentUser(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	require.NoError(t, users.Delete(stored.ID))
	_, err = svc.CurrentUser(stored.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
