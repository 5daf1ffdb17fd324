package services

import (
	"testing"

	"tripbook/internal/domain"
	"tripbook/internal/store"

	"github.com/stretchr/testify/require"
)

func newAuthService() AuthService {
	return AuthService{
		Users:  store.NewUserStore(),
		Tokens: TokenService{Secret: []byte("test-secret")},
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register("Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.NotEqual(t, "hunter2", user.PasswordHash)
	require.NotEmpty(t, user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register("Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	// Same email always collides, whatever the other fields are.
	_, err = svc.Register("Other", "ana@example.com", "different")
	require.True(t, domain.IsValidation(err))
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthService()
	user, err := svc.Register("Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	token, err := svc.Login("ana@example.com", "hunter2")
	require.NoError(t, err)

	claims, err := svc.Tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Register("Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	_, wrongPass := svc.Login("ana@example.com", "not-it")
	_, noUser := svc.Login("ghost@example.com", "hunter2")

	require.True(t, domain.IsCredentials(wrongPass))
	require.True(t, domain.IsCredentials(noUser))
	require.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestProfile(t *testing.T) {
	svc := newAuthService()
	user, err := svc.Register("Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	profile, err := svc.Profile(user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana", profile.Name)
	require.Equal(t, "ana@example.com", profile.Email)

	_, err = svc.Profile(999)
	require.True(t, domain.IsNotFound(err))
}
