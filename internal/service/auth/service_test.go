package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperror.ErrNotFound, username)
	}
	return &user, nil
}

func (f *fakeUserStore) InsertUser(_ context.Context, user models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return fmt.Errorf("%w: insert user", apperror.ErrDuplicate)
	}
	f.users[user.Username] = user
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, "secret", nil)

	require.NoError(t, svc.Register(context.Background(), "keyur", "hunter2", "admin"))

	stored := store.users["keyur"]
	assert.Equal(t, "admin", stored.Role)
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2")))
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	svc := NewService(newFakeUserStore(), "secret", nil)

	err := svc.Register(context.Background(), "", "hunter2", "staff")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	err = svc.Register(context.Background(), "keyur", "", "staff")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, "secret", nil)

	require.NoError(t, svc.Register(context.Background(), "keyur", "hunter2", "staff"))

	err := svc.Register(context.Background(), "keyur", "other", "staff")
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestLoginRoundTripsIdentityThroughToken(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, "secret", nil)

	require.NoError(t, svc.Register(context.Background(), "keyur", "hunter2", "admin"))

	token, identity, err := svc.Login(context.Background(), "keyur", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, &models.Identity{User: "keyur", Role: "admin"}, identity)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store, "secret", nil)

	require.NoError(t, svc.Register(context.Background(), "keyur", "hunter2", "staff"))

	_, _, err := svc.Login(context.Background(), "keyur", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newFakeUserStore(), "secret", nil)

	_, _, err := svc.Login(context.Background(), "ghost", "hunter2")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	store := newFakeUserStore()
	issuer := NewService(store, "secret-a", nil)
	verifier := NewService(store, "secret-b", nil)

	require.NoError(t, issuer.Register(context.Background(), "keyur", "hunter2", "staff"))
	token, _, err := issuer.Login(context.Background(), "keyur", "hunter2")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewService(newFakeUserStore(), "secret", nil)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
