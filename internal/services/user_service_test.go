package services

import (
	"testing"

	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repositories.NewPostgresUserRepository(db), security.NewBcryptHasher())
}

func TestRegister_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user, err := svc.Register(models.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Username: "alice",
		Password: "foobar",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "foobar", user.PasswordHash)

	authed, err := svc.Authenticate("alice@example.com", "foobar")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.Register(models.CreateUserRequest{
		Name: "Alice", Email: "alice@example.com", Username: "alice", Password: "foobar",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.CreateUserRequest{
		Name: "Other", Email: "ALICE@EXAMPLE.COM", Username: "other", Password: "foobar",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Register(models.CreateUserRequest{
		Name: "Other", Email: "other@example.com", Username: "ALICE", Password: "foobar",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthenticate_Failures(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.Register(models.CreateUserRequest{
		Name: "Alice", Email: "alice@example.com", Username: "alice", Password: "foobar",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate("nobody@example.com", "foobar")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Authenticate("alice@example.com", "wrong")
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	postSvc := newMicropostService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := postSvc.CreateMicropost(alice.ID, "soon gone")
	require.NoError(t, err)

	err = svc.DeleteAccount(alice.ID, bob.ID)
	assert.True(t, apperrors.IsAuthorization(err))

	require.NoError(t, svc.DeleteAccount(alice.ID, alice.ID))

	err = svc.DeleteAccount(alice.ID, alice.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// Posts went with the account.
	feed, total, err := postSvc.GetFeed(alice.ID, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, feed)
	assert.EqualValues(t, 0, total)
}
