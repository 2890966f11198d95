package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_CreatesPreference(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "alice")

	pref, err := NewPostgresPreferenceRepository(db).GetByUserID(user.ID)
	require.NoError(t, err)
	assert.True(t, pref.ReceiveFollowerNotification)
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, db, "alice")

	user, err := repo.GetUserByEmail("ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	user, err = repo.GetUserByUsername("ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestSearchUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, db, "alice")
	createTestUser(t, db, "alicia")
	createTestUser(t, db, "bob")

	users, err := repo.SearchUsers("ali")
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	relRepo := NewPostgresRelationshipRepository(db)
	postRepo := NewPostgresMicropostRepository(db)
	prefRepo := NewPostgresPreferenceRepository(db)

	doomed := createTestUser(t, db, "doomed")
	other := createTestUser(t, db, "other")

	post := createTestPost(t, db, doomed, "soon gone", nil, false, time.Now())
	follow(t, db, doomed, other)
	follow(t, db, other, doomed)

	require.NoError(t, userRepo.DeleteUser(doomed.ID))

	_, err := userRepo.GetUserByID(doomed.ID)
	assert.Error(t, err)

	_, err = postRepo.GetMicropostByID(post.ID)
	assert.Error(t, err)

	_, err = prefRepo.GetByUserID(doomed.ID)
	assert.Error(t, err)

	following, err := relRepo.IsFollowing(doomed.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, following)

	following, err = relRepo.IsFollowing(other.ID, doomed.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// The other user and their edges to third parties are untouched.
	_, err = userRepo.GetUserByID(other.ID)
	assert.NoError(t, err)
}
