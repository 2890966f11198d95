package repositories

import (
	"testing"

	"github.com/ribbitly/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresRelationshipRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	following, err := repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.CreateRelationship(&models.Relationship{FollowerID: a.ID, FollowedID: b.ID}))

	following, err = repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed.
	reverse, err := repo.IsFollowing(b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, repo.DeleteRelationship(a.ID, b.ID))

	following, err = repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestCreateRelationship_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresRelationshipRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	require.NoError(t, repo.CreateRelationship(&models.Relationship{FollowerID: a.ID, FollowedID: b.ID}))
	err := repo.CreateRelationship(&models.Relationship{FollowerID: a.ID, FollowedID: b.ID})
	assert.Error(t, err)

	count, err := repo.GetFollowedCount(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeleteRelationship_AbsentEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresRelationshipRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	err := repo.DeleteRelationship(a.ID, b.ID)
	assert.Error(t, err)
}

func TestGetFollowedAndFollowerIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresRelationshipRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")
	c := createTestUser(t, db, "carol")

	follow(t, db, a, b)
	follow(t, db, a, c)
	follow(t, db, c, b)

	followed, err := repo.GetFollowedIDs(a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{b.ID, c.ID}, followed)

	followers, err := repo.GetFollowerIDs(b.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a.ID, c.ID}, followers)

	followedUsers, err := repo.GetFollowed(a.ID)
	require.NoError(t, err)
	assert.Len(t, followedUsers, 2)

	count, err := repo.GetFollowersCount(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestDeleteAllForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresRelationshipRepository(db)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")
	c := createTestUser(t, db, "carol")

	follow(t, db, a, b)
	follow(t, db, b, c)
	follow(t, db, c, a)

	require.NoError(t, repo.DeleteAllForUser(a.ID))

	// Edges touching alice are gone in both directions.
	following, err := repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	following, err = repo.IsFollowing(c.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// Unrelated edges survive.
	following, err = repo.IsFollowing(b.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, following)
}
