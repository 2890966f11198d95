package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newRelationshipService(db, notifier)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))

	following, err := svc.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Unfollow(a.ID, b.ID))

	following, err = svc.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollow_NotifiesFollowedUser(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newRelationshipService(db, notifier)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, [2]uint{b.ID, a.ID}, notifier.events[0])
}

func TestFollow_GateDisablesNotification(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	svc := newRelationshipService(db, notifier)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	prefRepo := repositories.NewPostgresPreferenceRepository(db)
	pref, err := prefRepo.GetByUserID(b.ID)
	require.NoError(t, err)
	pref.ReceiveFollowerNotification = false
	require.NoError(t, prefRepo.UpdatePreference(pref))

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))
	assert.Empty(t, notifier.events)
}

func TestShouldNotifyOnFollow_MissingPreferenceDefaultsTrue(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db, &recordingNotifier{})

	// No user, no preference row: the default applies.
	assert.True(t, svc.ShouldNotifyOnFollow(999))
}

func TestFollow_NotifierFailureDoesNotFailFollow(t *testing.T) {
	db := newTestDB(t)
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := newRelationshipService(db, notifier)

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))

	following, err := svc.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollow_SelfFollowRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db, &recordingNotifier{})

	a := createTestUser(t, db, "alice")

	err := svc.Follow(context.Background(), a.ID, a.ID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFollow_MissingTargetRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db, &recordingNotifier{})

	a := createTestUser(t, db, "alice")

	err := svc.Follow(context.Background(), a.ID, 999)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFollow_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db, &recordingNotifier{})

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	require.NoError(t, svc.Follow(context.Background(), a.ID, b.ID))

	err := svc.Follow(context.Background(), a.ID, b.ID)
	assert.True(t, apperrors.IsValidation(err))

	count, err := repositories.NewPostgresRelationshipRepository(db).GetFollowedCount(a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnfollow_AbsentEdgeIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newRelationshipService(db, &recordingNotifier{})

	a := createTestUser(t, db, "alice")
	b := createTestUser(t, db, "bob")

	err := svc.Unfollow(a.ID, b.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
