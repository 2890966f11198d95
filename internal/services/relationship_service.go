package services

import (
	"context"
	"errors"
	"log"

	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/metrics"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/notify"
	"github.com/ribbitly/backend/internal/repositories"
	"gorm.io/gorm"
)

// RelationshipService implements the follow/unfollow workflow on top of the
// relationship store, consulting the notification gate after a successful
// follow.
type RelationshipService struct {
	relationshipRepo repositories.RelationshipRepository
	userRepo         repositories.UserRepository
	preferenceRepo   repositories.PreferenceRepository
	notifier         notify.Notifier
	metrics          *metrics.Metrics
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(
	relationshipRepo repositories.RelationshipRepository,
	userRepo repositories.UserRepository,
	preferenceRepo repositories.PreferenceRepository,
	notifier notify.Notifier,
	m *metrics.Metrics,
) *RelationshipService {
	return &RelationshipService{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		preferenceRepo:   preferenceRepo,
		notifier:         notifier,
		metrics:          m,
	}
}

// Follow records a follow edge from follower to followed. The followed user
// must exist, self-follows are rejected, and a pair can only be recorded
// once. When the followed user's preference allows it, a new-follower event
// is emitted; delivery errors are logged and never surfaced to the follower.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return apperrors.Validation("cannot follow yourself")
	}

	followed, err := s.userRepo.GetUserByID(followedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("followed user does not exist")
		}
		return err
	}

	isFollowing, err := s.relationshipRepo.IsFollowing(followerID, followedID)
	if err != nil {
		return err
	}
	if isFollowing {
		return apperrors.Validation("already following this user")
	}

	rel := &models.Relationship{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := s.relationshipRepo.CreateRelationship(rel); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.FollowRequests.Inc()
	}

	if s.ShouldNotifyOnFollow(followedID) && s.notifier != nil {
		follower, err := s.userRepo.GetUserByID(followerID)
		if err == nil {
			if err := s.notifier.NotifyNewFollower(ctx, followed, follower); err != nil {
				log.Printf("follower notification failed for user %d: %v", followedID, err)
			} else if s.metrics != nil {
				s.metrics.FollowerEmailsSent.Inc()
			}
		}
	}

	return nil
}

// Unfollow removes the follow edge. Unfollowing a user that was never
// followed is a NotFoundError.
func (s *RelationshipService) Unfollow(followerID, followedID uint) error {
	if err := s.relationshipRepo.DeleteRelationship(followerID, followedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("relationship not found")
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.UnfollowRequests.Inc()
	}
	return nil
}

// IsFollowing reports whether follower currently follows followed.
func (s *RelationshipService) IsFollowing(followerID, followedID uint) (bool, error) {
	return s.relationshipRepo.IsFollowing(followerID, followedID)
}

// ShouldNotifyOnFollow reads the followed user's notification preference.
// A missing preference row reads as "notify", matching the default.
func (s *RelationshipService) ShouldNotifyOnFollow(followedID uint) bool {
	pref, err := s.preferenceRepo.GetByUserID(followedID)
	if err != nil {
		return true
	}
	return pref.ReceiveFollowerNotification
}
