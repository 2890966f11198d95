package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ribbitly/backend/internal/apperrors"
	"github.com/ribbitly/backend/internal/metrics"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"gorm.io/gorm"
)

const maxContentLength = 140

// MicropostService implements the classify-then-store pipeline for posts.
type MicropostService struct {
	micropostRepo repositories.MicropostRepository
	userRepo      repositories.UserRepository
	metrics       *metrics.Metrics
}

// NewMicropostService creates a new MicropostService
func NewMicropostService(
	micropostRepo repositories.MicropostRepository,
	userRepo repositories.UserRepository,
	m *metrics.Metrics,
) *MicropostService {
	return &MicropostService{
		micropostRepo: micropostRepo,
		userRepo:      userRepo,
		metrics:       m,
	}
}

// CreateMicropost validates the content, classifies it and persists the post.
// Classification fields are set before the insert, so no reader can observe a
// half-written record.
func (s *MicropostService) CreateMicropost(authorID uint, content string) (*models.Micropost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content can't be blank")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, apperrors.Validation("content is too long (maximum is 140 characters)")
	}

	if _, err := s.userRepo.GetUserByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("author does not exist")
		}
		return nil, err
	}

	classification := Classify(content, s.userRepo.GetUserByUsername)

	post := &models.Micropost{
		UserID:          authorID,
		Content:         content,
		InReplyToUserID: classification.InReplyToUserID,
		DirectMessage:   classification.DirectMessage,
	}
	if err := s.micropostRepo.CreateMicropost(post); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PostsCreated.Inc()
	}
	return post, nil
}

// DeleteMicropost removes a post after verifying the requester authored it.
func (s *MicropostService) DeleteMicropost(postID, requesterID uint) error {
	post, err := s.micropostRepo.GetMicropostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("micropost not found")
		}
		return err
	}

	if post.UserID != requesterID {
		return apperrors.Authorization("micropost belongs to another user")
	}

	if err := s.micropostRepo.DeleteMicropost(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("micropost not found")
		}
		return err
	}
	return nil
}

// GetFeed returns the viewer's home timeline page plus the total match count.
func (s *MicropostService) GetFeed(viewerID uint, page, limit int) ([]models.Micropost, int64, error) {
	return s.micropostRepo.GetFeed(viewerID, page, limit)
}

// GetPublicPosts returns the author-centric, DM-excluded profile listing.
func (s *MicropostService) GetPublicPosts(authorID uint, page, limit int) ([]models.Micropost, int64, error) {
	return s.micropostRepo.GetPublicPostsByUserID(authorID, page, limit)
}

// GetDirectMessages returns posts sent privately to the given user.
func (s *MicropostService) GetDirectMessages(userID uint, page, limit int) ([]models.Micropost, int64, error) {
	return s.micropostRepo.GetDirectMessagesTo(userID, page, limit)
}
