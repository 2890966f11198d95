package repositories

import (
	"github.com/ribbitly/backend/internal/models"
	"gorm.io/gorm"
)

// MicropostRepository defines the interface for micropost data operations
type MicropostRepository interface {
	CreateMicropost(post *models.Micropost) error
	GetMicropostByID(id uint) (*models.Micropost, error)
	DeleteMicropost(id uint) error
	GetFeed(viewerID uint, page, limit int) ([]models.Micropost, int64, error)
	GetPublicPostsByUserID(userID uint, page, limit int) ([]models.Micropost, int64, error)
	GetDirectMessagesTo(userID uint, page, limit int) ([]models.Micropost, int64, error)
	DeleteAllByUserID(userID uint) error
}

// PostgresMicropostRepository implements MicropostRepository for PostgreSQL
type PostgresMicropostRepository struct {
	db *gorm.DB
}

// NewPostgresMicropostRepository creates a new PostgresMicropostRepository
func NewPostgresMicropostRepository(db *gorm.DB) *PostgresMicropostRepository {
	return &PostgresMicropostRepository{db: db}
}

func (r *PostgresMicropostRepository) CreateMicropost(post *models.Micropost) error {
	return r.db.Create(post).Error
}

func (r *PostgresMicropostRepository) GetMicropostByID(id uint) (*models.Micropost, error) {
	var post models.Micropost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresMicropostRepository) DeleteMicropost(id uint) error {
	res := r.db.Delete(&models.Micropost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetFeed returns the viewer's home timeline, newest first. A post belongs in
// the feed when the viewer authored it, when its author is followed by the
// viewer and it is not a direct message, or when it is addressed to the
// viewer (reply or direct message, regardless of follow status).
func (r *PostgresMicropostRepository) GetFeed(viewerID uint, page, limit int) ([]models.Micropost, int64, error) {
	followedIDs := r.db.Table("relationships").Select("followed_id").Where("follower_id = ?", viewerID)

	q := r.db.Model(&models.Micropost{}).Where(
		"user_id = ? OR (user_id IN (?) AND direct_message = ?) OR in_reply_to_user_id = ?",
		viewerID, followedIDs, false, viewerID,
	).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Micropost
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// GetPublicPostsByUserID returns the user's posts with direct messages
// excluded, the author-centric listing shown on profile pages.
func (r *PostgresMicropostRepository) GetPublicPostsByUserID(userID uint, page, limit int) ([]models.Micropost, int64, error) {
	q := r.db.Model(&models.Micropost{}).Where("user_id = ? AND direct_message = ?", userID, false).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Micropost
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// GetDirectMessagesTo returns posts sent privately to the given user.
func (r *PostgresMicropostRepository) GetDirectMessagesTo(userID uint, page, limit int) ([]models.Micropost, int64, error) {
	q := r.db.Model(&models.Micropost{}).Where("in_reply_to_user_id = ? AND direct_message = ?", userID, true).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Micropost
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostgresMicropostRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Micropost{}).Error
}
