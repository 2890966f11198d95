package repositories

import (
	"fmt"

	"github.com/ribbitly/backend/internal/models"
	"gorm.io/gorm"
)

// RelationshipRepository defines the interface for follow-edge data operations
type RelationshipRepository interface {
	CreateRelationship(rel *models.Relationship) error
	DeleteRelationship(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowedIDs(followerID uint) ([]uint, error)
	GetFollowerIDs(followedID uint) ([]uint, error)
	GetFollowed(followerID uint) ([]models.User, error)
	GetFollowers(followedID uint) ([]models.User, error)
	GetFollowedCount(followerID uint) (int64, error)
	GetFollowersCount(followedID uint) (int64, error)
	DeleteAllForUser(userID uint) error
}

// PostgresRelationshipRepository implements RelationshipRepository for PostgreSQL
type PostgresRelationshipRepository struct {
	db *gorm.DB
}

// NewPostgresRelationshipRepository creates a new PostgresRelationshipRepository
func NewPostgresRelationshipRepository(db *gorm.DB) *PostgresRelationshipRepository {
	return &PostgresRelationshipRepository{db: db}
}

func (r *PostgresRelationshipRepository) CreateRelationship(rel *models.Relationship) error {
	return r.db.Create(rel).Error
}

func (r *PostgresRelationshipRepository) DeleteRelationship(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Relationship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("relationship not found: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *PostgresRelationshipRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Relationship{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRelationshipRepository) GetFollowedIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Relationship{}).Where("follower_id = ?", followerID).Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *PostgresRelationshipRepository) GetFollowerIDs(followedID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Relationship{}).Where("followed_id = ?", followedID).Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *PostgresRelationshipRepository) GetFollowed(followerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("relationships").Select("followed_id").Where("follower_id = ?", followerID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresRelationshipRepository) GetFollowers(followedID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("relationships").Select("follower_id").Where("followed_id = ?", followedID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresRelationshipRepository) GetFollowedCount(followerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, err
}

func (r *PostgresRelationshipRepository) GetFollowersCount(followedID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Relationship{}).Where("followed_id = ?", followedID).Count(&count).Error
	return count, err
}

// DeleteAllForUser removes every edge where the user is follower or followed.
func (r *PostgresRelationshipRepository) DeleteAllForUser(userID uint) error {
	return r.db.Where("follower_id = ? OR followed_id = ?", userID, userID).Delete(&models.Relationship{}).Error
}
