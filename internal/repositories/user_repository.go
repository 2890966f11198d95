package repositories

import (
	"github.com/ribbitly/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	SearchUsers(query string) ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates the user and its notification preference in one
// transaction, so every user has exactly one preference row from the start.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		pref := &models.NotificationPreference{
			UserID:                      user.ID,
			ReceiveFollowerNotification: true,
		}
		return tx.Create(pref).Error
	})
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, compared case-insensitively
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username, compared case-insensitively
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers searches for users by name or username (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?)", "%"+query+"%", "%"+query+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser removes the user and every dependent row in a single
// transaction: microposts, relationships in both directions, the
// notification preference, then the user itself.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Micropost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Relationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.NotificationPreference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
