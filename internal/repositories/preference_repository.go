package repositories

import (
	"github.com/ribbitly/backend/internal/models"
	"gorm.io/gorm"
)

// PreferenceRepository defines the interface for notification-preference data operations
type PreferenceRepository interface {
	CreatePreference(pref *models.NotificationPreference) error
	GetByUserID(userID uint) (*models.NotificationPreference, error)
	UpdatePreference(pref *models.NotificationPreference) error
}

// PostgresPreferenceRepository implements PreferenceRepository for PostgreSQL
type PostgresPreferenceRepository struct {
	db *gorm.DB
}

// NewPostgresPreferenceRepository creates a new PostgresPreferenceRepository
func NewPostgresPreferenceRepository(db *gorm.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

func (r *PostgresPreferenceRepository) CreatePreference(pref *models.NotificationPreference) error {
	return r.db.Create(pref).Error
}

func (r *PostgresPreferenceRepository) GetByUserID(userID uint) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	if err := r.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *PostgresPreferenceRepository) UpdatePreference(pref *models.NotificationPreference) error {
	return r.db.Save(pref).Error
}
