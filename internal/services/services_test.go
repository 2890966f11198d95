package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Relationship{},
		&models.Micropost{},
		&models.NotificationPreference{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test " + username,
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, repositories.NewPostgresUserRepository(db).CreateUser(user))
	return user
}

// recordingNotifier captures emitted follower events for assertions.
type recordingNotifier struct {
	events [][2]uint // {followedID, followerID}
	err    error
}

func (n *recordingNotifier) NotifyNewFollower(_ context.Context, followed, follower *models.User) error {
	n.events = append(n.events, [2]uint{followed.ID, follower.ID})
	return n.err
}

func newRelationshipService(db *gorm.DB, notifier *recordingNotifier) *RelationshipService {
	return NewRelationshipService(
		repositories.NewPostgresRelationshipRepository(db),
		repositories.NewPostgresUserRepository(db),
		repositories.NewPostgresPreferenceRepository(db),
		notifier,
		nil,
	)
}

func newMicropostService(db *gorm.DB) *MicropostService {
	return NewMicropostService(
		repositories.NewPostgresMicropostRepository(db),
		repositories.NewPostgresUserRepository(db),
		nil,
	)
}
