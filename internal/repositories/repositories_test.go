package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ribbitly/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory SQLite database. cache=shared keeps the
// database alive across the pooled connections GORM opens.
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
	require.NoError(t, NewPostgresUserRepository(db).CreateUser(user))
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, content string, addressed *uint, dm bool, at time.Time) *models.Micropost {
	t.Helper()
	post := &models.Micropost{
		UserID:          author.ID,
		Content:         content,
		InReplyToUserID: addressed,
		DirectMessage:   dm,
		CreatedAt:       at,
	}
	require.NoError(t, NewPostgresMicropostRepository(db).CreateMicropost(post))
	return post
}

func follow(t *testing.T, db *gorm.DB, follower, followed *models.User) {
	t.Helper()
	require.NoError(t, NewPostgresRelationshipRepository(db).CreateRelationship(&models.Relationship{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}))
}
