package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/likelion-vlog/server/pkg/internal/cache"
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory store so nothing leaks
// between cases; the tag cache is reset for the same reason.
func setupStore(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))
	require.NoError(t, cache.NewStore())

	database.C = db
	return db
}

func createUser(t *testing.T, nickname string) models.User {
	t.Helper()

	user := models.User{
		Email:    nickname + "@vlog.test",
		Nickname: nickname,
		Password: "demo",
	}
	require.NoError(t, database.C.Create(&user).Error)
	return user
}

func createUserWithBlog(t *testing.T, nickname string) models.User {
	t.Helper()

	user := createUser(t, nickname)
	blog := models.Blog{Title: nickname + "'s blog", UserID: user.ID}
	require.NoError(t, database.C.Create(&blog).Error)
	user.Blog = &blog
	return user
}

func createComment(t *testing.T, postID, userID uint, content string, parentID *uint) models.Comment {
	t.Helper()

	comment := models.Comment{
		Content:  content,
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
	}
	require.NoError(t, database.C.Create(&comment).Error)
	return comment
}
