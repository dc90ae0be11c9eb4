package services

import (
	"errors"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm"
)

// GetBlogByUser resolves the blog a user writes into. A user without
// a blog cannot author posts, so the not-found subject is "blog", not
// "user" - the caller has already resolved the user.
func GetBlogByUser(userID uint) (models.Blog, error) {
	var blog models.Blog
	if err := database.C.Where("user_id = ?", userID).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return blog, &NotFoundError{Subject: "blog", ID: userID}
		}
		return blog, err
	}
	return blog, nil
}

func GetBlog(id uint) (models.Blog, error) {
	var blog models.Blog
	if err := database.C.Where("id = ?", id).Preload("User").First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return blog, &NotFoundError{Subject: "blog", ID: id}
		}
		return blog, err
	}
	return blog, nil
}
