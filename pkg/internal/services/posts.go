package services

import (
	"errors"
	"time"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FilterPostWithTag narrows a post query to posts carrying the exact
// tag title, joining through the mapping table. The caller is expected
// to apply a distinct projection: one post with several matching
// mapping rows must still count once.
func FilterPostWithTag(tx *gorm.DB, title string) *gorm.DB {
	return tx.
		Joins("JOIN tag_maps ON posts.id = tag_maps.post_id").
		Joins("JOIN tags ON tags.id = tag_maps.tag_id").
		Where("tags.title = ?", title)
}

func FilterPostWithBlog(tx *gorm.DB, blogID uint) *gorm.DB {
	return tx.Where("posts.blog_id = ?", blogID)
}

// BuildPostListQuery picks exactly one of the four listing strategies
// based on which filters are present. Every branch yields the same
// paginated shape downstream, so callers never branch on filter shape.
func BuildPostListQuery(tag *string, blogID *uint) *gorm.DB {
	tx := database.C.Model(&models.Post{})
	switch {
	case tag != nil && blogID != nil:
		tx = FilterPostWithBlog(FilterPostWithTag(tx, *tag), *blogID)
	case tag != nil:
		tx = FilterPostWithTag(tx, *tag)
	case blogID != nil:
		tx = FilterPostWithBlog(tx, *blogID)
	}
	return tx
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := tx.
		Where("posts.id = ?", id).
		Preload("Blog").
		Preload("Blog.User").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, &NotFoundError{Subject: "post", ID: id}
		}
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Distinct("posts.id").Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

// NewPost authors a post into the acting user's blog. The user must
// exist and must own a blog; the two failures carry distinct subjects.
// The post row and its tag mappings commit or roll back together.
func NewPost(userID uint, title, content string, tags []string) (models.Post, []string, error) {
	user, err := GetUser(userID)
	if err != nil {
		return models.Post{}, nil, err
	}
	blog, err := GetBlogByUser(user.ID)
	if err != nil {
		return models.Post{}, nil, err
	}

	item := models.Post{
		Title:   title,
		Content: content,
		BlogID:  blog.ID,
	}

	start := time.Now()

	var tagNames []string
	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		tagNames, err = SyncPostTags(tx, item, tags)
		return err
	}); err != nil {
		return item, nil, err
	}

	item.Blog = blog
	item.Blog.User = user

	log.Debug().Uint("post", item.ID).Dur("elapsed", time.Since(start)).Msg("The post is posted.")
	return item, tagNames, nil
}

// EditPost mutates title and content in place and fully replaces the
// tag set: every existing mapping row is dropped before the new list is
// synchronized, so omitting a previously attached tag detaches it.
func EditPost(postID, userID uint, title, content string, tags []string) (models.Post, []string, error) {
	item, err := GetPost(database.C, postID)
	if err != nil {
		return item, nil, err
	}
	if item.Blog.UserID != userID {
		return item, nil, &ForbiddenError{Action: "update"}
	}

	var tagNames []string
	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{"title": title, "content": content}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.TagMap{}).Error; err != nil {
			return err
		}
		tagNames, err = SyncPostTags(tx, item, tags)
		return err
	}); err != nil {
		return item, nil, err
	}

	item.Title = title
	item.Content = content

	return item, tagNames, nil
}

// DeletePost removes the post together with every row that points at
// it. All-or-nothing: a failure partway leaves everything in place.
func DeletePost(postID, userID uint) error {
	item, err := GetPost(database.C, postID)
	if err != nil {
		return err
	}
	if item.Blog.UserID != userID {
		return &ForbiddenError{Action: "delete"}
	}

	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.TagMap{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.PostView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
