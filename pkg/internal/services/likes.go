package services

import (
	"errors"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func HasLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := database.C.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleLike likes the post when no like row exists for the pair and
// unlikes it otherwise. Returns whether the post ends up liked. The
// composite unique index on (user_id, post_id) keeps a double submit
// from producing two rows; losing that race reads as already-liked.
func ToggleLike(userID, postID uint) (bool, error) {
	var post models.Post
	if err := database.C.Where("id = ?", postID).Select("id").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, &NotFoundError{Subject: "post", ID: postID}
		}
		return false, err
	}

	var positive bool
	err := database.C.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			like = models.Like{UserID: userID, PostID: postID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			// A conflicted insert means a concurrent submit already
			// liked the pair; either way it ends up liked.
			positive = true
			return nil
		}

		positive = false
		return tx.Delete(&like).Error
	})

	return positive, err
}
