package services

import (
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
)

// ListPostComments returns the top-level comments of a post. Nested
// replies stay out of the detail view for now.
func ListPostComments(postID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := database.C.
		Where("post_id = ? AND parent_id IS NULL", postID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
