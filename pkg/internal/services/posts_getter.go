package services

import (
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type PostPage struct {
	Items []models.Post
	Count int64
}

// ListPost runs a built post query with pagination and enriches the
// page in place. The distinct projection keeps a post that matched
// several mapping rows from showing up twice.
func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := tx.
		Distinct("posts.*").
		Preload("Blog").
		Preload("Blog.User").
		Limit(take).Offset(offset).
		Order("posts.created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// CompletePostMeta fills tag names and like/comment counters for a
// page of posts with three queries total, regardless of page size.
func CompletePostMeta(items []models.Post) ([]models.Post, error) {
	if len(items) == 0 {
		return items, nil
	}

	idx := lo.Map(items, func(item models.Post, index int) uint {
		return item.ID
	})
	itemMap := make(map[uint]*models.Post, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	tagNames, err := BatchPostTagNames(idx)
	if err != nil {
		return items, err
	}
	likeCounts, err := BatchCountLikes(idx)
	if err != nil {
		return items, err
	}
	commentCounts, err := BatchCountComments(idx)
	if err != nil {
		return items, err
	}

	for i := range items {
		item := &items[i]
		item.Tags = tagNames[item.ID]
		if item.Tags == nil {
			item.Tags = []string{}
		}
		// Absent keys read as zero.
		item.Metric = models.PostMetric{
			LikeCount:    likeCounts[item.ID],
			CommentCount: commentCounts[item.ID],
		}
	}

	return items, nil
}

// ListPosts is the listing entrypoint: route the filter combination,
// count the full result set, fetch one page, enrich it.
func ListPosts(tag *string, blogID *uint, take, offset int) (PostPage, error) {
	count, err := CountPost(BuildPostListQuery(tag, blogID))
	if err != nil {
		return PostPage{}, err
	}

	items, err := ListPost(BuildPostListQuery(tag, blogID), take, offset)
	if err != nil {
		return PostPage{}, err
	}

	items, err = CompletePostMeta(items)
	if err != nil {
		return PostPage{}, err
	}

	return PostPage{Items: items, Count: count}, nil
}

type PostDetail struct {
	models.Post

	LikeCount int64            `json:"like_count"`
	IsLiked   bool             `json:"is_liked"`
	Comments  []models.Comment `json:"comments"`
}

// GetPostDetail assembles one post with its tags, aggregate like count,
// the viewer's own like flag, and the top-level comments. A viewer id
// that does not resolve to a user is not a fault; the flag is false.
func GetPostDetail(postID uint, viewerID *uint) (PostDetail, error) {
	item, err := GetPost(database.C, postID)
	if err != nil {
		return PostDetail{}, err
	}

	item.Tags, err = PostTagNames(item)
	if err != nil {
		return PostDetail{}, err
	}

	isLiked := false
	if viewerID != nil {
		if _, verr := GetUser(*viewerID); verr == nil {
			if isLiked, err = HasLikedPost(*viewerID, postID); err != nil {
				return PostDetail{}, err
			}
		}
	}

	comments, err := ListPostComments(postID)
	if err != nil {
		return PostDetail{}, err
	}

	likeCount, err := CountPostLikes(postID)
	if err != nil {
		return PostDetail{}, err
	}
	commentCount, err := CountPostComments(postID)
	if err != nil {
		return PostDetail{}, err
	}

	detail := PostDetail{
		Post:      item,
		LikeCount: likeCount,
		IsLiked:   isLiked,
		Comments:  comments,
	}
	detail.Metric = models.PostMetric{
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}

	return detail, nil
}
