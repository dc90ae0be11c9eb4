package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/likelion-vlog/server/pkg/internal/http/exts"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"github.com/likelion-vlog/server/pkg/internal/services"
	"github.com/samber/lo"
)

// List items carry a fixed-length preview instead of the full content.
const postSummaryLength = 100

func summarizeContent(content string) string {
	runes := []rune(content)
	if len(runes) <= postSummaryLength {
		return content
	}
	return string(runes[:postSummaryLength]) + "..."
}

type postSummaryResponse struct {
	PostID       uint      `json:"post_id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Author       string    `json:"author"`
	Tags         []string  `json:"tags"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func buildPostSummary(item models.Post) postSummaryResponse {
	return postSummaryResponse{
		PostID:       item.ID,
		Title:        item.Title,
		Summary:      summarizeContent(item.Content),
		Author:       item.Blog.User.Nickname,
		Tags:         item.Tags,
		LikeCount:    item.Metric.LikeCount,
		CommentCount: item.Metric.CommentCount,
		CreatedAt:    item.CreatedAt,
	}
}

func listPost(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var tag *string
	if probe := c.Query("tag"); len(probe) > 0 {
		tag = &probe
	}
	var blogID *uint
	if probe := c.QueryInt("blogId", 0); probe > 0 {
		blogID = lo.ToPtr(uint(probe))
	}

	result, err := services.ListPosts(tag, blogID, size, page*size)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count": result.Count,
		"page":  page,
		"size":  size,
		"data": lo.Map(result.Items, func(item models.Post, index int) postSummaryResponse {
			return buildPostSummary(item)
		}),
	})
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	var viewerID *uint
	if uid, ok := actingUser(c); ok {
		viewerID = &uid
	}

	detail, err := services.GetPostDetail(uint(id), viewerID)
	if err != nil {
		return err
	}

	if viewerID != nil {
		services.AddPostView(detail.ID, *viewerID)
	}

	return c.JSON(detail)
}

type postEditableForm struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"dive,required,max=50"`
}

func createPost(c *fiber.Ctx) error {
	uid, ok := actingUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var data postEditableForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, tagNames, err := services.NewPost(uid, data.Title, data.Content, data.Tags)
	if err != nil {
		return err
	}

	// A brand new post has no likes or comments to enrich with.
	item.Tags = tagNames
	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	uid, ok := actingUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	var data postEditableForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, tagNames, err := services.EditPost(uint(id), uid, data.Title, data.Content, data.Tags)
	if err != nil {
		return err
	}

	item.Tags = tagNames
	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	uid, ok := actingUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := services.DeletePost(uint(id), uid); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
