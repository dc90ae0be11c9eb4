package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/likelion-vlog/server/pkg/internal/services"
	"github.com/samber/lo"
)

func likePost(c *fiber.Ctx) error {
	uid, ok := actingUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	positive, err := services.ToggleLike(uid, uint(id))
	if err != nil {
		return err
	}

	likeCount, err := services.CountPostLikes(uint(id))
	if err != nil {
		return err
	}

	return c.Status(lo.Ternary(positive, fiber.StatusCreated, fiber.StatusNoContent)).JSON(fiber.Map{
		"is_liked":   positive,
		"like_count": likeCount,
	})
}
