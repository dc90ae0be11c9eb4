package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/services"
)

func listPostComments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	if _, err := services.GetPost(database.C, uint(id)); err != nil {
		return err
	}

	comments, err := services.ListPostComments(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count": len(comments),
		"data":  comments,
	})
}
