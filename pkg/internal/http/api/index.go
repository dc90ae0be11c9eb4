package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// authContext lifts the demo-auth user id out of the X-User-ID header.
// Everything below the transport receives the acting user's id as an
// explicit parameter; nothing reads ambient session state.
func authContext(c *fiber.Ctx) error {
	if raw := c.Get("X-User-ID"); len(raw) > 0 {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			c.Locals("userId", uint(id))
		}
	}
	return c.Next()
}

func actingUser(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userId").(uint)
	return id, ok
}

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL, authContext)
	{
		posts := api.Group("/posts")
		{
			posts.Get("/", listPost)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)

			posts.Post("/:postId/like", likePost)
			posts.Get("/:postId/comments", listPostComments)
		}
	}
}
