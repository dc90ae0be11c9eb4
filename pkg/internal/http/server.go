package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/likelion-vlog/server/pkg/internal"
	"github.com/likelion-vlog/server/pkg/internal/http/api"
	"github.com/likelion-vlog/server/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Server struct {
	App *fiber.App
}

func NewServer() *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "vlog",
		AppName:               "vlog v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          mapServiceError,
	})

	api.MapAPIs(app, "/api")

	return &Server{app}
}

// mapServiceError translates the service error taxonomy into client
// statuses. Store-level failures pass through as 500, untranslated.
func mapServiceError(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   notFound.Error(),
			"subject": notFound.Subject,
		})
	}

	var forbidden *services.ForbiddenError
	if errors.As(err, &forbidden) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": forbidden.Error(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (v *Server) Listen() {
	if err := v.App.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}
