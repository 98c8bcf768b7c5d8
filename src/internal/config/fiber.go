package config

import (
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
)

// NewFiber runs with Immutable so header and param values handed to the
// stores stay valid after the request context is recycled.
func NewFiber(config *viper.Viper) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      config.GetString("app.name"),
		ErrorHandler: NewErrorHandler(),
		Prefork:      config.GetBool("web.prefork"),
		Immutable:    true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetString("web.cors_origins"),
		AllowHeaders: "Origin, Content-Type, Accept, X-User-ID, X-Session-ID, X-Admin-Key",
	}))
	return app
}

// NewErrorHandler renders unhandled errors (unknown routes, panics caught by
// recover) with the same envelope as the controllers.
func NewErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		return utils.ResponseError(err, ctx)
	}
}
