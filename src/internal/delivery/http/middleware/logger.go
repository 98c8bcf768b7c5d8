package middleware

import (
	"fmt"
	"time"

	"donation-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const slowRequest = 1500 * time.Millisecond

func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		logger := log.GetLogger()
		message := fmt.Sprintf("%s %s %d", ctx.Method(), ctx.OriginalURL(), ctx.Response().StatusCode())
		if elapsed > slowRequest {
			logger.Slow("http-request", message, "latency", elapsed.String())
		} else {
			logger.Info("http-request", message, "latency", elapsed.String())
		}
		return err
	}
}
