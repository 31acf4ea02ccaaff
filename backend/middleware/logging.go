package middleware

import (
	"time"

	"growthlog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

func LoggingMiddleware(logger *utils.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		// The error handler sets the final status, so run it before logging.
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Printf(
			"%s %s %s %s %v session=%s",
			c.IP(),
			logger.Method(c.Method()),
			c.Path(),
			logger.Status(c.Response().StatusCode()),
			time.Since(start),
			SessionID(c),
		)

		return nil
	}
}
