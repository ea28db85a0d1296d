package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/minegocio/negocio-api/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID asigna un identificador único a cada petición y lo propaga en la
// respuesta. Si el cliente ya envió uno, se respeta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("request_id", rid)
		c.Set(requestIDHeader, rid)
		return c.Next()
	}
}

// RequestLogger registra cada petición terminada con método, ruta, status y
// request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.WithComponent("http")
	return func(c *fiber.Ctx) error {
		err := c.Next()
		rid, _ := c.Locals("request_id").(string)
		l.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("request_id", rid).
			Msg("request")
		return err
	}
}
