package middleware

import (
	"server/config"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

type Middleware struct {
	config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		config: config,
		log:    logger.New("middleware"),
	}
}

// Register mounts the process-wide middleware chain: panic recovery, request
// ids, and CORS. CORS defaults to allow-all with credentials off, matching
// the deployed frontend setup.
func (m Middleware) Register(app *fiber.App) {
	app.Use(recover.New())
	app.Use(m.requestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     m.config.CorsAllowOrigins,
		AllowCredentials: false,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))
}

// requestID tags every request with a UUID for log correlation.
func (m Middleware) requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}
