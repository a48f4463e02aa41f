// Package webapi assembles the Fiber application: middleware stack, error
// handling and route registration.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/finpal/finpal/pkg/config"
	authsvc "github.com/finpal/finpal/pkg/service/auth"
	repairsvc "github.com/finpal/finpal/pkg/service/repair"
	txsvc "github.com/finpal/finpal/pkg/service/transaction"
	"github.com/finpal/finpal/webapi/common"
	repairapi "github.com/finpal/finpal/webapi/repair"
	transactionapi "github.com/finpal/finpal/webapi/transaction"
)

// NewApp builds the Fiber app with all routes and middleware.
func NewApp(
	repairSvc *repairsvc.Service,
	transactionSvc *txsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.AppConfig,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	// Integrations call from browsers and serverless runtimes alike; answer
	// preflight and tag every response with permissive CORS headers.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	repairapi.Routes(app, repairSvc, authSvc, cfg)
	transactionapi.Routes(app, transactionSvc)

	return app
}
