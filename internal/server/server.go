// server.go
//
// A personal-development tracking data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of growthdb.
// growthdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// growthdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with growthdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package server

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/growthdb/internal/config"
	"github.com/localnerve/growthdb/internal/handlers"
	"github.com/localnerve/growthdb/internal/middleware"
	"github.com/localnerve/growthdb/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options carries the dependencies of the HTTP app.
type Options struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Quotes *services.QuoteLibrary

	// Now overrides the request clock. Nil means time.Now.
	Now func() time.Time
	// Registry receives the HTTP metrics. Nil means the default prometheus registry.
	Registry *prometheus.Registry
}

// New builds the fiber app with every route and middleware mounted.
func New(opts Options) *fiber.App {
	cfg := opts.Config

	app := fiber.New(fiber.Config{
		AppName:               services.ServiceName,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(opts.Log))
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Prometheus metrics
	var prom *fiberprometheus.FiberPrometheus
	if opts.Registry != nil {
		prom = fiberprometheus.NewWithRegistry(opts.Registry, services.ServiceName, "", "", nil)
	} else {
		prom = fiberprometheus.New(services.ServiceName)
	}
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	api := app.Group("/api")

	health := &handlers.HealthHandler{DB: opts.DB, Config: cfg, Log: opts.Log}
	api.Get("/health", health.Health)

	// Public auth routes, rate limited per client IP
	auth := &handlers.AuthHandler{DB: opts.DB, Tokens: tokens}
	auth.Routes(api.Group("/auth", limiter.New(limiter.Config{
		Max:        cfg.AuthRateLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
		},
	})))

	tracker := &handlers.TrackerHandler{
		DB:     opts.DB,
		Log:    opts.Log,
		Tokens: tokens,
		Quotes: opts.Quotes,
		Now:    opts.Now,
	}
	tracker.Routes(api)

	// 404 handler
	app.Use(handlers.NotFound)

	return app
}
