// server.go
//
// A beekeeping record-keeping data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of beedb.
// beedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// beedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with beedb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/beedb/internal/config"
	"github.com/localnerve/beedb/internal/handlers"
	"github.com/localnerve/beedb/internal/middleware"
	"github.com/localnerve/beedb/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	_ "github.com/localnerve/beedb/docs/api" // Swagger docs
)

// ServiceName labels the service in metrics
const ServiceName = "beedb"

// Options tunes how New assembles the app
type Options struct {
	// Registry receives the HTTP metrics, nil means the global Prometheus registry
	Registry *prometheus.Registry
	// Quiet drops the per-request access log
	Quiet bool
}

// New builds the Fiber app with every route and middleware mounted
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               ServiceName,
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if !opts.Quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(compress.New())

	// Prometheus metrics
	var prom *fiberprometheus.FiberPrometheus
	if opts.Registry != nil {
		prom = fiberprometheus.NewWithRegistry(opts.Registry, ServiceName, "http", "", nil)
	} else {
		prom = fiberprometheus.New(ServiceName)
	}
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api, all behind the shared bearer token
	tracker := &services.ActivityTracker{DB: db}
	api := app.Group("/api",
		middleware.VersionMiddleware(),
		middleware.AuthBearer(cfg.APIToken),
		middleware.TrackActivity(tracker),
	)

	hives := &handlers.HiveHandler{DB: db}
	observations := &handlers.ObservationHandler{DB: db}
	notes := &handlers.NoteHandler{DB: db}

	api.Get("/status", handlers.Status)

	api.Get("/hives/:userid/:status", hives.GetHives)
	api.Post("/hive", hives.SetHive)
	api.Delete("/hive", hives.DeleteHive)

	api.Get("/obs/:userid/:limit", observations.GetObservations)
	api.Post("/obs", observations.SetObservation)
	api.Delete("/obs", observations.DeleteObservation)

	api.Get("/notes/:userid", notes.GetNotes)
	api.Post("/note", notes.SetNote)
	api.Delete("/note", notes.DeleteNote)

	// 404 handler
	app.Use(middleware.NotFound)

	return app
}
