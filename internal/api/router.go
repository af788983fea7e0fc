// Package api wires the HTTP entry point: middleware, routes and handlers.
package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/panda-project/panda/internal/api/handler"
	"github.com/panda-project/panda/internal/api/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Init          handler.InitRunner
	Employees     handler.EmployeeService
	EmployeeQuery handler.EmployeeQuery
	Teams         handler.ScrumTeamService
	TeamQuery     handler.ScrumTeamQuery
	ProjectQuery  handler.ProjectQuery
	Reset         handler.Resetter

	StorePinger handler.StorePinger
	StoreDriver string
	Version     string
	OpenAPISpec []byte
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.StorePinger, deps.StoreDriver, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	r.Post("/init", handler.NewInitHandler(deps.Init).ServeHTTP)

	employeeHandler := handler.NewEmployeeHandler(deps.Employees, deps.EmployeeQuery)
	r.Route("/employees", func(r chi.Router) {
		r.Post("/", employeeHandler.Create)
		r.Get("/", employeeHandler.List)
		r.Get("/{id}", employeeHandler.GetByID)
		r.Put("/{id}", employeeHandler.Update)
		r.Delete("/{id}", employeeHandler.Delete)
	})

	teamHandler := handler.NewScrumTeamHandler(deps.Teams, deps.TeamQuery)
	r.Route("/team", func(r chi.Router) {
		r.Post("/", teamHandler.Create)
		r.Get("/", teamHandler.Get)
		r.Put("/", teamHandler.Update)
		r.Delete("/{id}", teamHandler.Delete)
	})

	r.Get("/project", handler.NewProjectHandler(deps.ProjectQuery).ServeHTTP)
	r.Post("/reset", handler.NewResetHandler(deps.Reset).ServeHTTP)

	return r
}
