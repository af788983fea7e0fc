// Package app builds the object graph shared by the server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/panda-project/panda/internal/config"
	"github.com/panda-project/panda/internal/employee"
	"github.com/panda-project/panda/internal/integrity"
	"github.com/panda-project/panda/internal/product"
	"github.com/panda-project/panda/internal/project"
	"github.com/panda-project/panda/internal/query"
	"github.com/panda-project/panda/internal/scrumteam"
	"github.com/panda-project/panda/internal/seed"
	"github.com/panda-project/panda/internal/store"
	"github.com/panda-project/panda/internal/usecase"
)

// Pinger is implemented by backends that hold a connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the opened document store and every use case and query service
// built on it.
type App struct {
	Config *config.Config
	DB     *store.DB

	Init      *usecase.InitScenario
	Employees *usecase.EmployeeUseCase
	Teams     *usecase.ScrumTeamUseCase
	Reset     *usecase.ResetScenario

	EmployeeQuery *query.EmployeeListQueryService
	TeamQuery     *query.ScrumTeamQueryService
	ProjectQuery  *query.ProjectListQueryService

	Integrity *integrity.Monitor

	pinger Pinger
}

// New opens the backend selected by cfg.StoreDriver and wires everything on
// top of it. Call Close to flush and release the backend.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(ctx, backend)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("opening document store: %w", err), backend.Close())
	}

	employees := employee.NewRepository(db)
	products := product.NewRepository(db)
	projects := project.NewRepository(db)
	teams := scrumteam.NewRepository(db)

	a := &App{
		Config: cfg,
		DB:     db,

		Init:      usecase.NewInitScenario(usecase.NewProductUseCase(products), usecase.NewProjectUseCase(projects)),
		Employees: usecase.NewEmployeeUseCase(employees),
		Teams:     usecase.NewScrumTeamUseCase(teams),
		Reset:     usecase.NewResetScenario(db, SeedLoader(cfg.SeedFile)),

		EmployeeQuery: query.NewEmployeeListQueryService(employees),
		TeamQuery:     query.NewScrumTeamQueryService(teams),
		ProjectQuery:  query.NewProjectListQueryService(products, projects, teams),

		Integrity: integrity.New(db, cfg.IntegrityInterval()),
	}
	if p, ok := backend.(Pinger); ok {
		a.pinger = p
	}
	return a, nil
}

// OpenBackend returns the document backend for cfg.StoreDriver.
func OpenBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverFile:
		return store.NewFileBackend(cfg.DataFile), nil
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil
	case config.DriverPostgres:
		backend, err := store.NewPostgresBackend(ctx, cfg.DatabaseURL, cfg.DocumentName)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// SeedLoader returns the loader for a TOML seed file, or the built-in seed
// when path is empty.
func SeedLoader(path string) usecase.SeedLoader {
	if path == "" {
		return seed.Default
	}
	return func() (*store.Document, error) {
		return seed.Load(path)
	}
}

// Pinger returns the backend's pinger, or nil when the backend has nothing
// to ping.
func (a *App) Pinger() Pinger {
	return a.pinger
}

// Close flushes the document and releases the backend.
func (a *App) Close(ctx context.Context) error {
	return a.DB.Close(ctx)
}
