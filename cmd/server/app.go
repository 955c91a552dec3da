package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/klowran/cats-api/internal/config"
	"github.com/klowran/cats-api/internal/platform/postgres"
	"github.com/klowran/cats-api/internal/service"
	"github.com/klowran/cats-api/internal/service/auth"
	"github.com/klowran/cats-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	catStore   store.CatStore
	breedStore store.BreedStore

	// Services
	catService      service.CatService
	breedService    service.BreedService
	identityService auth.IdentityService
	jwtService      auth.JWTService
}

// newApplication wires the stores and services on top of an open
// database handle. The caller owns the handle's lifecycle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, logger)
	catStore := postgres.NewPostgresCatStore(db, logger)
	breedStore := postgres.NewPostgresBreedStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(0)
	identityService := auth.NewIdentityService(
		userStore,
		hasher,
		auth.NewBcryptVerifier(),
		jwtService,
		logger,
	)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		userStore:       userStore,
		catStore:        catStore,
		breedStore:      breedStore,
		catService:      service.NewCatService(catStore, logger),
		breedService:    service.NewBreedService(breedStore, logger),
		identityService: identityService,
		jwtService:      jwtService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
