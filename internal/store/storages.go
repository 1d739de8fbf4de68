package store

import (
	"context"

	"github.com/emarchenko/go-identity/internal/config"
	"github.com/emarchenko/go-identity/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}, nil
}
