// Package db selects and opens the persistence backend configured by
// STORE_DRIVER.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
	"github.com/AlixRomain/P7-Web-Service/internal/infrastructure/config"
	mongostore "github.com/AlixRomain/P7-Web-Service/internal/infrastructure/db/mongo"
	"github.com/AlixRomain/P7-Web-Service/internal/infrastructure/db/sqlstore"
)

// Store is an opened backend exposing the three repositories.
type Store struct {
	Driver  string
	Clients ports.ClientRepository
	Mobiles ports.MobileRepository
	Users   ports.UserRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// Open connects to the configured backend and prepares its schema
// (indexes for mongo, migrations for SQL).
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case "mongo":
		return openMongo(ctx, cfg, log)
	case "mysql", "postgres", "sqlite":
		return openSQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	client, database, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}

	repos := mongostore.NewRepositories(database)
	if err := repos.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo store ready")

	return &Store{
		Driver:  "mongo",
		Clients: repos.Clients,
		Mobiles: repos.Mobiles,
		Users:   repos.Users,
		ping:    func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:   client.Disconnect,
	}, nil
}

func openSQL(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	gdb, err := sqlstore.Connect(ctx, sqlstore.Config{
		Driver:       cfg.Store.Driver,
		DSN:          cfg.SQL.DSN,
		MaxOpenConns: cfg.SQL.MaxOpenConns,
	}, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("sql store ready")

	return &Store{
		Driver:  cfg.Store.Driver,
		Clients: sqlstore.NewClientRepository(gdb),
		Mobiles: sqlstore.NewMobileRepository(gdb),
		Users:   sqlstore.NewUserRepository(gdb),
		ping:    func(ctx context.Context) error { return sqlstore.Ping(ctx, gdb) },
		close:   func(context.Context) error { return sqlstore.Close(gdb) },
	}, nil
}
