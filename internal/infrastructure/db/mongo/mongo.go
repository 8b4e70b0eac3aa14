package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Repositories bundles the three collection repositories of one database.
type Repositories struct {
	Clients *ClientRepository
	Mobiles *MobileRepository
	Users   *UserRepository
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Clients: NewClientRepository(db),
		Mobiles: NewMobileRepository(db),
		Users:   NewUserRepository(db),
	}
}

// EnsureIndexes creates every index the repositories rely on.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if err := r.Clients.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("clients indexes: %w", err)
	}
	if err := r.Mobiles.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mobiles indexes: %w", err)
	}
	if err := r.Users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}
