package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/config"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/database"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories/dynamo"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories/memory"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories/sqlite"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/services"
)

// Container holds all application dependencies. It is built once per process
// and reused across invocations; the storage handle it carries is the only
// cross-request state.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	UserRepo    repositories.UserRepository
	UserService services.UserService

	db *sql.DB
}

// NewContainer creates a new dependency injection container. The repository
// driver from configuration decides the storage backend; the resulting
// repository is passed into the service and router rather than held as a
// package-level singleton.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	repo, err := container.buildRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	container.UserRepo = repo
	container.UserService = services.NewUserService(repo)

	return container, nil
}

func (c *Container) buildRepository(cfg *config.Config, logger *logrus.Logger) (repositories.UserRepository, error) {
	switch cfg.Repository.Driver {
	case "dynamodb":
		client, err := dynamo.NewClient(context.Background(), cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize DynamoDB client: %w", err)
		}
		return dynamo.NewUserRepository(client, cfg.DynamoDB.TableName, logger), nil

	case "sqlite":
		db, err := database.Connect(cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		c.db = db
		return sqlite.NewUserRepository(db, logger), nil

	case "memory":
		return memory.NewUserRepository(), nil

	default:
		return nil, fmt.Errorf("unknown repository driver: %s", cfg.Repository.Driver)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		c.db = nil
	}
	return nil
}
