package repo

import (
	"context"
	"time"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

type Config struct {
	// Driver selects the backing store: "mongo" or "memory".
	Driver string `yaml:"driver"`

	Mongo MongoConfig `yaml:"mongo"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

func New(ctx context.Context, cfg Config, log logger.Logger) (scheduling.Repo, error) {
	switch cfg.Driver {
	case "mongo":
		return newMongo(ctx, cfg.Mongo, log)
	case "memory", "":
		return NewMemory(log), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
