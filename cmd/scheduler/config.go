package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hiresync/scheduler/internal/api"
	"github.com/hiresync/scheduler/internal/calendar"
	"github.com/hiresync/scheduler/internal/directory"
	"github.com/hiresync/scheduler/internal/outreach"
	"github.com/hiresync/scheduler/internal/reminders"
	"github.com/hiresync/scheduler/internal/repo"
	"github.com/hiresync/scheduler/pkg/environment"
	"github.com/hiresync/scheduler/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	API         api.Config       `yaml:"API"`
	Storage     repo.Config      `yaml:"Storage"`
	Calendar    calendar.Config  `yaml:"Calendar"`
	Outreach    outreach.Config  `yaml:"Outreach"`
	Reminders   reminders.Config `yaml:"Reminders"`
	Directory   directory.Config `yaml:"Directory"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read config.yaml")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if raw == nil || *raw == "" {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}
