// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/infra/config"
	"github.com/okabe/slipway/internal/infra/logging"
	"github.com/okabe/slipway/internal/infra/schedfile"
	"github.com/okabe/slipway/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Schedules    domain.ScheduleSource
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Config is the configuration loaded at startup.
	Config *domain.Config

	closer interface{ Close() error }
}

// New creates a new Container rooted at the given working directory.
// Configuration problems fall back to defaults; a schedule tool should
// not refuse to run because of a bad config file.
func New(workDir string) *Container {
	configLoader := config.NewLoader(workDir)
	cfg, err := configLoader.Load()
	if err != nil {
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(
		filepath.Join(workDir, ".slipway", "logs"),
		logging.ParseLevel(cfg.Log.Level),
	)

	return &Container{
		Schedules:    schedfile.NewSource(logger),
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
		closer:       logger,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(schedules domain.ScheduleSource, configLoader domain.ConfigLoader, logger domain.Logger, cfg *domain.Config) *Container {
	return &Container{
		Schedules:    schedules,
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
	}
}

// Close releases container-held resources.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// AnalyzeScheduleUseCase returns a new AnalyzeSchedule use case.
func (c *Container) AnalyzeScheduleUseCase() *usecase.AnalyzeSchedule {
	return usecase.NewAnalyzeSchedule(c.Logger)
}

// ValidateScheduleUseCase returns a new ValidateSchedule use case.
func (c *Container) ValidateScheduleUseCase() *usecase.ValidateSchedule {
	return usecase.NewValidateSchedule(c.Logger)
}

// SummarizeScheduleUseCase returns a new SummarizeSchedule use case.
func (c *Container) SummarizeScheduleUseCase() *usecase.SummarizeSchedule {
	return usecase.NewSummarizeSchedule(c.AnalyzeScheduleUseCase())
}
