package commands

import (
	"context"

	"go.uber.org/zap"

	"obotab/internal/application"
	"obotab/internal/ports"
)

// StatsResult contains the stats report for one source
type StatsResult struct {
	Source string
	Terms  int
	Tags   []application.TagStat
}

// StatsCommand reports per-tag frequency across a parsed ontology.
type StatsCommand struct {
	resolver ports.SourceResolver
	logger   *zap.Logger

	InputPath string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(resolver ports.SourceResolver, logger *zap.Logger, inputPath string) *StatsCommand {
	return &StatsCommand{
		resolver:  resolver,
		logger:    logger,
		InputPath: inputPath,
	}
}

// Validate checks if the stats run is valid
func (c *StatsCommand) Validate() error {
	if c.InputPath == "" {
		return &application.ValidationError{
			Field:   "inputPath",
			Message: "input path or URL is required",
		}
	}
	return nil
}

// Execute parses the source and computes tag statistics
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	onto, err := Load(c.resolver, c.logger, c.InputPath)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Source: c.InputPath,
		Terms:  onto.Len(),
		Tags:   onto.TagStats(),
	}, nil
}
