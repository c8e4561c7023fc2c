package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"obotab/internal/application"
	"obotab/internal/domain"
	"obotab/internal/ports"
)

// IndexResult contains the result of rebuilding the term index
type IndexResult struct {
	Stats   *domain.IndexStats
	Message string
}

// IndexCommand parses a source and rebuilds its sqlite term index.
type IndexCommand struct {
	resolver ports.SourceResolver
	index    ports.TermIndex
	logger   *zap.Logger

	InputPath   string
	AddCategory bool // stamp categories before indexing
}

// NewIndexCommand creates a new IndexCommand
func NewIndexCommand(resolver ports.SourceResolver, index ports.TermIndex, logger *zap.Logger, inputPath string) *IndexCommand {
	return &IndexCommand{
		resolver:  resolver,
		index:     index,
		logger:    logger,
		InputPath: inputPath,
	}
}

// Validate checks if the index rebuild is valid
func (c *IndexCommand) Validate() error {
	if c.InputPath == "" {
		return &application.ValidationError{
			Field:   "inputPath",
			Message: "input path or URL is required",
		}
	}
	return nil
}

// Execute parses the source and replaces the indexed terms
func (c *IndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	onto, err := Load(c.resolver, c.logger, c.InputPath)
	if err != nil {
		return nil, err
	}

	if c.AddCategory {
		rootID, err := domain.ResolveRoot(onto)
		if err != nil {
			return nil, fmt.Errorf("resolving root: %w", err)
		}
		warnings, err := domain.AssignCategories(onto, rootID,
			domain.CategoryOptions{AddID: true, AddName: true})
		if err != nil {
			return nil, fmt.Errorf("assigning categories: %w", err)
		}
		for _, w := range warnings {
			c.logger.Warn(w)
		}
	}

	stats, err := c.index.Rebuild(onto)
	if err != nil {
		return nil, fmt.Errorf("rebuilding index: %w", err)
	}

	return &IndexResult{
		Stats: stats,
		Message: fmt.Sprintf("Indexed %d terms from %s in %s",
			stats.Terms, c.InputPath, stats.Duration.Round(time.Millisecond)),
	}, nil
}
