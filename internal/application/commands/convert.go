package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"obotab/internal/adapters/tsv"
	"obotab/internal/application"
	"obotab/internal/domain"
	"obotab/internal/ports"
)

// ConvertResult contains the result of a conversion
type ConvertResult struct {
	Terms      int
	RootID     string
	OutputPath string // "-" when written to stdout
}

// ConvertCommand parses an .obo source and writes it out as a .tsv table.
type ConvertCommand struct {
	resolver ports.SourceResolver
	logger   *zap.Logger

	InputPath   string
	OutputPath  string // "-" = stdout (default), "" = derive from input name
	RootID      string // "" = resolve from the graph
	AddCategory bool

	// Stdout is the stream used when OutputPath is "-"; defaults to
	// os.Stdout.
	Stdout io.Writer
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(resolver ports.SourceResolver, logger *zap.Logger, inputPath string) *ConvertCommand {
	return &ConvertCommand{
		resolver:   resolver,
		logger:     logger,
		InputPath:  inputPath,
		OutputPath: "-",
		Stdout:     os.Stdout,
	}
}

// Validate checks if the conversion is runnable
func (c *ConvertCommand) Validate() error {
	if c.InputPath == "" {
		return &application.ValidationError{
			Field:   "inputPath",
			Message: "input path or URL is required",
		}
	}
	return nil
}

// Execute runs the conversion pipeline: parse, resolve root, optionally
// assign categories, write the table.
func (c *ConvertCommand) Execute(ctx context.Context) (*ConvertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	onto, err := Load(c.resolver, c.logger, c.InputPath)
	if err != nil {
		return nil, err
	}

	rootID := c.RootID
	if rootID == "" {
		rootID, err = domain.ResolveRoot(onto)
		if err != nil {
			return nil, fmt.Errorf("resolving root: %w", err)
		}
		c.logger.Debug("resolved root", zap.String("root", rootID))
	} else if _, ok := onto.Get(rootID); !ok {
		return nil, &domain.LookupError{Label: "root id", ID: rootID}
	}

	if c.AddCategory {
		warnings, err := domain.AssignCategories(onto, rootID,
			domain.CategoryOptions{AddID: true, AddName: true})
		if err != nil {
			return nil, fmt.Errorf("assigning categories: %w", err)
		}
		for _, w := range warnings {
			c.logger.Warn(w)
		}
	}

	for _, s := range onto.TagStats() {
		c.logger.Debug("tag stats",
			zap.String("tag", s.Tag),
			zap.Int("terms", s.Records),
			zap.Float64("valuesPerTerm", s.ValuesPerRecord()))
	}

	outputPath := c.OutputPath
	if outputPath == "" {
		outputPath = deriveOutputPath(c.InputPath)
	}

	out := c.Stdout
	if outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := tsv.Write(out, onto, rootID); err != nil {
		return nil, err
	}

	return &ConvertResult{
		Terms:      onto.Len(),
		RootID:     rootID,
		OutputPath: outputPath,
	}, nil
}

// deriveOutputPath maps an input path or URL to a .tsv file name next to
// the working directory, e.g. "http://.../hp.obo" -> "hp.tsv".
func deriveOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, ".obo") + ".tsv"
}
