package commands

import (
	"fmt"

	"go.uber.org/zap"

	"obotab/internal/domain"
	"obotab/internal/ports"
)

// Load opens and parses an .obo source, logging any dangling-parent
// warnings the parser reports. Every command that needs an in-memory
// ontology goes through here.
func Load(resolver ports.SourceResolver, logger *zap.Logger, path string) (*domain.Ontology, error) {
	rc, err := resolver.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	logger.Info("parsing ontology", zap.String("source", path))
	onto, warnings, err := domain.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	logger.Info("parsed ontology", zap.Int("terms", onto.Len()))

	return onto, nil
}
