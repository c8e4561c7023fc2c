package ports

import "obotab/internal/domain"

// TermIndex provides cached access to a flattened ontology for fast
// lookups and search without re-parsing the source. All query operations
// should be O(1) or O(log n) via database indexes.
type TermIndex interface {
	// Lifecycle
	Open(sourcePath string) error
	Close() error

	// Rebuild replaces the indexed terms with the given ontology.
	Rebuild(o *domain.Ontology) (*domain.IndexStats, error)

	// Queries
	GetTerm(id string) (*domain.IndexedTerm, error)
	Search(query string) ([]domain.SearchResult, error)
	Count() (int, error)
}
