// Package sqlite persists a flattened ontology so that term lookups and
// search do not need to re-parse the .obo source.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"obotab/internal/domain"
	"obotab/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.TermIndex using SQLite
type Index struct {
	db         *sql.DB
	sourcePath string
	dbPath     string
}

// Ensure Index implements TermIndex
var _ ports.TermIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given .obo source path. Each source
// gets its own database file under the XDG data directory.
func (idx *Index) Open(sourcePath string) error {
	idx.sourcePath = sourcePath
	idx.dbPath = databasePath(sourcePath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS terms (
			id TEXT PRIMARY KEY,
			name TEXT,
			definition TEXT,
			parent_ids TEXT,
			category_id TEXT,
			category_name TEXT
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_terms_name ON terms(name);
		CREATE INDEX IF NOT EXISTS idx_terms_category ON terms(category_id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// databasePath returns the path for the SQLite database
func databasePath(sourcePath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash source path for unique DB name
	hash := hashSourcePath(sourcePath)

	return filepath.Join(dataHome, "obotab", hash+".db")
}

// hashSourcePath returns a short hash of the source path
func hashSourcePath(sourcePath string) string {
	h := sha256.Sum256([]byte(sourcePath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and source path hash
func (idx *Index) updateMeta() error {
	if _, err := idx.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion); err != nil {
		return err
	}
	_, err := idx.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('source_path_hash', ?)`,
		hashSourcePath(idx.sourcePath))
	return err
}

// Rebuild replaces all indexed terms with the given ontology in one
// transaction.
func (idx *Index) Rebuild(o *domain.Ontology) (*domain.IndexStats, error) {
	start := time.Now()

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM terms"); err != nil {
		return nil, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO terms (id, name, definition, parent_ids, category_id, category_name)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	count := 0
	for term := range o.Terms() {
		flat := domain.FlattenTerm(term)
		if _, err := stmt.Exec(flat.ID, flat.Name, flat.Definition,
			flat.ParentIDs, flat.CategoryID, flat.CategoryName); err != nil {
			return nil, fmt.Errorf("indexing term %s: %w", flat.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.IndexStats{Terms: count, Duration: time.Since(start)}, nil
}

// GetTerm retrieves an indexed term by id
func (idx *Index) GetTerm(id string) (*domain.IndexedTerm, error) {
	var term domain.IndexedTerm

	err := idx.db.QueryRow(`
		SELECT id, name, definition, parent_ids, category_id, category_name
		FROM terms WHERE id = ?
	`, id).Scan(&term.ID, &term.Name, &term.Definition,
		&term.ParentIDs, &term.CategoryID, &term.CategoryName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &term, nil
}

// Search returns terms whose id, name or definition contains the query.
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	pattern := "%" + query + "%"

	rows, err := idx.db.Query(`
		SELECT id, name, definition
		FROM terms
		WHERE id LIKE ? OR name LIKE ? OR definition LIKE ?
		LIMIT 200
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var definition string
		if err := rows.Scan(&r.ID, &r.Name, &definition); err != nil {
			return nil, err
		}
		r.MatchedText = definition
		results = append(results, r)
	}

	return results, rows.Err()
}

// Count returns the number of indexed terms
func (idx *Index) Count() (int, error) {
	var n int
	err := idx.db.QueryRow("SELECT COUNT(*) FROM terms").Scan(&n)
	return n, err
}
