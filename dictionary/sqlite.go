package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a thesaurus compiled into a sqlite database.
// It implements synalter.WordLookup.
type SQLiteStore struct {
	db     *sql.DB
	lookup *sql.Stmt
}

// OpenSQLite opens (or creates) thesaurus database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %s: %w", p, err)
		}
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	stmt, err := db.Prepare(`SELECT synonym FROM synonyms WHERE word = ? ORDER BY ord`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare lookup: %w", err)
	}
	return &SQLiteStore{db: db, lookup: stmt}, nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS synonyms (
            word TEXT NOT NULL,
            ord INTEGER NOT NULL,
            synonym TEXT NOT NULL,
            PRIMARY KEY(word, ord)
        );`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Import writes every headword of idx into database, replacing
// previously stored synonyms of the same headword
func (s *SQLiteStore) Import(ctx context.Context, idx *Index) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	del, err := tx.PrepareContext(ctx, `DELETE FROM synonyms WHERE word = ?`)
	if err != nil {
		return 0, fmt.Errorf("prepare delete: %w", err)
	}
	defer del.Close()
	ins, err := tx.PrepareContext(ctx, `INSERT INTO synonyms (word, ord, synonym) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer ins.Close()

	count := 0
	for _, word := range idx.Headwords() {
		list, ok := idx.Lookup(word)
		if !ok {
			continue
		}
		if _, err := del.ExecContext(ctx, word); err != nil {
			return count, fmt.Errorf("delete %s: %w", word, err)
		}
		for ord, synonym := range list {
			if _, err := ins.ExecContext(ctx, word, ord, synonym); err != nil {
				return count, fmt.Errorf("insert %s: %w", word, err)
			}
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// Lookup returns stored synonyms of a folded word
func (s *SQLiteStore) Lookup(word string) ([]string, bool) {
	rows, err := s.lookup.Query(word)
	if err != nil {
		gologger.Error().Msgf("dictionary: sqlite lookup of %v failed: %v", word, err)
		return nil, false
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var synonym string
		if err := rows.Scan(&synonym); err != nil {
			gologger.Error().Msgf("dictionary: sqlite scan of %v failed: %v", word, err)
			return nil, false
		}
		list = append(list, synonym)
	}
	if err := rows.Err(); err != nil {
		gologger.Error().Msgf("dictionary: sqlite lookup of %v failed: %v", word, err)
		return nil, false
	}
	return list, len(list) > 0
}

// Count returns number of stored headwords
func (s *SQLiteStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(DISTINCT word) FROM synonyms`).Scan(&n)
	return n, err
}

// Close closes underlying database
func (s *SQLiteStore) Close() error {
	_ = s.lookup.Close()
	return s.db.Close()
}
