package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nikbrunner/bizbook/internal/model"
)

// CurrentSchemaVersion is the schema version migrate brings a database to.
const CurrentSchemaVersion = 2

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the version recorded in the database.
func (s *SQLiteStorage) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return fmt.Errorf("migrate v1: %w", err)
		}
	}

	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return fmt.Errorf("migrate v2: %w", err)
		}
	}

	return nil
}

// migrateV1 creates persons and saved folders.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS persons (
			id TEXT PRIMARY KEY NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_persons_position ON persons(position);

		CREATE TABLE IF NOT EXISTS folders (
			position INTEGER PRIMARY KEY,
			display_name TEXT NOT NULL,
			query_tags TEXT NOT NULL DEFAULT '[]'
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds business feature declarations.
func (s *SQLiteStorage) migrateV2() error {
	migration := `
		CREATE TABLE IF NOT EXISTS features (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]'
		);
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Load reads the address book from the SQLite database.
func (s *SQLiteStorage) Load() (*model.AddressBook, error) {
	book := model.NewAddressBook()

	rows, err := s.db.Query(`
		SELECT name, phone, email, address, tags
		FROM persons
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, phone, email, address, tagsJSON string
		if err := rows.Scan(&name, &phone, &email, &address, &tagsJSON); err != nil {
			return nil, err
		}
		tags, err := decodeStrings(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", name, err)
		}
		p, err := toPerson(name, phone, email, address, tags)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", name, err)
		}
		book.Persons = append(book.Persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := checkDuplicates(book.Persons); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`SELECT display_name, query_tags FROM folders ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.SavedFolder
		var tagsJSON string
		if err := rows.Scan(&f.DisplayName, &tagsJSON); err != nil {
			return nil, err
		}
		f.QueryTags, err = decodeStrings(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("folder %q: %w", f.DisplayName, err)
		}
		book.Folders = append(book.Folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`SELECT name, tags FROM features ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, tagsJSON string
		if err := rows.Scan(&name, &tagsJSON); err != nil {
			return nil, err
		}
		tags, err := decodeStrings(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", name, err)
		}
		f, err := toFeature(name, tags)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", name, err)
		}
		book.Features = append(book.Features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return book, nil
}

// Save writes the address book to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(book *model.AddressBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"persons", "folders", "features"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	personStmt, err := tx.Prepare(`
		INSERT INTO persons (id, position, name, phone, email, address, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer personStmt.Close()

	for i, p := range book.Persons {
		if _, err := personStmt.Exec(
			uuid.NewString(), i, string(p.Name), string(p.Phone),
			string(p.Email), string(p.Address), encodeStrings(tagNames(p.Tags)),
		); err != nil {
			return err
		}
	}

	folderStmt, err := tx.Prepare(`INSERT INTO folders (position, display_name, query_tags) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer folderStmt.Close()

	for i, f := range book.Folders {
		if _, err := folderStmt.Exec(i, f.DisplayName, encodeStrings(f.QueryTags)); err != nil {
			return err
		}
	}

	featureStmt, err := tx.Prepare(`INSERT INTO features (position, name, tags) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer featureStmt.Close()

	for i, f := range book.Features {
		if _, err := featureStmt.Exec(i, f.Name, encodeStrings(tagNames(f.Tags))); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func encodeStrings(values []string) string {
	if values == nil {
		return "[]"
	}
	data, _ := json.Marshal(values)
	return string(data)
}

func decodeStrings(data string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("invalid tag list %q: %w", data, err)
	}
	return values, nil
}
