package reference

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brookeadam/vms-helper/pkg/types"
)

// referenceQuery reads the same six columns the CSV carries. Row order
// follows the stored id so subcategory ordering matches the source file.
const referenceQuery = `
	SELECT vms_category_name, vms_subcategory, keywords, rules, notes, activity_type
	FROM vms_reference
	ORDER BY id
`

// LoadSQLite reads the reference table from a SQLite database file.
// A missing file wraps ErrNotFound, matching the CSV loader.
func LoadSQLite(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reference: %w: %s: %v", ErrNotFound, path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("reference: %w: %s: %v", ErrNotFound, path, err)
	}
	defer func() { _ = db.Close() }()
	return loadFromDB(db, path)
}

// LoadPostgres reads the reference table from a PostgreSQL database.
// An unreachable server wraps ErrNotFound, matching the CSV loader.
func LoadPostgres(dsn string) (*Table, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("reference: %w: %v", ErrNotFound, err)
	}
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("reference: %w: %v", ErrNotFound, err)
	}
	return loadFromDB(db, "postgres")
}

// loadFromDB runs the shared query and builds the table. NULL text
// columns scan as empty strings via sql.NullString.
func loadFromDB(db *sql.DB, source string) (*Table, error) {
	res, err := db.Query(referenceQuery)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: failed to query vms_reference: %w", source, err)
	}
	defer func() { _ = res.Close() }()

	var rows []types.ReferenceRow
	for res.Next() {
		var category, subcategory string
		var keywords, rules, notes, activityType sql.NullString
		if err := res.Scan(&category, &subcategory, &keywords, &rules, &notes, &activityType); err != nil {
			return nil, fmt.Errorf("reference: %s: failed to scan row: %w", source, err)
		}
		rows = append(rows, types.ReferenceRow{
			Category:     category,
			Subcategory:  subcategory,
			Keywords:     splitKeywords(keywords.String),
			Rules:        rules.String,
			Notes:        notes.String,
			ActivityType: activityType.String,
		})
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("reference: %s: row iteration failed: %w", source, err)
	}

	table, err := NewTable(rows)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: %w", source, err)
	}
	return table, nil
}
