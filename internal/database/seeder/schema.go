package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parish-match/internal/database"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// requireColumns fails with ErrSchemaMismatch, naming every absent column,
// when the migrations have not produced the shape a seeder writes.
func requireColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return database.ErrNilDB
	}
	if table == "" || len(columns) == 0 {
		return fmt.Errorf("require columns: empty table or column list")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1 AND column_name = ANY($2)`,
		table,
		columns,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		found[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, c := range columns {
		if !found[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s missing %s (run `parish-match migrate` first)", ErrSchemaMismatch, table, strings.Join(missing, ", "))
	}
	return nil
}
