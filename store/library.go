package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/will2dye4/sudoku/puzzle"
)

/*

puzzle library

Named puzzles live in Postgres.  EnsureData creates the schema
and seeds it with the built-in sample catalog, so a fresh
database is immediately useful; user-saved puzzles share the
same table.

*/

// createPuzzlesTable is the whole schema: one table mapping
// puzzle names to their condensed 81-character form.
const createPuzzlesTable = `
CREATE TABLE IF NOT EXISTS puzzles (
    name    text PRIMARY KEY,
    grid    char(81) NOT NULL,
    builtin boolean NOT NULL DEFAULT false
)`

// EnsureData creates the puzzle library schema if needed and
// upserts the built-in sample catalog.
func EnsureData(ctx context.Context) error {
	return pgExecute(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createPuzzlesTable); err != nil {
			return fmt.Errorf("couldn't create puzzle table: %v", err)
		}
		for _, name := range puzzle.SampleNames() {
			text, _ := puzzle.ByName(name)
			g, err := puzzle.GridFromText(text)
			if err != nil {
				// built-in samples are validated by tests; don't
				// let one bad entry block the rest
				logrus.WithField("puzzle", name).WithError(err).Warn("store: skipping bad sample")
				continue
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO puzzles (name, grid, builtin) VALUES ($1, $2, true)
				 ON CONFLICT (name) DO UPDATE SET grid = $2, builtin = true`,
				name, g.Condensed())
			if err != nil {
				return fmt.Errorf("couldn't seed puzzle %q: %v", name, err)
			}
		}
		return nil
	})
}

// LookupPuzzle returns the condensed form of the named puzzle.
// An unknown name returns the same CatalogScope Error as the
// built-in catalog does.
func LookupPuzzle(ctx context.Context, name string) (string, error) {
	if pgConn == nil {
		return "", fmt.Errorf("database is not connected")
	}
	var grid string
	err := pgConn.QueryRow(ctx, `SELECT grid FROM puzzles WHERE name = $1`, name).Scan(&grid)
	if err == pgx.ErrNoRows {
		return "", puzzle.Error{
			Scope:     puzzle.CatalogScope,
			Condition: puzzle.UnknownPuzzleCondition,
			Attribute: puzzle.NameAttribute,
			Values:    puzzle.ErrorData{name},
		}
	}
	if err != nil {
		return "", err
	}
	return grid, nil
}

// SavePuzzle validates and stores a named puzzle.  Built-in
// names cannot be overwritten.
func SavePuzzle(ctx context.Context, name, text string) error {
	g, err := puzzle.GridFromText(text)
	if err != nil {
		return err
	}
	return pgExecute(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO puzzles (name, grid) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET grid = $2 WHERE puzzles.builtin = false`,
			name, g.Condensed())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("puzzle %q is built in and can't be replaced", name)
		}
		return nil
	})
}

// ListPuzzles returns the names of every puzzle in the library,
// sorted.
func ListPuzzles(ctx context.Context) ([]string, error) {
	if pgConn == nil {
		return nil, fmt.Errorf("database is not connected")
	}
	rows, err := pgConn.Query(ctx, `SELECT name FROM puzzles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
