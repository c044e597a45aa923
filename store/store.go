// Package store provides the optional persistence collaborators
// for the solver: a Redis cache of solved puzzles and a Postgres
// library of named puzzles.  The core solver packages never
// depend on this package; it consumes them from the outside, the
// same way the CLI does.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdURL   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdURL = "redis://localhost:6379/"
	} else {
		rdURL = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdURL, err)
	}
	rdc = conn
	return rdURL, nil
}

// rdClose: close the open Redis connection, if any.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body with the Redis mutex and
// connection.  Because Redis connections can go away without
// warning, the connection is pinged first and reopened if the
// ping fails.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err = rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q", rdURL)
		}
	}
	return body(rdc)
}

// CacheConnect opens the Redis connection named by REDIS_URL
// (default localhost).  Returns the connection id.
func CacheConnect() (string, error) {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	rdInit()
	return rdConnect()
}

// CacheConnected reports whether the cache connection is open.
func CacheConnected() bool {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	return rdc != nil
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgURL  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgURL = "postgres://localhost/sudoku?sslmode=disable"
	} else {
		pgURL = url
	}
}

// pgConnect: open the Postgres database.  Returns the connection
// id, if successful, an error otherwise.
func pgConnect(ctx context.Context) (string, error) {
	conn, err := pgx.Connect(ctx, pgURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgURL, err)
	}
	pgConn = conn
	return pgURL, nil
}

// pgClose: close the open Postgres connection, if any.
func pgClose(ctx context.Context) {
	if pgConn != nil {
		pgConn.Close(ctx)
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out, the transaction is rolled back, otherwise
// it's committed.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// DatabaseConnect opens the Postgres connection named by
// DATABASE_URL (default localhost) and makes sure the puzzle
// library schema and seed data are in place.  Returns the
// connection id.
func DatabaseConnect(ctx context.Context) (string, error) {
	pgInit()
	databaseID, err := pgConnect(ctx)
	if err != nil {
		return "", err
	}
	if err := EnsureData(ctx); err != nil {
		pgClose(ctx)
		return "", fmt.Errorf("couldn't initialize database: %v", err)
	}
	return databaseID, nil
}

// Connect opens both the cache and the database.
func Connect(ctx context.Context) (cacheID, databaseID string, err error) {
	if cacheID, err = CacheConnect(); err != nil {
		return
	}
	if databaseID, err = DatabaseConnect(ctx); err != nil {
		return
	}
	return
}

// Close closes whichever connections are open.
func Close(ctx context.Context) {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose(ctx)
	rdClose()
}
