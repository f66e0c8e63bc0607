// Package database sets up/opens the program database (spec §3, §6
// store schema; ownership: Repository is the only component that
// touches the store).
package database

import (
	"database/sql"
	"fmt"

	"ytwatch/internal/logging"

	// Package sqlite3 provides the database/sql driver for SQLite.
	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Database holds the program's database handle.
type Database struct {
	DB *sql.DB
}

// Open opens (or creates) the database at path and initializes the
// schema inside a single transaction.
func Open(path string) (*Database, error) {
	d := &Database{}

	db, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}
	d.DB = db

	// Enable foreign keys so Video->Channel, Thumbnail->Video/Channel,
	// and history rows are integrity-checked by the engine itself.
	if _, err := d.DB.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	// WAL mode lets the monitor's several workers read concurrently
	// while one of them writes.
	if _, err := d.DB.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := d.DB.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if _, err := d.DB.Exec(`PRAGMA synchronous = NORMAL;`); err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if err := d.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// initTables creates every table inside one transaction; any failure
// rolls the whole schema init back (spec §4.3 failure semantics).
func (d *Database) initTables() (err error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.L().Error().Err(rbErr).Msg("panic rollback failed for table creation")
			}
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.L().Error().Err(rbErr).Err(err).Msg("transaction rollback failed after original error")
			}
		}
	}()

	for _, initFn := range []func(*sql.Tx) error{
		initChannelsTable,
		initChannelHistoryTable,
		initVideosTable,
		initVideoHistoryTable,
		initTagsTable,
		initVideoTagsTable,
		initThumbnailsTable,
		initVideoFormatsTable,
	} {
		if err = initFn(tx); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (d *Database) Close() error {
	return d.DB.Close()
}
