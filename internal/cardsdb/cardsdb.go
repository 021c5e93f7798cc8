// Package cardsdb loads assembled card tables into a SQLite database.
//
// The schema mirrors the tables targeted by the generated SQL script, so a
// local database file can stand in for the game server's database during
// development.
package cardsdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arcanaland/cardseed/internal/assemble"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// Creates holds the CREATE TABLE statements in dependency order
var Creates = []string{
	`CREATE TABLE IF NOT EXISTS packs (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS black_cards (
		id   INTEGER PRIMARY KEY,
		pack TEXT NOT NULL,
		text TEXT NOT NULL,
		draw INTEGER NOT NULL DEFAULT 0,
		pick INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS black_cards_link (
		card_id INTEGER NOT NULL REFERENCES black_cards (id),
		edition TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS white_cards (
		id   INTEGER PRIMARY KEY,
		pack TEXT NOT NULL,
		text TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS white_cards_link (
		card_id INTEGER NOT NULL REFERENCES white_cards (id),
		edition TEXT NOT NULL
	)`,
}

// Link tables come first so foreign keys never dangle mid-delete
var clearOrder = []string{"black_cards_link", "white_cards_link", "black_cards", "white_cards", "packs"}

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return db, nil
}

// Option configures the behavior of Load.
type Option func(*loadConfig)

type loadConfig struct {
	beforeCommit func() error
}

// WithBeforeCommit runs fn after every row is inserted and before the
// transaction commits. An error from fn rolls the load back.
func WithBeforeCommit(fn func() error) Option {
	return func(c *loadConfig) {
		c.beforeCommit = fn
	}
}

// Load creates the tables if needed and replaces their contents with t
// inside a single transaction.
func Load(ctx context.Context, db *sql.DB, t *assemble.Tables, opts ...Option) error {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, ddl := range Creates {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range clearOrder {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertAll(ctx, tx, t); err != nil {
		return err
	}

	if cfg.beforeCommit != nil {
		if err := cfg.beforeCommit(); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertAll(ctx context.Context, tx *sql.Tx, t *assemble.Tables) error {
	q := newStmtCache(tx)
	defer q.close()

	for _, p := range t.Packs {
		if _, err := q.ExecContext(ctx, `INSERT INTO packs (id, name) VALUES (?, ?)`, p.ID, p.Name); err != nil {
			return fmt.Errorf("inserting pack %s: %w", p.ID, err)
		}
	}

	for _, c := range t.BlackCards {
		_, err := q.ExecContext(ctx,
			`INSERT INTO black_cards (id, pack, text, draw, pick) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Pack, c.Text, c.Draw, c.Pick)
		if err != nil {
			return fmt.Errorf("inserting black card %d: %w", c.ID, err)
		}
	}

	for _, l := range t.BlackLinks {
		_, err := q.ExecContext(ctx, `INSERT INTO black_cards_link (card_id, edition) VALUES (?, ?)`, l.CardID, l.Edition)
		if err != nil {
			return fmt.Errorf("inserting black card link %d/%s: %w", l.CardID, l.Edition, err)
		}
	}

	for _, c := range t.WhiteCards {
		_, err := q.ExecContext(ctx, `INSERT INTO white_cards (id, pack, text) VALUES (?, ?, ?)`, c.ID, c.Pack, c.Text)
		if err != nil {
			return fmt.Errorf("inserting white card %d: %w", c.ID, err)
		}
	}

	for _, l := range t.WhiteLinks {
		_, err := q.ExecContext(ctx, `INSERT INTO white_cards_link (card_id, edition) VALUES (?, ?)`, l.CardID, l.Edition)
		if err != nil {
			return fmt.Errorf("inserting white card link %d/%s: %w", l.CardID, l.Edition, err)
		}
	}

	return nil
}
