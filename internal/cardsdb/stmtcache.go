package cardsdb

import (
	"context"
	"database/sql"
)

// stmtCache prepares each INSERT once per transaction
type stmtCache struct {
	tx    *sql.Tx
	cache map[string]*sql.Stmt
}

func newStmtCache(tx *sql.Tx) *stmtCache {
	return &stmtCache{tx: tx, cache: make(map[string]*sql.Stmt)}
}

func (c *stmtCache) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	s, ok := c.cache[query]
	if !ok {
		var err error
		s, err = c.tx.PrepareContext(ctx, query)
		if err != nil {
			return nil, err
		}
		c.cache[query] = s
	}
	return s.ExecContext(ctx, args...)
}

func (c *stmtCache) close() {
	for _, s := range c.cache {
		s.Close()
	}
}
