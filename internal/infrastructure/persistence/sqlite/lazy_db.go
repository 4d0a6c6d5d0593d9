package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/dumbtile/internal/application/port"
)

// LazyDB implements port.DatabaseProvider. The connection is opened on first
// access, so commands that never apply a layout skip the WASM compilation and
// migrations. A failed open is retried on the next access.
type LazyDB struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db != nil {
		return l.db, nil
	}

	db, err := Open(ctx, l.path)
	if err != nil {
		return nil, fmt.Errorf("snapshot database unavailable: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the connection if it was opened. DB may be called again afterwards.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
