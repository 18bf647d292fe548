// Package sink provides storage backends usable as buffer.Cached store
// callbacks.
package sink

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SQLite persists byte batches as rows in a SQLite database, one row per
// flush.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing the
// driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLite struct {
	db *sql.DB
	// seq orders batches within this sink's lifetime; the uuid id keeps
	// rows unique across sinks sharing a table.
	seq int64
}

// NewSQLite initializes the required schema in the given database and
// returns a new SQLite sink.
func NewSQLite(db *sql.DB) (*SQLite, error) {
	s := &SQLite{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLite) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			data BLOB NOT NULL,
			stored_at TIMESTAMP NOT NULL
		);`,
	)
	return err
}

// Write stores one batch and reports the whole batch as consumed. It has
// the shape of a buffer.StoreFunc; on error nothing is stored and zero
// consumption is reported, so the caller's cache keeps the bytes.
func (s *SQLite) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	// Copy: the caller reuses p's backing array after we return.
	data := append([]byte(nil), p...)

	s.seq++
	_, err := s.db.Exec(`
		INSERT INTO batches (id, seq, data, stored_at)
		VALUES (?, ?, ?, ?)`,
		uuid.NewString(),
		s.seq,
		data,
		time.Now().UTC(),
	)
	if err != nil {
		s.seq--
		return 0, err
	}
	return len(p), nil
}

// Count returns the number of batches stored in the table.
func (s *SQLite) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM batches`).Scan(&n)
	return n, err
}

// ReadAll returns every stored batch in insertion order.
func (s *SQLite) ReadAll() ([][]byte, error) {
	rows, err := s.db.Query(`SELECT data FROM batches ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, rows.Err()
}
