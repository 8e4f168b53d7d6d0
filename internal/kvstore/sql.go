package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type sqlStore struct{ db *sql.DB }

// OpenSQL opens a SQL-backed medium and ensures the kv table exists.
// The table is the medium, not a data model: one row per key, the value
// column holds the serialized collection.
func OpenSQL(ctx context.Context, driver Driver, dsn string) (Store, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:quizbox.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/quizbox?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaKV); err != nil {
		return nil, err
	}
	return &sqlStore{db: db}, nil
}

const schemaKV = `
CREATE TABLE IF NOT EXISTS kv (
  k TEXT PRIMARY KEY,
  v TEXT NOT NULL
);
`

func (s *sqlStore) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k=$1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *sqlStore) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (k,v) VALUES ($1,$2)
		ON CONFLICT (k) DO UPDATE SET v=EXCLUDED.v`, key, value)
	return err
}

func (s *sqlStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE k=$1`, key)
	return err
}

func (s *sqlStore) Close() error { return s.db.Close() }
