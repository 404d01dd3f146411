package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS storefront_sessions (
		session_id TEXT        NOT NULL,
		key        TEXT        NOT NULL,
		value      BYTEA       NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, key)
	)
`

// PGStore keeps session values in Postgres.
type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

// Migrate creates the sessions table when missing.
func (s *PGStore) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, schema)
	return err
}

func (s *PGStore) Get(ctx context.Context, sid, key string) ([]byte, error) {
	if err := validate(sid, key); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var v []byte
	err := s.db.QueryRow(ctx, `
		SELECT value FROM storefront_sessions WHERE session_id=$1 AND key=$2
	`, sid, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *PGStore) Set(ctx context.Context, sid, key string, value []byte) error {
	if err := validate(sid, key); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		INSERT INTO storefront_sessions (session_id, key, value, updated_at)
		VALUES ($1,$2,$3,NOW())
		ON CONFLICT (session_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, sid, key, value)
	return err
}

func (s *PGStore) Delete(ctx context.Context, sid, key string) error {
	if err := validate(sid, key); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM storefront_sessions WHERE session_id=$1 AND key=$2`, sid, key)
	return err
}

func (s *PGStore) Clear(ctx context.Context, sid string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM storefront_sessions WHERE session_id=$1`, sid)
	return err
}

// Purge removes sessions idle for longer than ttl and reports how many rows went.
func (s *PGStore) Purge(ctx context.Context, ttl time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := s.db.Exec(ctx, `
		DELETE FROM storefront_sessions
		WHERE session_id IN (
			SELECT session_id FROM storefront_sessions
			GROUP BY session_id
			HAVING MAX(updated_at) < NOW() - make_interval(secs => $1)
		)
	`, ttl.Seconds())
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
