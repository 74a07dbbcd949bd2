package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RaginiSharma01/GoPay-Lite/internal/dbx"
)

// SQLiteStore keeps the session in a local sqlite key-value table, so a
// login survives process restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, tokenKey)
}

func (s *SQLiteStore) Current(ctx context.Context) (Session, error) {
	var sess Session

	token, err := s.get(ctx, s.db, tokenKey)
	if err != nil {
		return Session{}, err
	}
	refresh, err := s.get(ctx, s.db, refreshTokenKey)
	if err != nil {
		return Session{}, err
	}
	expires, err := s.get(ctx, s.db, expiresAtKey)
	if err != nil {
		return Session{}, err
	}

	sess.Token = token
	sess.RefreshToken = refresh
	if expires != "" {
		if t, err := time.Parse(time.RFC3339, expires); err == nil {
			sess.ExpiresAt = t
		}
	}
	return sess, nil
}

// Save writes token, refresh token and expiry in a single transaction so
// a crash cannot leave a token without its companions.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, tokenKey, sess.Token); err != nil {
			return err
		}
		if err := s.set(ctx, tx, refreshTokenKey, sess.RefreshToken); err != nil {
			return err
		}
		expires := ""
		if !sess.ExpiresAt.IsZero() {
			expires = sess.ExpiresAt.UTC().Format(time.RFC3339)
		}
		return s.set(ctx, tx, expiresAtKey, expires)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
