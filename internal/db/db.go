// Package db provides PostgreSQL storage for profiles.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resumeforge/internal/profile"
	"github.com/jonathan/resumeforge/internal/types"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS profiles (
	id         UUID PRIMARY KEY,
	content    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// DefaultProfileID identifies the single profile kept by the CLI.
var DefaultProfileID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resumeforge:profile:default"))

// querier is the subset of pgxpool.Pool used by the stores
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the profiles table when missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ProfileStore returns a profile.Store backed by the profiles table.
func (db *DB) ProfileStore(id uuid.UUID) *ProfileStore {
	return newProfileStore(db.pool, id)
}

// ProfileStore keeps one profile as a JSONB document
type ProfileStore struct {
	q   querier
	id  uuid.UUID
	now func() time.Time
}

func newProfileStore(q querier, id uuid.UUID) *ProfileStore {
	if id == uuid.Nil {
		id = DefaultProfileID
	}
	return &ProfileStore{q: q, id: id, now: time.Now}
}

// ID returns the row key of the stored profile
func (s *ProfileStore) ID() uuid.UUID {
	return s.id
}

// Load fetches the profile. A missing row yields an empty profile.
func (s *ProfileStore) Load(ctx context.Context) (*types.Profile, error) {
	var content []byte
	err := s.q.QueryRow(ctx, `SELECT content FROM profiles WHERE id = $1`, s.id).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.NewProfile(), nil
		}
		return nil, &profile.LoadError{Message: fmt.Sprintf("failed to get profile %s", s.id), Cause: err}
	}
	return profile.Decode(content)
}

// Save stamps last_updated and upserts the profile row.
func (s *ProfileStore) Save(ctx context.Context, p *types.Profile) error {
	if p == nil {
		return &profile.SaveError{Message: "profile is nil"}
	}
	profile.Touch(p, s.now)

	content, err := json.Marshal(p)
	if err != nil {
		return &profile.SaveError{Message: "failed to marshal profile", Cause: err}
	}

	_, err = s.q.Exec(ctx,
		`INSERT INTO profiles (id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET content = $2, updated_at = NOW()`,
		s.id, content,
	)
	if err != nil {
		return &profile.SaveError{Message: fmt.Sprintf("failed to save profile %s", s.id), Cause: err}
	}
	return nil
}

var _ profile.Store = (*ProfileStore)(nil)
