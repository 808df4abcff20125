// Package store is the project job database: which units have been
// published as HITs and which assignments still need paying. It records
// bookkeeping only; the marketplace remains the source of truth for HIT and
// assignment state.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type Unit struct {
	ID        int64          `db:"id"`
	Slug      string         `db:"slug"`
	HITID     sql.NullString `db:"hit_id"`
	HITTypeID sql.NullString `db:"hit_type_id"`
	Published bool           `db:"published"`
	CreatedAt time.Time      `db:"created_at"`
}

type PendingAssignment struct {
	AssignmentID string  `db:"assignment_id"`
	WorkerID     string  `db:"worker_id"`
	Bonus        float64 `db:"bonus"`
}

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open prepares a handle on the project database. Connections are
// established lazily on first use, so commands that never touch the store
// work without a reachable database.
func Open(dbURL string) (*Store, error) {
	db, err := sqlx.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return New(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Setup creates the schema. Safe to run more than once.
func (s *Store) Setup(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS units (
			id BIGSERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			hit_id TEXT,
			hit_type_id TEXT,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS assignments (
			assignment_id TEXT PRIMARY KEY,
			worker_id TEXT NOT NULL,
			bonus DOUBLE PRECISION NOT NULL DEFAULT 0,
			paid BOOLEAN NOT NULL DEFAULT FALSE
		);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// AddUnit registers a work unit by its page slug.
func (s *Store) AddUnit(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO units (slug) VALUES ($1) ON CONFLICT (slug) DO NOTHING`, slug)
	if err != nil {
		return fmt.Errorf("failed to add unit %q: %w", slug, err)
	}
	return nil
}

// Unpublished lists units that have no HIT yet, oldest first.
func (s *Store) Unpublished(ctx context.Context) ([]Unit, error) {
	var units []Unit
	err := s.db.SelectContext(ctx, &units,
		`SELECT id, slug, hit_id, hit_type_id, published, created_at
		 FROM units WHERE NOT published ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpublished units: %w", err)
	}
	return units, nil
}

// MarkPublished records the service-assigned HIT identity for a unit.
func (s *Store) MarkPublished(ctx context.Context, unitID int64, hitID, hitTypeID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE units SET hit_id = $1, hit_type_id = $2, published = TRUE WHERE id = $3`,
		hitID, hitTypeID, unitID)
	if err != nil {
		return fmt.Errorf("failed to mark unit %d published: %w", unitID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("unit %d not found", unitID)
	}
	return nil
}

// Counts returns published and unpublished unit totals.
func (s *Store) Counts(ctx context.Context) (published, pending int, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FILTER (WHERE published), COUNT(*) FILTER (WHERE NOT published) FROM units`)
	if err := row.Scan(&published, &pending); err != nil {
		return 0, 0, fmt.Errorf("failed to count units: %w", err)
	}
	return published, pending, nil
}

// PendingAssignments lists submitted assignments not yet paid.
func (s *Store) PendingAssignments(ctx context.Context) ([]PendingAssignment, error) {
	var pending []PendingAssignment
	err := s.db.SelectContext(ctx, &pending,
		`SELECT assignment_id, worker_id, bonus FROM assignments WHERE NOT paid ORDER BY assignment_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending assignments: %w", err)
	}
	return pending, nil
}

// MarkPaid records that an assignment has been approved and settled.
func (s *Store) MarkPaid(ctx context.Context, assignmentID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE assignments SET paid = TRUE WHERE assignment_id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to mark assignment %q paid: %w", assignmentID, err)
	}
	return nil
}
