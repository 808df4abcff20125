package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestStore_Setup(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS units").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Setup(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AddUnit(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO units").
		WithArgs("frames/1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.AddUnit(context.Background(), "frames/1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Unpublished(t *testing.T) {
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"id", "slug", "hit_id", "hit_type_id", "published", "created_at"}).
		AddRow(1, "frames/1", nil, nil, false, time.Now())
	mock.ExpectQuery("SELECT id, slug, hit_id, hit_type_id, published, created_at").
		WillReturnRows(rows)

	units, err := s.Unpublished(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "frames/1", units[0].Slug)
	assert.False(t, units[0].HITID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkPublished(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE units SET").
		WithArgs("H1", "T1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.MarkPublished(context.Background(), 7, "H1", "T1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkPublished_MissingUnit(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE units SET").
		WithArgs("H1", "T1", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkPublished(context.Background(), 404, "H1", "T1")
	assert.ErrorContains(t, err, "not found")
}

func TestStore_Counts(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"published", "pending"}).AddRow(3, 2))

	published, pending, err := s.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, published)
	assert.Equal(t, 2, pending)
}

func TestStore_PendingAssignments(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT assignment_id, worker_id, bonus FROM assignments").
		WillReturnRows(sqlmock.NewRows([]string{"assignment_id", "worker_id", "bonus"}).
			AddRow("A1", "W1", 0.05).
			AddRow("A2", "W2", 0.0))

	pending, err := s.PendingAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "A1", pending[0].AssignmentID)
	assert.Equal(t, 0.05, pending[0].Bonus)
}

func TestStore_MarkPaid(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE assignments SET paid").
		WithArgs("A1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.MarkPaid(context.Background(), "A1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
