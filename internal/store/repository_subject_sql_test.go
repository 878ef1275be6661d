// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestSubjectRepo(t *testing.T) (*sqlSubjectRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &sqlSubjectRepository{
		db:     newDB(db, DialectPostgres, l),
		ids:    fixedID("s-1"),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

func TestSQLCreateSubject_Success(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subjects").
		WithArgs("s-1", "Math", "Ms. K").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subject_alumni").
		WithArgs("s-1", 0, "u1", "s-1", 1, "u2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	created, err := repo.CreateSubject(context.Background(), models.Subject{
		Name:    "Math",
		Teacher: "Ms. K",
		Alumni:  []string{"u1", "u2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "s-1", created.ID)
	assert.Equal(t, []string{"u1", "u2"}, created.Alumni)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLCreateSubject_NoAlumniSkipsAlumniInsert(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subjects").
		WithArgs("s-1", "Art", "Mr. B").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateSubject(context.Background(), models.Subject{Name: "Art", Teacher: "Mr. B"})
	require.NoError(t, err)

	assert.NotNil(t, created.Alumni)
	assert.Empty(t, created.Alumni)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLCreateSubject_RollsBackOnAlumniFailure(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subjects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO subject_alumni").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.CreateSubject(context.Background(), models.Subject{
		Name: "Math", Teacher: "Ms. K", Alumni: []string{"u1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLCreateSubject_ConnectionFailureIsUnavailable(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO subjects").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectRollback()

	_, err := repo.CreateSubject(context.Background(), models.Subject{Name: "Math", Teacher: "Ms. K"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSQLListSubjects_StitchesAlumni(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM subjects ORDER BY created_at, id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}).
			AddRow("s-1", "Math", "Ms. K").
			AddRow("s-2", "Art", "Mr. B"))
	mock.ExpectQuery("SELECT (.+) FROM subject_alumni").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "user_id"}).
			AddRow("s-1", "u1").
			AddRow("s-1", "u2"))

	subjects, err := repo.ListSubjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	assert.Equal(t, "s-1", subjects[0].ID)
	assert.Equal(t, []string{"u1", "u2"}, subjects[0].Alumni)
	assert.Equal(t, "s-2", subjects[1].ID)
	assert.NotNil(t, subjects[1].Alumni)
	assert.Empty(t, subjects[1].Alumni)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLListSubjects_Empty(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}))

	subjects, err := repo.ListSubjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLListSubjects_QueryError(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM subjects").WillReturnError(sql.ErrConnDone)

	_, err := repo.ListSubjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLGetSubjectByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.Subject
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
					WithArgs("s-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}).AddRow("s-1", "Math", "Ms. K"))
				mock.ExpectQuery("SELECT (.+) FROM subject_alumni WHERE subject_id").
					WithArgs("s-1").
					WillReturnRows(sqlmock.NewRows([]string{"subject_id", "user_id"}).AddRow("s-1", "u9"))
			},
			want: models.Subject{ID: "s-1", Name: "Math", Teacher: "Ms. K", Alumni: []string{"u9"}},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
					WithArgs("s-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}))
			},
			wantErr: ErrSubjectNotFound,
		},
		{
			name: "deadlock is unavailable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
					WillReturnError(pgError(pgerrcode.DeadlockDetected))
			},
			wantErr: ErrStorageUnavailable,
		},
		{
			name: "syntax error is not unavailable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
					WillReturnError(pgError(pgerrcode.SyntaxError))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSubjectRepo(t)
			tt.setup(mock)

			got, err := repo.GetSubjectByID(context.Background(), "s-1")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLUpdateSubject_NameOnly(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subjects SET name").
		WithArgs("Algebra", "s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}).AddRow("s-1", "Algebra", "Ms. K"))
	mock.ExpectQuery("SELECT (.+) FROM subject_alumni").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "user_id"}).AddRow("s-1", "u1"))
	mock.ExpectCommit()

	got, err := repo.UpdateSubject(context.Background(), "s-1", models.SubjectUpdate{Name: strPtr("Algebra")})
	require.NoError(t, err)

	assert.Equal(t, "Algebra", got.Name)
	assert.Equal(t, "Ms. K", got.Teacher)
	assert.Equal(t, []string{"u1"}, got.Alumni)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLUpdateSubject_ReplacesAlumni(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM subjects WHERE id").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DELETE FROM subject_alumni").
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO subject_alumni").
		WithArgs("s-1", 0, "u7").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM subjects WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "teacher"}).AddRow("s-1", "Math", "Ms. K"))
	mock.ExpectQuery("SELECT (.+) FROM subject_alumni").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "user_id"}).AddRow("s-1", "u7"))
	mock.ExpectCommit()

	got, err := repo.UpdateSubject(context.Background(), "s-1", models.SubjectUpdate{Alumni: []string{"u7"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"u7"}, got.Alumni)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLUpdateSubject_NotFound(t *testing.T) {
	repo, mock := newTestSubjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE subjects").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateSubject(context.Background(), "missing", models.SubjectUpdate{Teacher: strPtr("X")})
	require.ErrorIs(t, err, ErrSubjectNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDeleteSubject(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestSubjectRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM subject_alumni").WithArgs("s-1").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM subjects").WithArgs("s-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteSubject(context.Background(), "s-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestSubjectRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM subject_alumni").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM subjects").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteSubject(context.Background(), "s-1")
		require.ErrorIs(t, err, ErrSubjectNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestSubjectRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("no tx"))

		err := repo.DeleteSubject(context.Background(), "s-1")
		require.ErrorIs(t, err, ErrBeginningTransaction)
	})
}
