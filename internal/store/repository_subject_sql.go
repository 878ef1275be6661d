package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// sqlSubjectRepository is the database/sql implementation of
// [SubjectRepository]. A subject row lives in "subjects"; its alumni live in
// "subject_alumni" keyed by (subject_id, position).
type sqlSubjectRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewSQLSubjectRepository constructs a [SubjectRepository] over db. IDs for
// new subjects come from ids.
func NewSQLSubjectRepository(db *DB, ids IDGenerator, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating sql subject repository")
	return &sqlSubjectRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateSubject inserts the subject row and its alumni in one transaction.
func (r *sqlSubjectRepository) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	subject = subject.Normalize()
	subject.ID = r.ids.Generate()

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertSubjectQuery(r.db.builder, subject)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return r.insertAlumni(ctx, tx, subject.ID, subject.Alumni)
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlSubjectRepository.CreateSubject").Msg("error saving subject")
		return models.Subject{}, r.db.storageError(err)
	}

	return subject, nil
}

// ListSubjects reads all subjects, then all alumni in one query, and stitches
// them together.
func (r *sqlSubjectRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubjectsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlSubjectRepository.ListSubjects").Msg("error selecting subjects")
		return nil, r.db.storageError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err = rows.Scan(&s.ID, &s.Name, &s.Teacher); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.Alumni = []string{}
		subjects = append(subjects, s)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.storageError(fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	if len(subjects) == 0 {
		return subjects, nil
	}

	alumni, err := r.selectAlumni(ctx, r.db.DB)
	if err != nil {
		log.Err(err).Str("func", "*sqlSubjectRepository.ListSubjects").Msg("error selecting alumni")
		return nil, r.db.storageError(err)
	}
	for i := range subjects {
		if list, ok := alumni[subjects[i].ID]; ok {
			subjects[i].Alumni = list
		}
	}

	return subjects, nil
}

func (r *sqlSubjectRepository) GetSubjectByID(ctx context.Context, id string) (models.Subject, error) {
	subject, err := r.getSubject(ctx, r.db.DB, id)
	if err != nil && !errors.Is(err, ErrSubjectNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSubjectRepository.GetSubjectByID").Msg("error selecting subject")
	}

	return subject, err
}

// UpdateSubject changes the scalar columns present in update and, when
// Alumni is provided, replaces the whole alumni list.
func (r *sqlSubjectRepository) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	log := logger.FromContext(ctx)

	var updated models.Subject
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, ok, err := buildUpdateSubjectQuery(r.db.builder, id, update)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if ok {
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected, _ := res.RowsAffected(); affected == 0 {
				return ErrSubjectNotFound
			}
		} else if err = r.subjectExists(ctx, tx, id); err != nil {
			return err
		}

		if update.Alumni != nil {
			query, args, err = buildDeleteAlumniQuery(r.db.builder, id)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if err = r.insertAlumni(ctx, tx, id, update.Alumni); err != nil {
				return err
			}
		}

		updated, err = r.getSubject(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrSubjectNotFound) {
			log.Err(err).Str("func", "*sqlSubjectRepository.UpdateSubject").Msg("error updating subject")
		}
		return models.Subject{}, r.db.storageError(err)
	}

	return updated, nil
}

func (r *sqlSubjectRepository) DeleteSubject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteAlumniQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteSubjectQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrSubjectNotFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrSubjectNotFound) {
		log.Err(err).Str("func", "*sqlSubjectRepository.DeleteSubject").Msg("error deleting subject")
	}

	return r.db.storageError(err)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqlSubjectRepository) getSubject(ctx context.Context, q querier, id string) (models.Subject, error) {
	query, args, err := buildSelectSubjectByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Subject
	err = q.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Teacher)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subject{}, ErrSubjectNotFound
	}
	if err != nil {
		return models.Subject{}, r.db.storageError(fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	alumni, err := r.selectAlumni(ctx, q, id)
	if err != nil {
		return models.Subject{}, r.db.storageError(err)
	}
	s.Alumni = alumni[id]

	return s.Normalize(), nil
}

func (r *sqlSubjectRepository) subjectExists(ctx context.Context, q querier, id string) error {
	query, args, err := buildSubjectExistsQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSubjectNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

// selectAlumni returns alumni grouped by subject ID, each list in position
// order.
func (r *sqlSubjectRepository) selectAlumni(ctx context.Context, q querier, subjectIDs ...string) (map[string][]string, error) {
	query, args, err := buildSelectAlumniQuery(r.db.builder, subjectIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	alumni := make(map[string][]string)
	for rows.Next() {
		var subjectID, userID string
		if err = rows.Scan(&subjectID, &userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		alumni[subjectID] = append(alumni[subjectID], userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return alumni, nil
}

func (r *sqlSubjectRepository) insertAlumni(ctx context.Context, tx *sql.Tx, subjectID string, alumni []string) error {
	if len(alumni) == 0 {
		return nil
	}

	query, args, err := buildInsertAlumniQuery(r.db.builder, subjectID, alumni)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
