package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

// sqlUserRepository reads the "users" table.
type sqlUserRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLUserRepository constructs a [UserRepository] backed by db.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserByID returns [ErrUserNotFound] when no row matches id.
func (r *sqlUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user  models.User
		age   sql.NullInt64
		email sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &age, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.GetUserByID").Msg("error selecting user")
		return models.User{}, r.db.storageError(fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	user.Age = int(age.Int64)
	user.Email = email.String

	return user, nil
}
