package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/utils"
)

// backend is the connection handle shared by the repositories of one
// storage engine.
type backend interface {
	PingContext(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Storages groups the repositories of one backend together with the
// connection they share.
type Storages struct {
	SubjectRepository SubjectRepository
	UserRepository    UserRepository

	backend backend
}

// NewStorages connects to the backend named by the scheme of cfg.DB.DSN and
// builds its repositories. SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		m, err := NewConnectMongo(ctx, dsn, cfg.DB.Name, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			SubjectRepository: NewMongoSubjectRepository(m, log),
			UserRepository:    NewMongoUserRepository(m, log),
			backend:           m,
		}, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(dsn))
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		SubjectRepository: NewSQLSubjectRepository(db, utils.NewUUIDGenerator(), log),
		UserRepository:    NewSQLUserRepository(db, log),
		backend:           db,
	}, nil
}

// Ping reports whether the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.backend.PingContext(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	return s.backend.Disconnect(ctx)
}

// schemeOf returns the DSN scheme without credentials, for error messages.
func schemeOf(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return ""
}
