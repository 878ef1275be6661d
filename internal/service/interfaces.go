package service

import (
	"context"

	"github.com/MKhiriev/go-subjects/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SubjectService is the use-case boundary of the subject resource.
type SubjectService interface {
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	GetSubject(ctx context.Context, id string) (models.Subject, error)
	UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	// GetUsersBySubjectID resolves the alumni of a subject to users, in
	// alumni order. Users that no longer exist are left out.
	GetUsersBySubjectID(ctx context.Context, id string) ([]models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SubjectCache stores subjects by ID. A miss is reported with ok == false
// and a nil error; a recently deleted subject is reported with
// store.ErrSubjectNotFound.
type SubjectCache interface {
	Get(ctx context.Context, id string) (subject models.Subject, ok bool, err error)
	// Fill stores subject only when the cache holds nothing for its ID.
	Fill(ctx context.Context, subject models.Subject) error
	Set(ctx context.Context, subject models.Subject) error
	// Delete marks the ID as deleted so later fills are refused.
	Delete(ctx context.Context, id string) error
}

// EventPublisher delivers subject lifecycle events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event models.SubjectEvent) error
}

// ResolutionRecorder counts users returned by GetUsersBySubjectID.
type ResolutionRecorder interface {
	UsersResolved(count int)
}
