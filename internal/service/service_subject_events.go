package service

import (
	"context"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

// SubjectEventsService publishes one event per successful mutation. A failed
// publish is logged; the mutation has already happened and is still reported
// as a success.
type SubjectEventsService struct {
	inner     SubjectService
	publisher EventPublisher
}

func NewSubjectEventsService(publisher EventPublisher) SubjectServiceWrapper {
	return &SubjectEventsService{
		publisher: publisher,
	}
}

func (e *SubjectEventsService) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	created, err := e.inner.CreateSubject(ctx, subject)
	if err != nil {
		return models.Subject{}, err
	}

	e.publish(ctx, models.NewSubjectEvent(models.SubjectCreated, created.ID, &created))
	return created, nil
}

func (e *SubjectEventsService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return e.inner.ListSubjects(ctx)
}

func (e *SubjectEventsService) GetSubject(ctx context.Context, id string) (models.Subject, error) {
	return e.inner.GetSubject(ctx, id)
}

func (e *SubjectEventsService) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	updated, err := e.inner.UpdateSubject(ctx, id, update)
	if err != nil {
		return models.Subject{}, err
	}

	if !update.IsEmpty() {
		e.publish(ctx, models.NewSubjectEvent(models.SubjectUpdated, updated.ID, &updated))
	}
	return updated, nil
}

func (e *SubjectEventsService) DeleteSubject(ctx context.Context, id string) error {
	if err := e.inner.DeleteSubject(ctx, id); err != nil {
		return err
	}

	e.publish(ctx, models.NewSubjectEvent(models.SubjectDeleted, id, nil))
	return nil
}

func (e *SubjectEventsService) GetUsersBySubjectID(ctx context.Context, id string) ([]models.User, error) {
	return e.inner.GetUsersBySubjectID(ctx, id)
}

func (e *SubjectEventsService) Wrap(wrapped SubjectService) SubjectService {
	e.inner = wrapped
	return e
}

func (e *SubjectEventsService) publish(ctx context.Context, event models.SubjectEvent) {
	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SubjectEventsService.publish").
			Str("event", string(event.Type)).
			Str("subject_id", event.SubjectID).
			Msg("event was not published")
	}
}
