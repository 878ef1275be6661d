package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-subjects/internal/validators"
	"github.com/MKhiriev/go-subjects/models"
)

// SubjectValidationService rejects malformed input with [ErrInvalidInput]
// before it reaches the wrapped service.
type SubjectValidationService struct {
	inner     SubjectService
	validator validators.Validator
}

func NewSubjectValidationService(validator validators.Validator) SubjectServiceWrapper {
	return &SubjectValidationService{
		validator: validator,
	}
}

func (v *SubjectValidationService) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	normalized, err := models.NewSubject(subject.Name, subject.Teacher, subject.Alumni)
	if err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err = v.validator.Validate(ctx, normalized); err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.CreateSubject(ctx, normalized)
}

func (v *SubjectValidationService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return v.inner.ListSubjects(ctx)
}

func (v *SubjectValidationService) GetSubject(ctx context.Context, id string) (models.Subject, error) {
	return v.inner.GetSubject(ctx, id)
}

func (v *SubjectValidationService) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	if !update.IsEmpty() {
		if err := v.validator.Validate(ctx, update, update.ProvidedFields()...); err != nil {
			return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return v.inner.UpdateSubject(ctx, id, update)
}

func (v *SubjectValidationService) DeleteSubject(ctx context.Context, id string) error {
	return v.inner.DeleteSubject(ctx, id)
}

func (v *SubjectValidationService) GetUsersBySubjectID(ctx context.Context, id string) ([]models.User, error) {
	return v.inner.GetUsersBySubjectID(ctx, id)
}

func (v *SubjectValidationService) Wrap(wrapped SubjectService) SubjectService {
	v.inner = wrapped
	return v
}
