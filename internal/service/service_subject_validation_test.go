package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-subjects/internal/mock"
	"github.com/MKhiriev/go-subjects/internal/validators"
	"github.com/MKhiriev/go-subjects/models"
)

func newTestValidationSvc(t *testing.T) (SubjectService, *mock.MockSubjectService) {
	t.Helper()

	inner := mock.NewMockSubjectService(gomock.NewController(t))
	return NewSubjectValidationService(validators.NewSubjectValidator()).Wrap(inner), inner
}

func TestValidation_CreateSubject(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		subject models.Subject
		wantErr bool
	}{
		{name: "missing name", subject: models.Subject{Teacher: "Ms. K"}, wantErr: true},
		{name: "empty teacher", subject: models.Subject{Name: "Math", Teacher: ""}, wantErr: true},
		{name: "empty alumni id", subject: models.Subject{Name: "Math", Teacher: "Ms. K", Alumni: []string{""}}, wantErr: true},
		{name: "valid", subject: models.Subject{Name: "Math", Teacher: "Ms. K", Alumni: []string{"u1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestValidationSvc(t)

			if tt.wantErr {
				_, err := svc.CreateSubject(ctx, tt.subject)
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}

			inner.EXPECT().CreateSubject(ctx, tt.subject).Return(models.Subject{ID: "s-1"}, nil)
			created, err := svc.CreateSubject(ctx, tt.subject)
			require.NoError(t, err)
			assert.Equal(t, "s-1", created.ID)
		})
	}
}

func TestValidation_CreateSubject_KeepsValuesAndDefaultsAlumni(t *testing.T) {
	ctx := context.Background()
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().
		CreateSubject(ctx, models.Subject{Name: "  Math ", Teacher: "Ms. K\n", Alumni: []string{}}).
		Return(models.Subject{ID: "s-1"}, nil)

	_, err := svc.CreateSubject(ctx, models.Subject{Name: "  Math ", Teacher: "Ms. K\n"})
	require.NoError(t, err)
}

func TestValidation_CreateSubject_MissingNameIsRequiredField(t *testing.T) {
	svc, _ := newTestValidationSvc(t)

	_, err := svc.CreateSubject(context.Background(), models.Subject{Teacher: "Ms. K"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, models.ErrRequiredField)
}

func TestValidation_UpdateSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name rejected", func(t *testing.T) {
		svc, _ := newTestValidationSvc(t)
		empty := ""

		_, err := svc.UpdateSubject(ctx, "s-1", models.SubjectUpdate{Name: &empty})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("teacher only passes", func(t *testing.T) {
		svc, inner := newTestValidationSvc(t)
		teacher := " Mr. B "

		inner.EXPECT().UpdateSubject(ctx, "s-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, u models.SubjectUpdate) (models.Subject, error) {
				require.NotNil(t, u.Teacher)
				assert.Equal(t, " Mr. B ", *u.Teacher)
				assert.Nil(t, u.Name)
				return models.Subject{ID: "s-1", Teacher: *u.Teacher}, nil
			})

		got, err := svc.UpdateSubject(ctx, "s-1", models.SubjectUpdate{Teacher: &teacher})
		require.NoError(t, err)
		assert.Equal(t, " Mr. B ", got.Teacher)
	})

	t.Run("empty update goes through", func(t *testing.T) {
		svc, inner := newTestValidationSvc(t)

		inner.EXPECT().UpdateSubject(ctx, "s-1", models.SubjectUpdate{}).Return(models.Subject{ID: "s-1"}, nil)

		_, err := svc.UpdateSubject(ctx, "s-1", models.SubjectUpdate{})
		require.NoError(t, err)
	})
}

func TestValidation_PassThrough(t *testing.T) {
	ctx := context.Background()
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().ListSubjects(ctx).Return(nil, nil)
	inner.EXPECT().GetSubject(ctx, "s-1").Return(models.Subject{}, nil)
	inner.EXPECT().DeleteSubject(ctx, "s-1").Return(nil)
	inner.EXPECT().GetUsersBySubjectID(ctx, "s-1").Return(nil, nil)

	_, _ = svc.ListSubjects(ctx)
	_, _ = svc.GetSubject(ctx, "s-1")
	_ = svc.DeleteSubject(ctx, "s-1")
	_, _ = svc.GetUsersBySubjectID(ctx, "s-1")
}
