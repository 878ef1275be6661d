package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/mock"
	"github.com/MKhiriev/go-subjects/models"
)

func TestNewServices_RequiresVersion(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewServices(mock.NewMockSubjectRepository(ctrl), mock.NewMockUserRepository(ctrl), config.App{}, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_ValidationRunsBeforeEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubjectRepository(ctrl)

	// no expectations: an invalid create must not reach publisher, cache or store
	services, err := NewServices(repo, mock.NewMockUserRepository(ctrl), config.App{Version: "1.0.0"}, logger.Nop(),
		WithCache(mock.NewMockSubjectCache(ctrl)),
		WithPublisher(mock.NewMockEventPublisher(ctrl)),
	)
	require.NoError(t, err)

	_, err = services.SubjectService.CreateSubject(context.Background(), models.Subject{Teacher: "Ms. K"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewServices_FullChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mock.NewMockSubjectRepository(ctrl)
	cache := mock.NewMockSubjectCache(ctrl)
	publisher := mock.NewMockEventPublisher(ctrl)

	services, err := NewServices(repo, mock.NewMockUserRepository(ctrl), config.App{Version: "1.0.0"}, logger.Nop(),
		WithCache(cache),
		WithPublisher(publisher),
	)
	require.NoError(t, err)

	stored := models.Subject{ID: "s-1", Name: "Math", Teacher: "Ms. K", Alumni: []string{}}
	repo.EXPECT().CreateSubject(ctx, gomock.Any()).Return(stored, nil)
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := services.SubjectService.CreateSubject(ctx, models.Subject{Name: "Math", Teacher: "Ms. K"})
	require.NoError(t, err)
	assert.Equal(t, stored, created)

	cache.EXPECT().Get(ctx, "s-1").Return(stored, true, nil)

	got, err := services.SubjectService.GetSubject(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(ctx))
}
