package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/models"
)

// maxConcurrentUserLookups bounds the fan-out of GetUsersBySubjectID.
const maxConcurrentUserLookups = 8

type subjectService struct {
	subjects store.SubjectRepository
	users    store.UserRepository
	recorder ResolutionRecorder

	logger *logger.Logger
}

// NewSubjectService returns the core SubjectService backed by the
// repositories. recorder may be nil.
func NewSubjectService(subjects store.SubjectRepository, users store.UserRepository, recorder ResolutionRecorder, logger *logger.Logger) SubjectService {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &subjectService{
		subjects: subjects,
		users:    users,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	return s.subjects.CreateSubject(ctx, subject.Normalize())
}

func (s *subjectService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjects.ListSubjects(ctx)
}

func (s *subjectService) GetSubject(ctx context.Context, id string) (models.Subject, error) {
	return s.subjects.GetSubjectByID(ctx, id)
}

func (s *subjectService) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	return s.subjects.UpdateSubject(ctx, id, update)
}

func (s *subjectService) DeleteSubject(ctx context.Context, id string) error {
	return s.subjects.DeleteSubject(ctx, id)
}

// GetUsersBySubjectID looks up every alumni entry concurrently. Each result
// lands in the slot of its alumni index, so the output keeps alumni order no
// matter which lookup finishes first. Missing users are skipped; any other
// lookup error fails the call.
func (s *subjectService) GetUsersBySubjectID(ctx context.Context, id string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := s.subjects.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	found := make([]*models.User, len(subject.Alumni))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUserLookups)
	for i, userID := range subject.Alumni {
		g.Go(func() error {
			user, err := s.users.GetUserByID(gctx, userID)
			if errors.Is(err, store.ErrUserNotFound) {
				log.Warn().Str("func", "*subjectService.GetUsersBySubjectID").
					Str("subject_id", id).Str("user_id", userID).
					Msg("alumni user not found, skipping")
				return nil
			}
			if err != nil {
				return fmt.Errorf("error resolving user %s: %w", userID, err)
			}

			found[i] = &user
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		log.Err(err).Str("func", "*subjectService.GetUsersBySubjectID").Str("subject_id", id).Msg("error resolving alumni")
		return nil, err
	}

	users := make([]models.User, 0, len(found))
	for _, u := range found {
		if u != nil {
			users = append(users, *u)
		}
	}
	s.recorder.UsersResolved(len(users))

	return users, nil
}

type nopRecorder struct{}

func (nopRecorder) UsersResolved(int) {}
