package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/models"
)

// SubjectCacheService serves GetSubject from a cache and keeps cached
// entries in step with updates and deletions. Cache failures are logged and
// never fail the request.
type SubjectCacheService struct {
	inner SubjectService
	cache SubjectCache
}

func NewSubjectCacheService(cache SubjectCache) SubjectServiceWrapper {
	return &SubjectCacheService{
		cache: cache,
	}
}

func (c *SubjectCacheService) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	return c.inner.CreateSubject(ctx, subject)
}

func (c *SubjectCacheService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return c.inner.ListSubjects(ctx)
}

func (c *SubjectCacheService) GetSubject(ctx context.Context, id string) (models.Subject, error) {
	log := logger.FromContext(ctx)

	cached, ok, err := c.cache.Get(ctx, id)
	if errors.Is(err, store.ErrSubjectNotFound) {
		return models.Subject{}, err
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "*SubjectCacheService.GetSubject").Str("subject_id", id).Msg("cache read failed")
	}
	if ok {
		return cached, nil
	}

	subject, err := c.inner.GetSubject(ctx, id)
	if err != nil {
		return models.Subject{}, err
	}

	// a concurrent update or delete may have written the entry since the
	// miss; that entry wins over this read
	if err = c.cache.Fill(ctx, subject); err != nil {
		log.Warn().Err(err).Str("func", "*SubjectCacheService.GetSubject").Str("subject_id", id).Msg("cache fill failed")
	}
	return subject, nil
}

func (c *SubjectCacheService) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, error) {
	updated, err := c.inner.UpdateSubject(ctx, id, update)
	if err != nil {
		return models.Subject{}, err
	}

	c.set(ctx, updated)
	return updated, nil
}

func (c *SubjectCacheService) DeleteSubject(ctx context.Context, id string) error {
	if err := c.inner.DeleteSubject(ctx, id); err != nil {
		return err
	}

	if err := c.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*SubjectCacheService.DeleteSubject").Str("subject_id", id).Msg("cache tombstone write failed")
	}
	return nil
}

func (c *SubjectCacheService) GetUsersBySubjectID(ctx context.Context, id string) ([]models.User, error) {
	return c.inner.GetUsersBySubjectID(ctx, id)
}

func (c *SubjectCacheService) Wrap(wrapped SubjectService) SubjectService {
	c.inner = wrapped
	return c
}

func (c *SubjectCacheService) set(ctx context.Context, subject models.Subject) {
	if err := c.cache.Set(ctx, subject); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*SubjectCacheService.set").Str("subject_id", subject.ID).Msg("cache write failed")
	}
}
