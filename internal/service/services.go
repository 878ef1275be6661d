package service

import (
	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/internal/validators"
)

// SubjectServiceWrapper defines middleware composition for SubjectService.
// Implementations wrap an existing SubjectService to add behavior such as
// validating, caching or publishing events.
type SubjectServiceWrapper interface {
	Wrap(SubjectService) SubjectService // returns a decorated SubjectService applying additional behavior
}

type Services struct {
	SubjectService SubjectService
	AppInfoService AppInfoService
}

type options struct {
	cache     SubjectCache
	publisher EventPublisher
	recorder  ResolutionRecorder
}

// Option enables an optional decorator of the subject service.
type Option func(*options)

// WithCache adds the read-through cache decorator.
func WithCache(cache SubjectCache) Option {
	return func(o *options) { o.cache = cache }
}

// WithPublisher adds the event publishing decorator.
func WithPublisher(publisher EventPublisher) Option {
	return func(o *options) { o.publisher = publisher }
}

func WithRecorder(recorder ResolutionRecorder) Option {
	return func(o *options) { o.recorder = recorder }
}

// NewServices assembles the subject service chain. Decorators run outermost
// first: validation, events, cache, then the repositories.
func NewServices(subjects store.SubjectRepository, users store.UserRepository, cfg config.App, logger *logger.Logger, opts ...Option) (*Services, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	subjectService := NewSubjectService(subjects, users, o.recorder, logger)
	if o.cache != nil {
		subjectService = NewSubjectCacheService(o.cache).Wrap(subjectService)
	}
	if o.publisher != nil {
		subjectService = NewSubjectEventsService(o.publisher).Wrap(subjectService)
	}
	subjectService = NewSubjectValidationService(validators.NewSubjectValidator()).Wrap(subjectService)

	return &Services{
		SubjectService: subjectService,
		AppInfoService: appInfo,
	}, nil
}
