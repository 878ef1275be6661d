package events

import (
	"context"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/models"
)

// LogPublisher writes events to the request logger at debug level. It
// stands in when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, event models.SubjectEvent) error {
	logger.FromContext(ctx).Debug().
		Str("event", string(event.Type)).
		Str("subject_id", event.SubjectID).
		Msg("subject event (no broker configured)")
	return nil
}

func (LogPublisher) Close() error { return nil }
