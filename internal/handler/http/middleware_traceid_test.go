package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/mock"
	"github.com/MKhiriev/go-subjects/internal/service"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/internal/utils"
	"github.com/MKhiriev/go-subjects/models"
)

// bufferLogger returns a logger writing JSON lines to buf.
func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// logLines decodes every JSON line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "caller trace id is kept", incoming: "trace-from-gateway", wantSame: true},
		{name: "missing trace id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&service.Services{}, nil, 0, bufferLogger(&buf))

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				logger.FromRequest(r).Info().Str("subject_id", "s-1").Msg("loading subject")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/subjects/s-1", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}
			assert.Equal(t, traceID, ctxTraceID)

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, traceID, lines[0]["trace_id"])
			assert.Equal(t, "s-1", lines[0]["subject_id"])
		})
	}
}

func TestWithTraceID_GeneratedIDsDiffer(t *testing.T) {
	router := NewHandler(&service.Services{}, nil, 0, logger.Nop()).Init()

	first := serve(router, http.MethodGet, "/api/unknown", "")
	second := serve(router, http.MethodGet, "/api/unknown", "")

	assert.NotEmpty(t, first.Header().Get(traceIDHeader))
	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReachesServiceAndLogs(t *testing.T) {
	var buf bytes.Buffer
	subjects := mock.NewMockSubjectService(gomock.NewController(t))
	subjects.EXPECT().GetSubject(gomock.Any(), "s-404").
		DoAndReturn(func(ctx context.Context, _ string) (models.Subject, error) {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "trace-404", traceID)
			return models.Subject{}, store.ErrSubjectNotFound
		})

	router := NewHandler(&service.Services{SubjectService: subjects}, nil, time.Second, bufferLogger(&buf)).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/subjects/s-404", nil)
	req.Header.Set(traceIDHeader, "trace-404")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trace-404", rec.Header().Get(traceIDHeader))

	lines := logLines(t, &buf)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, "trace-404", line["trace_id"])
	}
}
