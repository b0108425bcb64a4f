package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cadastro/internal/core/domain"
)

type recordingSpan struct {
	status string
	errors []error
	ended  bool
}

func (s *recordingSpan) End()                                       { s.ended = true }
func (s *recordingSpan) SetAttributes(attrs map[string]interface{}) {}
func (s *recordingSpan) SetStatus(code string, message string)      { s.status = code }
func (s *recordingSpan) RecordError(err error)                      { s.errors = append(s.errors, err) }

func TestFinish(t *testing.T) {
	t.Run("should leave the span ok when the entity is missing", func(t *testing.T) {
		span := &recordingSpan{}

		finish(span, domain.NewNotFoundError(domain.UserResource, 7))

		assert.Equal(t, "ok", span.status)
		assert.Empty(t, span.errors)
		assert.True(t, span.ended)
	})

	t.Run("should mark storage failures as errors", func(t *testing.T) {
		span := &recordingSpan{}

		finish(span, domain.NewStorageError("select", errors.New("disk I/O error")))

		assert.Equal(t, "error", span.status)
		assert.Len(t, span.errors, 1)
		assert.True(t, span.ended)
	})
}
