package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerification(t *testing.T) {
	source := "https://example.com/post"

	v, err := NewVerification("texto", ContentText, &source)

	require.NoError(t, err)
	parsed, err := uuid.Parse(v.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, StatusPending, v.Status)
	assert.Nil(t, v.AnalysisResult)
	assert.Nil(t, v.ClassificationResult)
	assert.Equal(t, v.CreatedAt, v.UpdatedAt)
	assert.Equal(t, &source, v.SourceURL)
}

func TestNewVerification_IDsAreOrdered(t *testing.T) {
	first, err := NewVerification("a", ContentText, nil)
	require.NoError(t, err)
	second, err := NewVerification("b", ContentText, nil)
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
}

func TestVerificationUpdate_Apply(t *testing.T) {
	v, err := NewVerification("texto", ContentText, nil)
	require.NoError(t, err)
	later := v.UpdatedAt.Add(time.Minute)

	analysis := &Analysis{ID: "a", Type: ContentText}
	classification := &Classification{Label: "Suspeito", Confidence: 0.8}
	Completed(analysis, classification).Apply(v, later)

	assert.Equal(t, StatusCompleted, v.Status)
	assert.Same(t, analysis, v.AnalysisResult)
	assert.Same(t, classification, v.ClassificationResult)
	assert.Equal(t, later, v.UpdatedAt)

	Failed().Apply(v, later.Add(time.Minute))

	assert.Equal(t, StatusFailed, v.Status)
	assert.Same(t, analysis, v.AnalysisResult, "absent fields are left untouched")
	assert.Equal(t, later.Add(time.Minute), v.UpdatedAt)
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestContentType(t *testing.T) {
	tests := []struct {
		kind   ContentType
		valid  bool
		binary bool
	}{
		{ContentText, true, false},
		{ContentImage, true, true},
		{ContentVideo, true, true},
		{ContentType("audio"), false, false},
		{ContentType(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.Valid())
			assert.Equal(t, tt.binary, tt.kind.Binary())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	wrapped := fmt.Errorf("validate upload: %w", ErrInvalidFileFormat)

	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.ErrorIs(t, wrapped, ErrInvalidFileFormat)
	assert.NotErrorIs(t, wrapped, ErrInvalidContentType)
	assert.ErrorIs(t, ErrInvalidContentType, ErrValidation)
	assert.False(t, errors.Is(ErrDecode, ErrValidation))
}
