package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentText, ContentImage, ContentVideo:
		return true
	}
	return false
}

// Binary reports whether content of this type arrives as raw bytes.
func (c ContentType) Binary() bool {
	return c == ContentImage || c == ContentVideo
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether a record in this status can no longer change
// through the verification flow.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Verification struct {
	ID                   string          `json:"id"`
	Content              string          `json:"content"`
	ContentType          ContentType     `json:"content_type"`
	SourceURL            *string         `json:"source_url,omitempty"`
	Status               Status          `json:"status"`
	AnalysisResult       *Analysis       `json:"analysis_result"`
	ClassificationResult *Classification `json:"classification_result"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// NewVerification builds a pending record with a fresh time-ordered id.
func NewVerification(content string, contentType ContentType, sourceURL *string) (*Verification, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Verification{
		ID:          id.String(),
		Content:     content,
		ContentType: contentType,
		SourceURL:   sourceURL,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// VerificationUpdate carries the fields to change; nil fields are left untouched.
type VerificationUpdate struct {
	Status               *Status
	AnalysisResult       *Analysis
	ClassificationResult *Classification
}

// Apply mutates v with the present fields and refreshes UpdatedAt.
func (u VerificationUpdate) Apply(v *Verification, now time.Time) {
	if u.Status != nil {
		v.Status = *u.Status
	}
	if u.AnalysisResult != nil {
		v.AnalysisResult = u.AnalysisResult
	}
	if u.ClassificationResult != nil {
		v.ClassificationResult = u.ClassificationResult
	}
	v.UpdatedAt = now
}

// Completed returns the update moving a record to completed with both results.
func Completed(analysis *Analysis, classification *Classification) VerificationUpdate {
	status := StatusCompleted
	return VerificationUpdate{
		Status:               &status,
		AnalysisResult:       analysis,
		ClassificationResult: classification,
	}
}

func Failed() VerificationUpdate {
	status := StatusFailed
	return VerificationUpdate{Status: &status}
}
