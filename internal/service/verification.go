package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/andriskumpel/combate-desinformacao/internal/config"
	"github.com/andriskumpel/combate-desinformacao/internal/domain"
	"github.com/andriskumpel/combate-desinformacao/internal/metrics"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type VerificationService struct {
	store      VerificationStore
	txManager  TransactionManager
	analyzer   Analyzer
	classifier Classifier
	cache      StatusCache
	publisher  Publisher
	logger     *slog.Logger
	sweeper    config.SweeperConfig
}

// NewVerificationService wires the verification pipeline. cache and publisher
// may be nil.
func NewVerificationService(
	store VerificationStore,
	txManager TransactionManager,
	analyzer Analyzer,
	classifier Classifier,
	cache StatusCache,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SweeperConfig,
) *VerificationService {
	return &VerificationService{
		store:      store,
		txManager:  txManager,
		analyzer:   analyzer,
		classifier: classifier,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("component", "verification"),
		sweeper:    cfg,
	}
}

// Verify runs a submission through analysis and classification and stores the
// verdict. Validation failures return before anything is persisted. Once the
// pending record exists, any failure moves it to failed.
func (s *VerificationService) Verify(ctx context.Context, sub domain.Submission) (*domain.Outcome, error) {
	startTime := time.Now()

	if sub.FromFile {
		if err := ValidateFile(sub.ContentType, sub.Filename); err != nil {
			return nil, err
		}
	}
	if !sub.ContentType.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, sub.ContentType)
	}

	payload, stored, err := prepareContent(sub)
	if err != nil {
		return nil, err
	}

	record, err := domain.NewVerification(stored, sub.ContentType, sub.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("new verification: %w", err)
	}
	if _, err := s.store.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create verification: %w", err)
	}

	logger := s.logger.With("verification_id", record.ID, "content_type", sub.ContentType)
	logger.Debug("verification created", "size", len(payload))

	completed, err := s.process(ctx, record.ID, payload, sub.ContentType)
	if err != nil {
		logger.Warn("verification failed", "error", err)
		s.markFailed(ctx, record.ID)
		metrics.Verifications.WithLabelValues(string(sub.ContentType), string(domain.StatusFailed)).Inc()
		return nil, err
	}

	s.publish(ctx, completed)

	duration := time.Since(startTime)
	metrics.Verifications.WithLabelValues(string(sub.ContentType), string(domain.StatusCompleted)).Inc()
	metrics.VerificationDuration.WithLabelValues(string(sub.ContentType)).Observe(duration.Seconds())
	metrics.Classifications.WithLabelValues(string(sub.ContentType), completed.ClassificationResult.Label).Inc()

	logger.Info("verification completed",
		"label", completed.ClassificationResult.Label,
		"confidence", completed.ClassificationResult.Confidence,
		"duration", duration,
	)

	classification := completed.ClassificationResult
	return &domain.Outcome{
		VerificationID: completed.ID,
		Status:         completed.Status,
		Confidence:     classification.Confidence,
		Classification: classification.Label,
		Explanation:    classification.Explanation,
		Sources:        classification.Sources,
	}, nil
}

func (s *VerificationService) process(ctx context.Context, id string, payload []byte, kind domain.ContentType) (*domain.Verification, error) {
	analysis, err := s.analyzer.Analyze(ctx, payload, kind)
	if err != nil {
		return nil, fmt.Errorf("analyze content: %w", err)
	}

	classification, err := s.classifier.Classify(analysis)
	if err != nil {
		return nil, fmt.Errorf("classify content: %w", err)
	}

	var completed *domain.Verification
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.store.Get(txCtx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}

		completed, err = s.store.Update(txCtx, id, domain.Completed(analysis, classification))
		if err != nil {
			return err
		}
		if completed == nil {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}

	return completed, nil
}

// markFailed is best effort and survives a cancelled request context.
func (s *VerificationService) markFailed(ctx context.Context, id string) {
	ctx = context.WithoutCancel(ctx)

	failed, err := s.store.Update(ctx, id, domain.Failed())
	if err != nil {
		s.logger.Error("failed to mark verification failed", "verification_id", id, "error", err)
		return
	}
	if failed != nil {
		s.publish(ctx, failed)
	}
}

func (s *VerificationService) publish(ctx context.Context, v *domain.Verification) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, v); err != nil {
		s.logger.Warn("failed to publish verification event", "verification_id", v.ID, "error", err)
	}
}

// Status returns the stored record. Terminal records are served from the
// cache when one is configured.
func (s *VerificationService) Status(ctx context.Context, id string) (*domain.Verification, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("status cache lookup failed", "verification_id", id, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	v, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get verification: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	if s.cache != nil && v.Status.Terminal() {
		if err := s.cache.Set(ctx, v); err != nil {
			s.logger.Warn("status cache update failed", "verification_id", id, "error", err)
		}
	}

	return v, nil
}

func (s *VerificationService) List(ctx context.Context, offset, limit int) ([]*domain.Verification, error) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	list, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	return list, nil
}

func (s *VerificationService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete verification: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.logger.Warn("status cache invalidation failed", "verification_id", id, "error", err)
		}
	}

	s.logger.Info("verification deleted", "verification_id", id)
	return nil
}

// SweepStale marks pending records older than the configured timeout as
// failed. Each record is re-read in its own transaction so a verification
// that completed in the meantime is left alone.
func (s *VerificationService) SweepStale(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()
	cutoff := startTime.UTC().Add(-s.sweeper.PendingTimeout)

	stale, err := s.store.ListPending(ctx, cutoff, s.sweeper.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list pending verifications: %w", err)
	}

	stats := &domain.SweepStats{Scanned: len(stale)}

	for _, v := range stale {
		var failed *domain.Verification
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			current, err := s.store.Get(txCtx, v.ID)
			if err != nil || current == nil || current.Status != domain.StatusPending {
				return err
			}
			failed, err = s.store.Update(txCtx, v.ID, domain.Failed())
			return err
		})
		if err != nil {
			stats.Errors++
			s.logger.Error("failed to sweep verification", "verification_id", v.ID, "error", err)
			continue
		}
		if failed == nil {
			continue
		}

		stats.Failed++
		metrics.SweptRecords.Inc()
		s.publish(ctx, failed)
	}

	stats.Duration = time.Since(startTime)

	if stats.Scanned > 0 {
		s.logger.Info("sweep completed",
			"scanned", stats.Scanned,
			"failed", stats.Failed,
			"errors", stats.Errors,
			"duration", stats.Duration,
		)
	}

	return stats, nil
}

// prepareContent returns the bytes to analyze and the string to store.
// Binary payloads are stored base64-encoded; inline binary content must
// already be base64.
func prepareContent(sub domain.Submission) ([]byte, string, error) {
	if !sub.ContentType.Binary() {
		return sub.Content, string(sub.Content), nil
	}
	if sub.FromFile {
		return sub.Content, base64.StdEncoding.EncodeToString(sub.Content), nil
	}

	payload, err := base64.StdEncoding.DecodeString(string(sub.Content))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s content is not valid base64: %w", domain.ErrDecode, sub.ContentType, err)
	}
	return payload, string(sub.Content), nil
}
