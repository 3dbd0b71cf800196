package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type VerificationStore interface {
	Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error)
	Get(ctx context.Context, id string) (*domain.Verification, error)
	Update(ctx context.Context, id string, u domain.VerificationUpdate) (*domain.Verification, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Verification, error)
	ListPending(ctx context.Context, before time.Time, limit int) ([]*domain.Verification, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Analyzer interface {
	Analyze(ctx context.Context, content []byte, kind domain.ContentType) (*domain.Analysis, error)
}

type Classifier interface {
	Classify(analysis *domain.Analysis) (*domain.Classification, error)
}

type StatusCache interface {
	Get(ctx context.Context, id string) (*domain.Verification, error)
	Set(ctx context.Context, v *domain.Verification) error
	Delete(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, v *domain.Verification) error
	Close() error
}
