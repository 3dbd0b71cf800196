package server

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type VerificationService interface {
	Verify(ctx context.Context, sub domain.Submission) (*domain.Outcome, error)
	Status(ctx context.Context, id string) (*domain.Verification, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Verification, error)
	Delete(ctx context.Context, id string) error
}
