package analyzer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type TextModel interface {
	Sentiment(ctx context.Context, text string) ([]domain.Score, error)
}

type ImageModel interface {
	ClassifyImage(ctx context.Context, image []byte) ([]domain.Score, error)
}

type VideoProber interface {
	Probe(ctx context.Context, path string) (domain.VideoMetadata, error)
}
