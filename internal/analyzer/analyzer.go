package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
	"github.com/andriskumpel/combate-desinformacao/internal/media"
)

// DefaultLanguage is reported for every text until language detection exists.
const DefaultLanguage = "pt"

type Analyzer struct {
	text    TextModel
	image   ImageModel
	video   VideoProber
	tempDir string
	logger  *slog.Logger
}

// New creates an analyzer. tempDir may be empty to use the OS default.
func New(text TextModel, image ImageModel, video VideoProber, tempDir string, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		text:    text,
		image:   image,
		video:   video,
		tempDir: tempDir,
		logger:  logger.With("component", "analyzer"),
	}
}

// Analyze dispatches content to the analysis matching kind. Each call gets a
// fresh correlation id.
func (a *Analyzer) Analyze(ctx context.Context, content []byte, kind domain.ContentType) (*domain.Analysis, error) {
	id := uuid.NewString()

	switch kind {
	case domain.ContentText:
		return a.analyzeText(ctx, id, string(content))
	case domain.ContentImage:
		return a.analyzeImage(ctx, id, content)
	case domain.ContentVideo:
		return a.analyzeVideo(ctx, id, content)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, kind)
	}
}

func (a *Analyzer) analyzeText(ctx context.Context, id, text string) (*domain.Analysis, error) {
	sentiment, err := a.text.Sentiment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	a.logger.Debug("analyzed text", "analysis_id", id, "scores", len(sentiment))

	// TODO: entity recognition, topic extraction and language detection.
	return &domain.Analysis{
		ID:   id,
		Type: domain.ContentText,
		Text: &domain.TextAnalysis{
			Content:   text,
			Sentiment: sentiment,
			Entities:  []string{},
			Topics:    []string{},
			Metadata: domain.TextMetadata{
				Length:   utf8.RuneCountInString(text),
				Language: DefaultLanguage,
			},
		},
	}, nil
}

func (a *Analyzer) analyzeImage(ctx context.Context, id string, data []byte) (*domain.Analysis, error) {
	meta, err := media.InspectImage(data)
	if err != nil {
		return nil, err
	}

	scores, err := a.image.ClassifyImage(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("classify image: %w", err)
	}

	a.logger.Debug("analyzed image",
		"analysis_id", id,
		"format", meta.Format,
		"width", meta.Size[0],
		"height", meta.Size[1],
	)

	return &domain.Analysis{
		ID:   id,
		Type: domain.ContentImage,
		Image: &domain.ImageAnalysis{
			Classification: scores,
			Metadata:       meta,
		},
	}, nil
}

func (a *Analyzer) analyzeVideo(ctx context.Context, id string, data []byte) (*domain.Analysis, error) {
	var meta domain.VideoMetadata

	err := media.WithTempFile(a.tempDir, "video-*.mp4", data, func(path string) error {
		var err error
		meta, err = a.video.Probe(ctx, path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("probe video: %w", err)
	}

	a.logger.Debug("analyzed video",
		"analysis_id", id,
		"fps", meta.FPS,
		"frames", meta.FrameCount,
	)

	// TODO: key frame extraction, object detection and scene change analysis.
	return &domain.Analysis{
		ID:   id,
		Type: domain.ContentVideo,
		Video: &domain.VideoAnalysis{
			Metadata: meta,
			Analysis: domain.VideoFindings{
				KeyFrames: []int{},
				Objects:   []string{},
				Scenes:    []string{},
			},
		},
	}, nil
}
