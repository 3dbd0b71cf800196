package classifier

import (
	"fmt"

	"github.com/andriskumpel/combate-desinformacao/internal/config"
	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// Fixed placeholder confidences per content type. They are not derived from
// the analysis payload.
const (
	TextConfidence  = 0.8
	ImageConfidence = 0.7
	VideoConfidence = 0.6

	// SuspiciousFloor is the lower bound of the suspicious band on the text path.
	SuspiciousFloor = 0.5
)

const (
	explanationVerified   = "O conteúdo foi verificado e considerado confiável com base em fontes oficiais."
	explanationSuspicious = "O conteúdo apresenta elementos que requerem verificação adicional."
	explanationFake       = "O conteúdo apresenta indícios de desinformação."

	explanationImage = "Image analysis pending implementation"
	explanationVideo = "Video analysis pending implementation"
)

var referenceSources = []string{
	"https://www.gov.br",
	"https://www.who.int",
	"https://www.un.org",
}

type Classifier struct {
	threshold float64
	labels    config.Labels
}

func New(cfg config.ClassifierConfig) *Classifier {
	return &Classifier{
		threshold: cfg.ConfidenceThreshold,
		labels:    cfg.Labels,
	}
}

// Classify derives a verdict from an analysis. Only the text path applies the
// confidence threshold; image and video always report the suspicious label.
func (c *Classifier) Classify(analysis *domain.Analysis) (*domain.Classification, error) {
	if analysis == nil {
		return nil, fmt.Errorf("%w: nil analysis", domain.ErrUnsupportedContentType)
	}

	switch analysis.Type {
	case domain.ContentText:
		return c.classifyText(analysis), nil
	case domain.ContentImage:
		return &domain.Classification{
			Label:       c.labels.Suspicious,
			Confidence:  ImageConfidence,
			Explanation: explanationImage,
			Sources:     []string{},
		}, nil
	case domain.ContentVideo:
		return &domain.Classification{
			Label:       c.labels.Suspicious,
			Confidence:  VideoConfidence,
			Explanation: explanationVideo,
			Sources:     []string{},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, analysis.Type)
	}
}

func (c *Classifier) classifyText(_ *domain.Analysis) *domain.Classification {
	confidence := TextConfidence
	label := c.label(confidence)

	return &domain.Classification{
		Label:       label,
		Confidence:  confidence,
		Explanation: c.explain(label),
		Sources:     append([]string(nil), referenceSources...),
	}
}

func (c *Classifier) label(confidence float64) string {
	switch {
	case confidence >= c.threshold:
		return c.labels.Verified
	case confidence >= SuspiciousFloor:
		return c.labels.Suspicious
	default:
		return c.labels.Fake
	}
}

func (c *Classifier) explain(label string) string {
	switch label {
	case c.labels.Verified:
		return explanationVerified
	case c.labels.Suspicious:
		return explanationSuspicious
	default:
		return explanationFake
	}
}
