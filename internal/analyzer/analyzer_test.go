package analyzer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/andriskumpel/combate-desinformacao/internal/analyzer/mocks"
	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type AnalyzerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	text  *mocks.MockTextModel
	image *mocks.MockImageModel
	video *mocks.MockVideoProber

	tempDir  string
	analyzer *Analyzer
}

func (s *AnalyzerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.text = mocks.NewMockTextModel(s.ctrl)
	s.image = mocks.NewMockImageModel(s.ctrl)
	s.video = mocks.NewMockVideoProber(s.ctrl)
	s.tempDir = s.T().TempDir()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.analyzer = New(s.text, s.image, s.video, s.tempDir, logger)
}

func (s *AnalyzerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnalyzerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerTestSuite))
}

func testJPEG(w, h int) []byte {
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil)
	return buf.Bytes()
}

func (s *AnalyzerTestSuite) TestAnalyze_Text() {
	ctx := context.Background()
	text := "A vacina contra COVID-19 é segura e eficaz."
	scores := []domain.Score{{Label: "positive", Score: 0.9}}

	s.text.EXPECT().Sentiment(ctx, text).Return(scores, nil)

	result, err := s.analyzer.Analyze(ctx, []byte(text), domain.ContentText)

	s.Require().NoError(err)
	s.Equal(domain.ContentText, result.Type)
	s.NotEmpty(result.ID)
	s.Require().NotNil(result.Text)
	s.Nil(result.Image)
	s.Nil(result.Video)
	s.Equal(text, result.Text.Content)
	s.Equal(scores, result.Text.Sentiment)
	s.NotNil(result.Text.Entities)
	s.Empty(result.Text.Entities)
	s.NotNil(result.Text.Topics)
	s.Empty(result.Text.Topics)
	s.Equal(43, result.Text.Metadata.Length)
	s.Equal("pt", result.Text.Metadata.Language)
}

func (s *AnalyzerTestSuite) TestAnalyze_FreshIDPerCall() {
	ctx := context.Background()
	s.text.EXPECT().Sentiment(ctx, "texto").Return([]domain.Score{}, nil).Times(2)

	first, err := s.analyzer.Analyze(ctx, []byte("texto"), domain.ContentText)
	s.Require().NoError(err)
	second, err := s.analyzer.Analyze(ctx, []byte("texto"), domain.ContentText)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *AnalyzerTestSuite) TestAnalyze_TextModelError() {
	ctx := context.Background()
	s.text.EXPECT().Sentiment(ctx, "texto").Return(nil, domain.ErrInference)

	result, err := s.analyzer.Analyze(ctx, []byte("texto"), domain.ContentText)

	s.Nil(result)
	s.True(errors.Is(err, domain.ErrInference))
}

func (s *AnalyzerTestSuite) TestAnalyze_Image() {
	ctx := context.Background()
	data := testJPEG(100, 100)
	scores := []domain.Score{{Label: "medical", Score: 0.8}}

	s.image.EXPECT().ClassifyImage(ctx, data).Return(scores, nil)

	result, err := s.analyzer.Analyze(ctx, data, domain.ContentImage)

	s.Require().NoError(err)
	s.Equal(domain.ContentImage, result.Type)
	s.Require().NotNil(result.Image)
	s.Equal(scores, result.Image.Classification)
	s.Equal("JPEG", result.Image.Metadata.Format)
	s.Equal([2]int{100, 100}, result.Image.Metadata.Size)
	s.Equal("RGB", result.Image.Metadata.Mode)
}

func (s *AnalyzerTestSuite) TestAnalyze_ImageDecodeError() {
	result, err := s.analyzer.Analyze(context.Background(), []byte("not an image"), domain.ContentImage)

	s.Nil(result)
	s.True(errors.Is(err, domain.ErrDecode))
}

func (s *AnalyzerTestSuite) TestAnalyze_Video() {
	ctx := context.Background()
	meta := domain.VideoMetadata{FPS: 30, FrameCount: 30, Width: 640, Height: 480}
	var probedPath string

	s.video.EXPECT().Probe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) (domain.VideoMetadata, error) {
			probedPath = path
			data, err := os.ReadFile(path)
			s.Require().NoError(err)
			s.Equal("fake video bytes", string(data))
			return meta, nil
		},
	)

	result, err := s.analyzer.Analyze(ctx, []byte("fake video bytes"), domain.ContentVideo)

	s.Require().NoError(err)
	s.Equal(domain.ContentVideo, result.Type)
	s.Require().NotNil(result.Video)
	s.Equal(meta, result.Video.Metadata)
	s.NotNil(result.Video.Analysis.KeyFrames)
	s.Empty(result.Video.Analysis.KeyFrames)
	s.Empty(result.Video.Analysis.Objects)
	s.Empty(result.Video.Analysis.Scenes)
	s.NoFileExists(probedPath)
}

func (s *AnalyzerTestSuite) TestAnalyze_VideoDecodeErrorRemovesTempFile() {
	ctx := context.Background()
	var probedPath string

	s.video.EXPECT().Probe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) (domain.VideoMetadata, error) {
			probedPath = path
			return domain.VideoMetadata{}, domain.ErrDecode
		},
	)

	result, err := s.analyzer.Analyze(ctx, []byte("garbage"), domain.ContentVideo)

	s.Nil(result)
	s.True(errors.Is(err, domain.ErrDecode))
	s.NotEmpty(probedPath)
	s.NoFileExists(probedPath)

	entries, err := os.ReadDir(s.tempDir)
	s.NoError(err)
	s.Empty(entries)
}

func (s *AnalyzerTestSuite) TestAnalyze_UnsupportedType() {
	result, err := s.analyzer.Analyze(context.Background(), []byte("test content"), domain.ContentType("invalid_type"))

	s.Nil(result)
	s.True(errors.Is(err, domain.ErrUnsupportedContentType))
}
