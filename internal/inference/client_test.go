package inference

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(url string, attempts int) *Client {
	return New(Config{
		TextURL:        url,
		ImageURL:       url,
		APIToken:       "token",
		Timeout:        5 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, s.logger)
}

func (s *ClientTestSuite) TestSentiment_BatchedResponse() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("Bearer token", r.Header.Get("Authorization"))
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var req textRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("A vacina é segura", req.Inputs)
		s.True(req.Options.WaitForModel)

		_, _ = io.WriteString(w, `[[{"label":"LABEL_0","score":0.9},{"label":"LABEL_1","score":0.1}]]`)
	}))
	defer srv.Close()

	scores, err := s.newClient(srv.URL, 1).Sentiment(context.Background(), "A vacina é segura")

	s.Require().NoError(err)
	s.Equal([]domain.Score{{Label: "LABEL_0", Score: 0.9}, {Label: "LABEL_1", Score: 0.1}}, scores)
}

func (s *ClientTestSuite) TestClassifyImage_FlatResponse() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/octet-stream", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		s.Equal([]byte{0xff, 0xd8}, body)

		_, _ = io.WriteString(w, `[{"label":"tabby cat","score":0.8}]`)
	}))
	defer srv.Close()

	scores, err := s.newClient(srv.URL, 1).ClassifyImage(context.Background(), []byte{0xff, 0xd8})

	s.Require().NoError(err)
	s.Len(scores, 1)
	s.Equal("tabby cat", scores[0].Label)
}

func (s *ClientTestSuite) TestRetriesServerErrors() {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":"model is loading","estimated_time":20}`)
			return
		}
		_, _ = io.WriteString(w, `[{"label":"LABEL_0","score":1}]`)
	}))
	defer srv.Close()

	scores, err := s.newClient(srv.URL, 3).Sentiment(context.Background(), "texto")

	s.Require().NoError(err)
	s.Len(scores, 1)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestNoRetryByDefault() {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := s.newClient(srv.URL, 1).Sentiment(context.Background(), "texto")

	s.Error(err)
	s.True(errors.Is(err, domain.ErrInference))
	s.Equal(int32(1), calls.Load())
}

func (s *ClientTestSuite) TestClientErrorIsPermanent() {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"bad input"}`)
	}))
	defer srv.Close()

	_, err := s.newClient(srv.URL, 5).ClassifyImage(context.Background(), []byte("x"))

	s.Error(err)
	s.Contains(err.Error(), "bad input")
	s.Equal(int32(1), calls.Load())
}

func (s *ClientTestSuite) TestMalformedBody() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"unexpected":true}`)
	}))
	defer srv.Close()

	_, err := s.newClient(srv.URL, 1).Sentiment(context.Background(), "texto")

	s.Error(err)
	s.Contains(err.Error(), "decode scores")
}

func (s *ClientTestSuite) TestDecodeScores_EmptyBatch() {
	scores, err := decodeScores([]byte(`[[]]`))
	s.NoError(err)
	s.Empty(scores)
}
