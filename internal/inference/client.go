package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
	"github.com/andriskumpel/combate-desinformacao/internal/metrics"
)

const (
	ModelText  = "text"
	ModelImage = "image"
)

// Config holds model server configuration.
type Config struct {
	TextURL        string
	ImageURL       string
	APIToken       string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client calls hosted text and image classification models over HTTP.
type Client struct {
	httpClient     *http.Client
	textURL        string
	imageURL       string
	apiToken       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	breakers       map[string]*gobreaker.CircuitBreaker
	logger         *slog.Logger
}

// New creates a new inference client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	logger = logger.With("component", "inference")

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		textURL:        cfg.TextURL,
		imageURL:       cfg.ImageURL,
		apiToken:       cfg.APIToken,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger,
	}
	c.breakers = map[string]*gobreaker.CircuitBreaker{
		ModelText:  c.newBreaker(ModelText),
		ModelImage: c.newBreaker(ModelImage),
	}
	return c
}

func (c *Client) newBreaker(model string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "inference-" + model,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

// Sentiment scores text with the text classification model.
func (c *Client) Sentiment(ctx context.Context, text string) ([]domain.Score, error) {
	body, err := json.Marshal(textRequest{
		Inputs:  text,
		Options: options{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return c.call(ctx, ModelText, c.textURL, "application/json", body)
}

// ClassifyImage labels an encoded image with the image classification model.
func (c *Client) ClassifyImage(ctx context.Context, image []byte) ([]domain.Score, error) {
	return c.call(ctx, ModelImage, c.imageURL, "application/octet-stream", image)
}

func (c *Client) call(ctx context.Context, model, url, contentType string, body []byte) ([]domain.Score, error) {
	start := time.Now()
	defer func() {
		metrics.InferenceLatency.WithLabelValues(model).Observe(time.Since(start).Seconds())
	}()

	out, err := c.breakers[model].Execute(func() (interface{}, error) {
		return c.withRetry(ctx, url, contentType, body)
	})
	if err != nil {
		metrics.InferenceRequests.WithLabelValues(model, "error").Inc()
		return nil, fmt.Errorf("%w: %s model: %w", domain.ErrInference, model, err)
	}

	metrics.InferenceRequests.WithLabelValues(model, "ok").Inc()
	return out.([]domain.Score), nil
}

func (c *Client) withRetry(ctx context.Context, url, contentType string, body []byte) ([]domain.Score, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	bo.MaxInterval = c.maxBackoff
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxAttempts-1)), ctx)

	var scores []domain.Score
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		var err error
		scores, err = c.doRequest(ctx, url, contentType, body)
		return err
	}, policy, func(err error, wait time.Duration) {
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", wait,
			"error", err,
		)
	})
	if err != nil {
		if attempt > 1 {
			return nil, fmt.Errorf("after %d attempts: %w", attempt, err)
		}
		return nil, err
	}
	return scores, nil
}

func (c *Client) doRequest(ctx context.Context, url, contentType string, body []byte) ([]domain.Score, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "FactChecker/1.0")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, backoff.Permanent(err)
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("unexpected status: %d%s", resp.StatusCode, describeError(payload))
		// Client errors will not succeed on retry; 429 and 5xx might.
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	scores, err := decodeScores(payload)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return scores, nil
}

func describeError(payload []byte) string {
	var e errorResponse
	if err := json.Unmarshal(payload, &e); err != nil || e.Error == "" {
		return ""
	}
	return ": " + e.Error
}
