package inference

import (
	"encoding/json"
	"fmt"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// textRequest is the payload accepted by text-classification model servers.
type textRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters textParameters `json:"parameters"`
	Options    options        `json:"options"`
}

type textParameters struct {
	// TopK nil asks the server for every label's score.
	TopK *int `json:"top_k"`
}

type options struct {
	WaitForModel bool `json:"wait_for_model"`
}

type errorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// decodeScores accepts both the flat form [{label, score}] and the batched
// form [[{label, score}]] returned for a single input.
func decodeScores(body []byte) ([]domain.Score, error) {
	var flat []domain.Score
	if err := json.Unmarshal(body, &flat); err == nil {
		return flat, nil
	}

	var batched [][]domain.Score
	if err := json.Unmarshal(body, &batched); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if len(batched) == 0 {
		return []domain.Score{}, nil
	}
	return batched[0], nil
}
