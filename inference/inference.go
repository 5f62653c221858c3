// Package inference calls the image classification model service.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Prediction is raw model output. Label and Severity are untrusted text;
// callers must reconcile them against the known enums before persisting.
type Prediction struct {
	Label       string `json:"label"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type Engine struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewEngine(baseURL, apiKey string) *Engine {
	return &Engine{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Classify sends the image URL to the model service. Transport and HTTP
// failures are errors; a malformed body yields an empty prediction instead,
// since model output is advisory.
func (e *Engine) Classify(ctx context.Context, imageURL string) (*Prediction, error) {
	payload, err := json.Marshal(map[string]string{"imageUrl": imageURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/classify", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned %d", resp.StatusCode)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return &Prediction{}, nil
	}

	return &pred, nil
}
