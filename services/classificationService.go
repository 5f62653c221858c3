package services

import (
	"context"
	"strings"

	"github.com/chinmayjoshi03/CivicConnect/classifier"
	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/inference"
	"github.com/chinmayjoshi03/CivicConnect/logger"
	"github.com/chinmayjoshi03/CivicConnect/models"
)

// InferenceEngine is the model-service collaborator.
type InferenceEngine interface {
	Classify(ctx context.Context, imageURL string) (*inference.Prediction, error)
}

// ClassificationResult is model output mapped onto the known enums.
type ClassificationResult struct {
	Description string                `json:"description"`
	Category    models.ReportCategory `json:"category"`
	Severity    models.Severity       `json:"severity"`
}

type ClassificationService struct {
	engine InferenceEngine
	log    *logger.Logger
}

func NewClassificationService(engine InferenceEngine, log *logger.Logger) *ClassificationService {
	return &ClassificationService{engine: engine, log: log}
}

// ClassifyImage asks the model service about an image and reconciles its
// free-text output against the category and severity enums. Model output
// never reaches the caller unreconciled; only a transport failure is an
// error.
func (s *ClassificationService) ClassifyImage(ctx context.Context, imageURL string) (*ClassificationResult, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, httpx.Validation("Image URL is required")
	}

	pred, err := s.engine.Classify(ctx, imageURL)
	if err != nil {
		s.log.WithError(err).Warn("inference call failed")
		return nil, httpx.Upstream(err)
	}

	category := classifier.ReconcileLabel(pred.Label)
	if strings.TrimSpace(pred.Label) == "" && strings.TrimSpace(pred.Description) != "" {
		category = classifier.CategorizeDescription(pred.Description)
	}

	return &ClassificationResult{
		Description: strings.TrimSpace(pred.Description),
		Category:    category,
		Severity:    classifier.NormalizeSeverity(strings.TrimSpace(pred.Severity)),
	}, nil
}
