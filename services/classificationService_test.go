package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmayjoshi03/CivicConnect/inference"
	"github.com/chinmayjoshi03/CivicConnect/logger"
	"github.com/chinmayjoshi03/CivicConnect/models"
)

type fakeEngine struct {
	classify func(ctx context.Context, imageURL string) (*inference.Prediction, error)
}

func (f *fakeEngine) Classify(ctx context.Context, imageURL string) (*inference.Prediction, error) {
	return f.classify(ctx, imageURL)
}

func newClassificationService(engine *fakeEngine) *ClassificationService {
	return NewClassificationService(engine, logger.NewLogger("test"))
}

func TestClassifyImageReconcilesModelOutput(t *testing.T) {
	cases := []struct {
		name         string
		pred         inference.Prediction
		wantCategory models.ReportCategory
		wantSeverity models.Severity
	}{
		{
			"exact enum label",
			inference.Prediction{Label: "Roads & Infrastructure", Severity: "High"},
			models.RoadsInfra, models.High,
		},
		{
			"hinted label",
			inference.Prediction{Label: "pothole detection", Severity: "Low"},
			models.RoadsInfra, models.Low,
		},
		{
			"unrecognized label",
			inference.Prediction{Label: "xyz", Severity: "urgent"},
			models.GeneralIssues, models.Medium,
		},
		{
			"empty label falls back to description",
			inference.Prediction{Label: "", Description: "garbage piling up at the corner", Severity: "Medium"},
			models.WasteSanitation, models.Medium,
		},
		{
			"empty everything",
			inference.Prediction{},
			models.GeneralIssues, models.Medium,
		},
		{
			"severity is case sensitive",
			inference.Prediction{Label: "water logging", Severity: "high"},
			models.WaterSupply, models.Medium,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newClassificationService(&fakeEngine{
				classify: func(_ context.Context, _ string) (*inference.Prediction, error) {
					p := tc.pred
					return &p, nil
				},
			})

			res, err := svc.ClassifyImage(context.Background(), "https://blobs.example.com/issue.jpg")
			require.NoError(t, err)
			assert.Equal(t, tc.wantCategory, res.Category)
			assert.Equal(t, tc.wantSeverity, res.Severity)
		})
	}
}

func TestClassifyImageRejectsBlankURL(t *testing.T) {
	svc := newClassificationService(&fakeEngine{})

	_, err := svc.ClassifyImage(context.Background(), "   ")
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestClassifyImageUpstreamFailure(t *testing.T) {
	svc := newClassificationService(&fakeEngine{
		classify: func(_ context.Context, _ string) (*inference.Prediction, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	})

	_, err := svc.ClassifyImage(context.Background(), "https://blobs.example.com/issue.jpg")
	apiErr := requireAPIError(t, err, http.StatusBadGateway)
	assert.Equal(t, "service unavailable", apiErr.Message)
}
