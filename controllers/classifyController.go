package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/services"
)

// ClassificationService suggests a category and severity for an image.
type ClassificationService interface {
	ClassifyImage(ctx context.Context, imageURL string) (*services.ClassificationResult, error)
}

type ClassifyController struct {
	service ClassificationService
}

func NewClassifyController(service ClassificationService) *ClassifyController {
	return &ClassifyController{service: service}
}

// ClassifyImage suggests a category and severity for an uploaded image. The
// caller passes the suggestion back in the submit payload if they accept it.
func (cc *ClassifyController) ClassifyImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := cc.service.ClassifyImage(ctx, input.ImageURL)
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
