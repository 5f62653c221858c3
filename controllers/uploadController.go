package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/storage"
)

type UploadController struct {
	store storage.ImageStore
}

func NewUploadController(store storage.ImageStore) *UploadController {
	return &UploadController{store: store}
}

// UploadImage stores a report image and returns its public URL. The blob is
// written before any report references it; an orphaned blob is accepted if
// the caller never submits.
func (uc *UploadController) UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httpx.Respond(c, httpx.Internal(err))
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("reports/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))

	ctx, cancel := requestContext()
	defer cancel()

	url, err := uc.store.Upload(ctx, key, f, contentType)
	if err != nil {
		httpx.Respond(c, httpx.Upstream(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
