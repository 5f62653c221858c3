package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chinmayjoshi03/CivicConnect/geocode"
	"github.com/chinmayjoshi03/CivicConnect/httpx"
)

// Geocoder resolves addresses and coordinates.
type Geocoder interface {
	Forward(ctx context.Context, address string) (*geocode.Result, error)
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

type GeocodeController struct {
	geo Geocoder
}

func NewGeocodeController(geo Geocoder) *GeocodeController {
	return &GeocodeController{geo: geo}
}

// ResolveAddress turns a free-form address into coordinates
func (gc *GeocodeController) ResolveAddress(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := gc.geo.Forward(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			httpx.Respond(c, httpx.NotFound("No location found for this address"))
			return
		}
		httpx.Respond(c, httpx.Upstream(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResolveCoordinates turns lat/lng into a display address
func (gc *GeocodeController) ResolveCoordinates(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid lat and lng are required"})
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coordinates are out of range"})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	address, err := gc.geo.Reverse(ctx, lat, lng)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			httpx.Respond(c, httpx.NotFound("No address found for these coordinates"))
			return
		}
		httpx.Respond(c, httpx.Upstream(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}
