package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"fare-compare-api/internal/models"
	"fare-compare-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FareHandler handles fare comparison requests
type FareHandler struct {
	service FareComparer
}

// FareComparer interface for dependency injection
type FareComparer interface {
	Compare(ctx context.Context, origin, destination string) (*models.ComparisonResult, error)
}

// NewFareHandler creates a new fare handler
func NewFareHandler(svc FareComparer) *FareHandler {
	return &FareHandler{service: svc}
}

// Compare handles POST /fare requests
//
//	@Summary	Compare ride fares
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.FareRequest	true	"origin and destination"
//	@Success	200		{object}	models.ComparisonResult
//	@Failure	400		{object}	errorResponse
//	@Router		/fare [post]
func (h *FareHandler) Compare(c *gin.Context) {
	var req models.FareRequest
	// An empty body is reported as a missing origin/destination below.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.service.Compare(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FareHandler) writeError(c *gin.Context, err error) {
	var de *service.DistanceUnavailableError
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &de):
		log.Info().Str("reason", string(de.Reason)).Msg(de.Message)
		c.JSON(http.StatusBadRequest, errorResponse{Error: de.Message})
	default:
		log.Error().Err(err).Msg("fare comparison failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
