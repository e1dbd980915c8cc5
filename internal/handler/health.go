package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

// Health handles GET /health requests
//
//	@Summary	Liveness probe
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{OK: true})
}
