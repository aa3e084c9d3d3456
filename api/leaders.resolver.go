package api

import (
	"context"
	"fmt"

	"intermarket/internal/domain"
	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type identifyLeadersRequest struct {
	Symbols    []string `json:"symbols"`
	WindowDays int      `json:"windowDays"`
}

type identifyLeadersResponse struct {
	Leaders []domain.LeaderEntry `json:"leaders"`
}

func (m ApiHandler) identifyLeaders(c *gin.Context) {
	var requestBody identifyLeadersRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "identifyLeaders")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	matrix, err := m.IntermarketService.CalculateCorrelations(ctx, requestBody.Symbols, requestBody.WindowDays)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, identifyLeadersResponse{
		Leaders: m.IntermarketService.IdentifyLeaders(matrix),
	})
}
