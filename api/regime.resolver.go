package api

import (
	"context"
	"fmt"

	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type analyzeMarketRegimeRequest struct {
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) analyzeMarketRegime(c *gin.Context) {
	var requestBody analyzeMarketRegimeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "analyzeMarketRegime")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	analysis, err := m.IntermarketService.AnalyzeMarketRegime(ctx, requestBody.Symbols)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, analysis)
}
