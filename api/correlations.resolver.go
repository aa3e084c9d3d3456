package api

import (
	"context"
	"fmt"

	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type calculateCorrelationsRequest struct {
	Symbols    []string `json:"symbols"`
	WindowDays int      `json:"windowDays"`
}

func (m ApiHandler) calculateCorrelations(c *gin.Context) {
	var requestBody calculateCorrelationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "calculateCorrelations")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	matrix, err := m.IntermarketService.CalculateCorrelations(ctx, requestBody.Symbols, requestBody.WindowDays)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, matrix)
}
