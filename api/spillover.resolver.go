package api

import (
	"context"
	"errors"
	"fmt"

	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type detectSpilloverRequest struct {
	Symbol  string   `json:"symbol"`
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) detectSpillover(c *gin.Context) {
	var requestBody detectSpilloverRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(errors.New("symbol is required"), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "detectSpillover")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	report, err := m.IntermarketService.DetectSpillover(ctx, requestBody.Symbol, requestBody.Symbols)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, report)
}
