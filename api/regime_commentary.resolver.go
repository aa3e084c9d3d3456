package api

import (
	"context"
	"fmt"

	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type describeRegimeRequest struct {
	Symbols []string `json:"symbols"`
}

type describeRegimeResponse struct {
	Commentary string `json:"commentary"`
}

func (m ApiHandler) describeRegime(c *gin.Context) {
	var requestBody describeRegimeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "describeRegime")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	commentary, err := m.IntermarketService.DescribeRegime(ctx, requestBody.Symbols)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, describeRegimeResponse{Commentary: commentary})
}
