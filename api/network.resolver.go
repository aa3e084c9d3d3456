package api

import (
	"context"
	"fmt"

	"intermarket/internal/logger"

	"github.com/gin-gonic/gin"
)

type getMarketNetworkRequest struct {
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) getMarketNetwork(c *gin.Context) {
	var requestBody getMarketNetworkRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c).With("handler", "getMarketNetwork")
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	network, err := m.IntermarketService.GetMarketNetwork(ctx, requestBody.Symbols)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, network)
}
