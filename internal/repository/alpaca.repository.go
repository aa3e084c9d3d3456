package repository

import (
	"context"
	"fmt"
	"time"

	"intermarket/internal/domain"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// NewAlpacaRepository is the equities-only alternative to the Yahoo
// provider. Alpaca has no forex/futures/index data, so universes with
// Yahoo-style symbols (=X, =F, ^) should stay on Yahoo.
func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) PriceSeriesRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h *alpacaRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, windowDays int) ([]domain.AssetPrice, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -windowDays)

	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Start:      start,
		End:        now,
		Adjustment: marketdata.Split,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	prices := []domain.AssetPrice{}
	for _, bar := range bars {
		price := domain.AssetPrice{
			Symbol: symbol,
			Price:  decimal.NewFromFloat(bar.Close),
			Date:   bar.Timestamp.UTC(),
		}
		if price.Price.IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
		prices = append(prices, price)
	}

	return prices, nil
}
