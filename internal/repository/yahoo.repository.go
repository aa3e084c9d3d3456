package repository

import (
	"context"
	"fmt"
	"time"

	"intermarket/internal/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"golang.org/x/time/rate"
)

type yahooRepositoryHandler struct {
	Limiter         *rate.Limiter
	MaxRetryElapsed time.Duration
}

func NewYahooRepository() PriceSeriesRepository {
	return &yahooRepositoryHandler{
		Limiter:         rate.NewLimiter(rate.Every(time.Second), 5), // 5 requests per second
		MaxRetryElapsed: 30 * time.Second,
	}
}

func (h *yahooRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, windowDays int) ([]domain.AssetPrice, error) {
	if err := h.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -windowDays)

	var prices []domain.AssetPrice
	operation := func() error {
		params := &chart.Params{
			Start:    datetime.New(&start),
			End:      datetime.New(&now),
			Symbol:   symbol,
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		prices = []domain.AssetPrice{}
		for iter.Next() {
			bar := iter.Bar()
			price := domain.AssetPrice{
				Symbol: symbol,
				Price:  bar.AdjClose,
				Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			}
			if !price.Price.IsPositive() {
				return backoff.Permanent(fmt.Errorf("failed to get price for %s: got %s close on %s", symbol, price.Price.String(), price.Date.Format(time.DateOnly)))
			}
			prices = append(prices, price)
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
		}
		return nil
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = h.MaxRetryElapsed

	if err := backoff.Retry(operation, backoffStrategy); err != nil {
		return nil, err
	}

	return prices, nil
}
