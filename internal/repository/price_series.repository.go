package repository

import (
	"context"
	"intermarket/internal/domain"
)

// PriceSeriesRepository fetches historical daily closes for one symbol.
// windowDays is a calendar-day lookback ending now, so a 252 day window
// returns roughly one trading year of bars. Implementations return bars
// oldest-first and must not invent data for unknown symbols - an empty
// slice or an error both mean the symbol gets skipped upstream.
type PriceSeriesRepository interface {
	GetDailyCloses(ctx context.Context, symbol string, windowDays int) ([]domain.AssetPrice, error)
}
