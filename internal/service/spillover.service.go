package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"intermarket/internal/domain"

	"github.com/montanaflynn/stats"
)

// DetectSpillover reports which symbols in the universe move strongly with
// the target. An empty universe falls back to the configured active symbol
// list. The matrix is always recomputed from fresh prices. The volatility
// spillover section of the report is a placeholder, see
// domain.VolatilitySpillover.
func (h *intermarketServiceHandler) DetectSpillover(ctx context.Context, symbol string, universe []string) (*domain.SpilloverReport, error) {
	matrix, err := h.CalculateCorrelations(ctx, universe, 0)
	if err != nil {
		return nil, err
	}
	if matrix.IsEmpty() {
		return nil, InsufficientDataError{Reason: "no usable price data in universe", Symbol: symbol}
	}
	if !matrix.Contains(symbol) {
		return nil, InsufficientDataError{Reason: "symbol not present in correlation matrix", Symbol: symbol}
	}

	sources := map[string]float64{}
	signed := []float64{}
	maxSpillover := 0.0
	for _, other := range matrix.Symbols {
		if other == symbol {
			continue
		}
		r := matrix.Values[symbol][other]
		signed = append(signed, r)
		if math.Abs(r) > h.Threshold {
			sources[other] = r
		}
		if math.Abs(r) > maxSpillover {
			maxSpillover = math.Abs(r)
		}
	}

	avg, err := stats.Mean(signed)
	if err != nil {
		return nil, fmt.Errorf("failed to average correlations for %s: %w", symbol, err)
	}

	return &domain.SpilloverReport{
		Symbol:              symbol,
		TotalCorrelations:   len(signed),
		StrongSpillovers:    len(sources),
		AvgCorrelation:      avg,
		MaxSpillover:        maxSpillover,
		SpilloverSources:    sources,
		VolatilitySpillover: domain.UnimplementedVolatilitySpillover(),
		Timestamp:           time.Now().UTC(),
	}, nil
}
