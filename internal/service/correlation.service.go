package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"intermarket/internal/domain"
	"intermarket/internal/logger"
	"intermarket/internal/repository"
	"intermarket/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// IntermarketService computes cross-asset correlation statistics over
// freshly fetched daily closes. Every operation refetches and recomputes
// from scratch - nothing is cached between calls.
type IntermarketService interface {
	CalculateCorrelations(ctx context.Context, symbols []string, windowDays int) (domain.CorrelationMatrix, error)
	FetchDailySeries(ctx context.Context, symbols []string, windowDays int) []SeriesResult
	IdentifyLeaders(matrix domain.CorrelationMatrix) []domain.LeaderEntry
	DetectSpillover(ctx context.Context, symbol string, universe []string) (*domain.SpilloverReport, error)
	GetMarketNetwork(ctx context.Context, symbols []string) (*domain.MarketNetwork, error)
	AnalyzeMarketRegime(ctx context.Context, symbols []string) (*domain.RegimeAnalysis, error)
	DescribeRegime(ctx context.Context, symbols []string) (string, error)
}

// InsufficientDataError means an operation that needs a correlation matrix
// could not get one - fewer than two symbols had usable data, or a
// requested symbol is missing from the computed matrix.
type InsufficientDataError struct {
	Reason string
	Symbol string
}

func (e InsufficientDataError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("insufficient data for %s: %s", e.Symbol, e.Reason)
	}
	return fmt.Sprintf("insufficient data: %s", e.Reason)
}

type intermarketServiceHandler struct {
	PriceSeriesRepository repository.PriceSeriesRepository
	UniverseRepository    repository.UniverseRepository
	GptRepository         repository.GptRepository

	WindowDays int
	Threshold  float64
}

// NewIntermarketService wires the engine. gptRepository may be nil, which
// disables regime commentary. Non-positive windowDays/threshold fall back
// to the package defaults (252 days, 0.3).
func NewIntermarketService(
	priceSeriesRepository repository.PriceSeriesRepository,
	universeRepository repository.UniverseRepository,
	gptRepository repository.GptRepository,
	windowDays int,
	threshold float64,
) IntermarketService {
	if windowDays <= 0 {
		windowDays = util.DefaultCorrelationWindowDays
	}
	if threshold <= 0 {
		threshold = util.DefaultCorrelationThreshold
	}
	return &intermarketServiceHandler{
		PriceSeriesRepository: priceSeriesRepository,
		UniverseRepository:    universeRepository,
		GptRepository:         gptRepository,
		WindowDays:            windowDays,
		Threshold:             threshold,
	}
}

// SeriesResult is the per-symbol outcome of a batch fetch. A failed symbol
// carries its error here instead of aborting the batch.
type SeriesResult struct {
	Symbol string
	Prices []domain.AssetPrice
	Err    error
}

// FetchDailySeries fetches every symbol's daily closes through a fixed
// worker pool. Results come back in input order regardless of which
// goroutine finished first.
func (h *intermarketServiceHandler) FetchDailySeries(ctx context.Context, symbols []string, windowDays int) []SeriesResult {
	numGoroutines := 10

	inputCh := make(chan int, len(symbols))
	results := make([]SeriesResult, len(symbols))

	var wg sync.WaitGroup
	for i := range symbols {
		wg.Add(1)
		inputCh <- i
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for idx := range inputCh {
				if err := ctx.Err(); err != nil {
					results[idx] = SeriesResult{Symbol: symbols[idx], Err: err}
					wg.Done()
					continue
				}
				prices, err := h.PriceSeriesRepository.GetDailyCloses(ctx, symbols[idx], windowDays)
				results[idx] = SeriesResult{Symbol: symbols[idx], Prices: prices, Err: err}
				wg.Done()
			}
		}()
	}

	wg.Wait()

	return results
}

// CalculateCorrelations fetches daily closes for each symbol, aligns the
// series on their common dates, and correlates the per-period returns of
// every pair. Symbols whose fetch fails are logged and skipped. The result
// is empty when fewer than two symbols survive or fewer than two aligned
// observations remain.
func (h *intermarketServiceHandler) CalculateCorrelations(ctx context.Context, symbols []string, windowDays int) (domain.CorrelationMatrix, error) {
	log := logger.FromContext(ctx)
	if windowDays <= 0 {
		windowDays = h.WindowDays
	}

	if len(symbols) == 0 {
		var err error
		symbols, err = h.UniverseRepository.ActiveSymbols()
		if err != nil {
			return domain.NewCorrelationMatrix(nil), fmt.Errorf("failed to load default universe: %w", err)
		}
	}

	results := h.FetchDailySeries(ctx, symbols, windowDays)
	if err := ctx.Err(); err != nil {
		return domain.NewCorrelationMatrix(nil), err
	}

	closes := map[string]map[string]decimal.Decimal{}
	usable := []string{}
	for _, result := range results {
		if _, ok := closes[result.Symbol]; ok {
			continue
		}
		if result.Err != nil {
			log.Warnf("failed to fetch prices for %s: %s", result.Symbol, result.Err.Error())
			continue
		}
		if len(result.Prices) < 2 {
			log.Warnf("skipping %s: got %d daily closes", result.Symbol, len(result.Prices))
			continue
		}
		series, err := closesByDate(result.Prices)
		if err != nil {
			log.Warnf("skipping %s: %s", result.Symbol, err.Error())
			continue
		}
		closes[result.Symbol] = series
		usable = append(usable, result.Symbol)
	}

	if len(usable) < 2 {
		return domain.NewCorrelationMatrix(nil), nil
	}

	// consecutive date pairs produce one return each, and Pearson needs
	// at least two returns
	dates := commonDates(closes, usable)
	if len(dates) < 3 {
		return domain.NewCorrelationMatrix(nil), nil
	}

	returns := map[string][]float64{}
	for _, symbol := range usable {
		series := make([]float64, 0, len(dates)-1)
		for i := 1; i < len(dates); i++ {
			series = append(series, fractionalChange(closes[symbol][dates[i]], closes[symbol][dates[i-1]]))
		}
		returns[symbol] = series
	}

	matrix := domain.NewCorrelationMatrix(usable)
	for i, a := range usable {
		matrix.Set(a, a, 1)
		for j := i + 1; j < len(usable); j++ {
			b := usable[j]
			r, err := stats.Pearson(returns[a], returns[b])
			if err != nil {
				return domain.NewCorrelationMatrix(nil), fmt.Errorf("failed to correlate %s and %s: %w", a, b, err)
			}
			matrix.Set(a, b, r)
		}
	}

	return matrix, nil
}

// closesByDate keys a price series by UTC calendar day. The repositories
// reject non-positive closes, but mocks and future providers may not, and
// a zero close would blow up the return computation, so it's re-checked
// here and the symbol is dropped.
func closesByDate(prices []domain.AssetPrice) (map[string]decimal.Decimal, error) {
	series := make(map[string]decimal.Decimal, len(prices))
	for _, p := range prices {
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("got non-positive close %s on %s", p.Price.String(), util.DateKey(p.Date))
		}
		series[util.DateKey(p.Date)] = p.Price
	}
	return series, nil
}

// commonDates returns the dates present in every symbol's series, sorted
// ascending. Date keys are YYYY-MM-DD so lexicographic order is
// chronological order.
func commonDates(closes map[string]map[string]decimal.Decimal, symbols []string) []string {
	counts := map[string]int{}
	for _, symbol := range symbols {
		for date := range closes[symbol] {
			counts[date]++
		}
	}

	dates := []string{}
	for date, n := range counts {
		if n == len(symbols) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	return dates
}

func fractionalChange(end, start decimal.Decimal) float64 {
	return end.Sub(start).Div(start).InexactFloat64()
}
