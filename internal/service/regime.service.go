package service

import (
	"context"
	"fmt"
	"time"

	"intermarket/internal/domain"

	"github.com/montanaflynn/stats"
)

// AnalyzeMarketRegime classifies the overall co-movement level from the
// mean of the unique pairwise correlations (the strictly-upper triangle of
// the matrix). Dispersion uses the population standard deviation.
func (h *intermarketServiceHandler) AnalyzeMarketRegime(ctx context.Context, symbols []string) (*domain.RegimeAnalysis, error) {
	matrix, err := h.CalculateCorrelations(ctx, symbols, 0)
	if err != nil {
		return nil, err
	}
	if matrix.IsEmpty() {
		return nil, InsufficientDataError{Reason: "no usable price data for regime analysis"}
	}

	return h.regimeFromMatrix(matrix)
}

func (h *intermarketServiceHandler) regimeFromMatrix(matrix domain.CorrelationMatrix) (*domain.RegimeAnalysis, error) {
	upper := matrix.UpperTriangle()

	avg, err := stats.Mean(upper)
	if err != nil {
		return nil, fmt.Errorf("failed to average pairwise correlations: %w", err)
	}
	vol, err := stats.StandardDeviationPopulation(upper)
	if err != nil {
		return nil, fmt.Errorf("failed to compute correlation dispersion: %w", err)
	}

	regime := domain.RegimeLowCorrelation
	description := "Low correlation regime - diversification opportunities available"
	if avg > 0.7 {
		regime = domain.RegimeHighCorrelation
		description = "High correlation regime - elevated systemic risk"
	} else if avg > 0.4 {
		regime = domain.RegimeModerateCorrelation
		description = "Moderate correlation regime"
	}

	return &domain.RegimeAnalysis{
		Regime:                regime,
		Description:           description,
		AvgCorrelation:        avg,
		CorrelationVolatility: vol,
		SymbolsAnalyzed:       len(matrix.Symbols),
		Timestamp:             time.Now().UTC(),
	}, nil
}

// DescribeRegime produces a short natural-language summary of the current
// regime and its strongest co-movers. It computes the matrix once and
// derives both the regime and the leader ranking from it.
func (h *intermarketServiceHandler) DescribeRegime(ctx context.Context, symbols []string) (string, error) {
	if h.GptRepository == nil {
		return "", fmt.Errorf("regime commentary is not configured: missing gpt api key")
	}

	matrix, err := h.CalculateCorrelations(ctx, symbols, 0)
	if err != nil {
		return "", err
	}
	if matrix.IsEmpty() {
		return "", InsufficientDataError{Reason: "no usable price data for regime commentary"}
	}

	analysis, err := h.regimeFromMatrix(matrix)
	if err != nil {
		return "", err
	}
	leaders := h.IdentifyLeaders(matrix)

	return h.GptRepository.DescribeRegime(ctx, *analysis, leaders)
}
