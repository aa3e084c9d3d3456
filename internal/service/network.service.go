package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"intermarket/internal/domain"

	"github.com/montanaflynn/stats"
)

// GetMarketNetwork builds a correlation graph over the given symbols.
// Nodes carry degree, strength and an asset class inferred from the
// symbol; edges connect every ordered pair whose absolute correlation
// exceeds the threshold, so each qualifying pair shows up twice, once per
// direction.
func (h *intermarketServiceHandler) GetMarketNetwork(ctx context.Context, symbols []string) (*domain.MarketNetwork, error) {
	matrix, err := h.CalculateCorrelations(ctx, symbols, 0)
	if err != nil {
		return nil, err
	}
	if matrix.IsEmpty() {
		return nil, InsufficientDataError{Reason: "no usable price data for network"}
	}

	nodes := []domain.NetworkNode{}
	for _, symbol := range matrix.Symbols {
		degree := 0
		absolute := []float64{}
		for _, other := range matrix.Symbols {
			if other == symbol {
				continue
			}
			r := matrix.Values[symbol][other]
			absolute = append(absolute, math.Abs(r))
			if math.Abs(r) > h.Threshold {
				degree++
			}
		}
		strength, err := stats.Mean(absolute)
		if err != nil {
			return nil, fmt.Errorf("failed to compute strength for %s: %w", symbol, err)
		}
		nodes = append(nodes, domain.NetworkNode{
			ID:         symbol,
			Degree:     degree,
			Strength:   strength,
			AssetClass: domain.ClassifyAsset(symbol),
		})
	}

	edges := []domain.NetworkEdge{}
	for _, source := range matrix.Symbols {
		for _, target := range matrix.Symbols {
			if source == target {
				continue
			}
			r := matrix.Values[source][target]
			if math.Abs(r) <= h.Threshold {
				continue
			}
			edgeType := domain.EdgeTypePositive
			if r < 0 {
				edgeType = domain.EdgeTypeNegative
			}
			edges = append(edges, domain.NetworkEdge{
				Source: source,
				Target: target,
				Weight: math.Abs(r),
				Type:   edgeType,
			})
		}
	}

	return &domain.MarketNetwork{
		Nodes: nodes,
		Edges: edges,
		Metadata: domain.NetworkMetadata{
			TotalNodes:           len(nodes),
			TotalEdges:           len(edges),
			CorrelationThreshold: h.Threshold,
			Timestamp:            time.Now().UTC(),
		},
	}, nil
}
