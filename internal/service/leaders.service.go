package service

import (
	"math"
	"sort"

	"intermarket/internal/domain"

	"github.com/montanaflynn/stats"
)

// IdentifyLeaders ranks every symbol in the matrix by how strongly it
// co-moves with the rest of the universe. The score is the mean absolute
// correlation to all other symbols. Ties keep the matrix's symbol order.
// An empty matrix yields an empty list.
func (h *intermarketServiceHandler) IdentifyLeaders(matrix domain.CorrelationMatrix) []domain.LeaderEntry {
	leaders := []domain.LeaderEntry{}

	for _, symbol := range matrix.Symbols {
		signed := []float64{}
		absolute := []float64{}
		strong := 0
		for _, other := range matrix.Symbols {
			if other == symbol {
				continue
			}
			r := matrix.Values[symbol][other]
			signed = append(signed, r)
			absolute = append(absolute, math.Abs(r))
			if math.Abs(r) > h.Threshold {
				strong++
			}
		}
		if len(signed) == 0 {
			continue
		}

		score, err := stats.Mean(absolute)
		if err != nil {
			continue
		}
		avg, err := stats.Mean(signed)
		if err != nil {
			continue
		}
		maxCorr, err := stats.Max(signed)
		if err != nil {
			continue
		}
		minCorr, err := stats.Min(signed)
		if err != nil {
			continue
		}

		leaders = append(leaders, domain.LeaderEntry{
			Symbol:             symbol,
			LeadershipScore:    score,
			StrongCorrelations: strong,
			AvgCorrelation:     avg,
			MaxCorrelation:     maxCorr,
			MinCorrelation:     minCorr,
		})
	}

	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].LeadershipScore > leaders[j].LeadershipScore
	})

	return leaders
}
