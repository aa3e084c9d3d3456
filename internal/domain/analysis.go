package domain

import "time"

// LeaderEntry describes how strongly one symbol co-moves with the rest of
// the analyzed universe. LeadershipScore is the mean absolute correlation
// against every other symbol.
type LeaderEntry struct {
	Symbol             string  `json:"symbol"`
	LeadershipScore    float64 `json:"leadershipScore"`
	StrongCorrelations int     `json:"strongCorrelations"`
	AvgCorrelation     float64 `json:"avgCorrelation"`
	MaxCorrelation     float64 `json:"maxCorrelation"`
	MinCorrelation     float64 `json:"minCorrelation"`
}

type SpilloverReport struct {
	Symbol              string              `json:"symbol"`
	TotalCorrelations   int                 `json:"totalCorrelations"`
	StrongSpillovers    int                 `json:"strongSpillovers"`
	AvgCorrelation      float64             `json:"avgCorrelation"`
	MaxSpillover        float64             `json:"maxSpillover"`
	SpilloverSources    map[string]float64  `json:"spilloverSources"`
	VolatilitySpillover VolatilitySpillover `json:"volatilitySpillover"`
	Timestamp           time.Time           `json:"timestamp"`
}

// VolatilitySpillover is a placeholder. Measuring volatility transmission
// needs a GARCH-family model, which is out of scope, so the transmission
// value is always 0 and Note says so.
type VolatilitySpillover struct {
	VolatilityTransmission float64 `json:"volatilityTransmission"`
	Note                   string  `json:"note"`
}

const VolatilitySpilloverNote = "volatility spillover analysis - implementation in progress"

func UnimplementedVolatilitySpillover() VolatilitySpillover {
	return VolatilitySpillover{
		VolatilityTransmission: 0.0,
		Note:                   VolatilitySpilloverNote,
	}
}
