package domain

import "time"

type Regime string

const (
	RegimeHighCorrelation     Regime = "high_correlation"
	RegimeModerateCorrelation Regime = "moderate_correlation"
	RegimeLowCorrelation      Regime = "low_correlation"
)

type RegimeAnalysis struct {
	Regime                Regime    `json:"regime"`
	Description           string    `json:"description"`
	AvgCorrelation        float64   `json:"avgCorrelation"`
	CorrelationVolatility float64   `json:"correlationVolatility"`
	SymbolsAnalyzed       int       `json:"symbolsAnalyzed"`
	Timestamp             time.Time `json:"timestamp"`
}
