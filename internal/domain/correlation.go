package domain

// CorrelationMatrix holds pairwise Pearson correlations of daily returns.
// Symbols preserves the order correlations were requested in, filtered down
// to the symbols that had usable price data. Values is symmetric and its
// diagonal is always exactly 1.
type CorrelationMatrix struct {
	Symbols []string                      `json:"symbols"`
	Values  map[string]map[string]float64 `json:"values"`
}

func NewCorrelationMatrix(symbols []string) CorrelationMatrix {
	values := make(map[string]map[string]float64, len(symbols))
	for _, s := range symbols {
		values[s] = make(map[string]float64, len(symbols))
	}
	return CorrelationMatrix{
		Symbols: symbols,
		Values:  values,
	}
}

// IsEmpty reports whether the matrix carries no correlations at all,
// which happens when fewer than two symbols had aligned price history.
func (m CorrelationMatrix) IsEmpty() bool {
	return len(m.Symbols) == 0
}

func (m CorrelationMatrix) Contains(symbol string) bool {
	_, ok := m.Values[symbol]
	return ok
}

func (m CorrelationMatrix) Value(a, b string) (float64, bool) {
	row, ok := m.Values[a]
	if !ok {
		return 0, false
	}
	v, ok := row[b]
	return v, ok
}

func (m CorrelationMatrix) Set(a, b string, v float64) {
	m.Values[a][b] = v
	m.Values[b][a] = v
}

// UpperTriangle returns the correlations strictly above the diagonal, in
// symbol order. For n symbols it holds n*(n-1)/2 values.
func (m CorrelationMatrix) UpperTriangle() []float64 {
	out := []float64{}
	for i := 0; i < len(m.Symbols); i++ {
		for j := i + 1; j < len(m.Symbols); j++ {
			out = append(out, m.Values[m.Symbols[i]][m.Symbols[j]])
		}
	}
	return out
}
