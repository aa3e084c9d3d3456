package domain

import "time"

type EdgeType string

const (
	EdgeTypePositive EdgeType = "positive"
	EdgeTypeNegative EdgeType = "negative"
)

type NetworkNode struct {
	ID         string     `json:"id"`
	Degree     int        `json:"degree"`
	Strength   float64    `json:"strength"`
	AssetClass AssetClass `json:"assetClass"`
}

// NetworkEdge is directed. Every correlated pair produces two edges, one in
// each direction, so consumers get a symmetric adjacency without having to
// mirror it themselves.
type NetworkEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight float64  `json:"weight"`
	Type   EdgeType `json:"type"`
}

type NetworkMetadata struct {
	TotalNodes           int       `json:"totalNodes"`
	TotalEdges           int       `json:"totalEdges"`
	CorrelationThreshold float64   `json:"correlationThreshold"`
	Timestamp            time.Time `json:"timestamp"`
}

type MarketNetwork struct {
	Nodes    []NetworkNode   `json:"nodes"`
	Edges    []NetworkEdge   `json:"edges"`
	Metadata NetworkMetadata `json:"metadata"`
}
