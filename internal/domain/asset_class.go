package domain

import "strings"

type AssetClass string

const (
	AssetClassForex     AssetClass = "forex"
	AssetClassCommodity AssetClass = "commodity"
	AssetClassCrypto    AssetClass = "crypto"
	AssetClassIndex     AssetClass = "index"
	AssetClassEquity    AssetClass = "equity"
)

// commoditySymbols are the metal futures we track. Other Yahoo futures
// symbols also end in =F but fall through to equity, matching the rule
// order below.
var commoditySymbols = map[string]bool{
	"GC=F": true,
	"SI=F": true,
	"PL=F": true,
}

// ClassifyAsset maps a Yahoo Finance symbol to a coarse asset class. Rules
// are checked in order and the first match wins: =X suffix before the
// commodity set, commodities before the -USD crypto suffix, then ^ indexes,
// then equity as the fallback.
func ClassifyAsset(symbol string) AssetClass {
	switch {
	case strings.HasSuffix(symbol, "=X"):
		return AssetClassForex
	case commoditySymbols[symbol]:
		return AssetClassCommodity
	case strings.HasSuffix(symbol, "-USD"), strings.HasSuffix(symbol, "-USDT"):
		return AssetClassCrypto
	case strings.HasPrefix(symbol, "^"):
		return AssetClassIndex
	default:
		return AssetClassEquity
	}
}
