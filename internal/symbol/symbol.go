// Package symbol canonicalizes user-supplied tickers and owns the fixed
// screening universe of large-cap NSE names.
package symbol

import "strings"

// typoTable maps common misspellings to the canonical NSE ticker.
var typoTable = map[string]string{
	"RELAINCE":   "RELIANCE",
	"RELIENCE":   "RELIANCE",
	"INFOSYS":    "INFY",
	"TATAMOTOR":  "TATAMOTORS",
	"HDFC BANK":  "HDFCBANK",
	"KOTAK":      "KOTAKBANK",
	"AIRTEL":     "BHARTIARTL",
	"HINDUSTAN":  "HINDUNILVR",
	"UNILEVER":   "HINDUNILVR",
	"LARSEN":     "LT",
	"ASIANPAINT": "ASIANPAINT",
}

// universe is the candidate list screened by the recommendation endpoint.
var universe = []string{
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "HINDUNILVR",
	"ITC", "SBIN", "BHARTIARTL", "KOTAKBANK", "LT",
	"HCLTECH", "AXISBANK", "ASIANPAINT", "MARUTI", "TITAN",
}

// Normalize trims, uppercases and fixes known typos. Unmapped input
// passes through unchanged; normalization never fails.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if canonical, ok := typoTable[s]; ok {
		return canonical
	}
	return s
}

// Universe returns a copy of the screening candidate list, in ranking
// tie-break order.
func Universe() []string {
	out := make([]string, len(universe))
	copy(out, universe)
	return out
}
