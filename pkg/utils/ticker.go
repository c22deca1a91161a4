package utils

import (
	"strings"
)

// Yahoo Finance suffixes for non-US exchanges.
var exchangeSuffixes = map[string]string{
	"LSE":   ".L",
	"LON":   ".L",
	"XETRA": ".DE",
	"FRA":   ".F",
	"TSX":   ".TO",
	"ASX":   ".AX",
	"NSE":   ".NS",
	"BSE":   ".BO",
}

// NormalizeTicker uppercases a ticker and strips whitespace and a leading $.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(strings.ToUpper(ticker))
	return strings.TrimPrefix(ticker, "$")
}

// SplitDisplayName splits a display name that embeds its ticker in
// parentheses, e.g. "Diageo PLC (DEO)" → ("Diageo PLC", "DEO").
// Names without a trailing parenthesised part are returned unchanged.
func SplitDisplayName(display string) (name, ticker string) {
	display = strings.TrimSpace(display)
	if !strings.HasSuffix(display, ")") {
		return display, ""
	}
	open := strings.LastIndex(display, "(")
	if open <= 0 {
		return display, ""
	}
	inner := strings.TrimSpace(display[open+1 : len(display)-1])
	if inner == "" || strings.ContainsAny(inner, " ,") {
		return display, ""
	}
	return strings.TrimSpace(display[:open]), NormalizeTicker(inner)
}

// ToYFinanceTicker converts a ticker to Yahoo Finance format using the
// exchange suffix (LSE → .L). Tickers that already carry a suffix are kept.
func ToYFinanceTicker(ticker, exchange string) string {
	ticker = NormalizeTicker(ticker)
	if strings.Contains(ticker, ".") || strings.HasPrefix(ticker, "^") {
		return ticker
	}
	if suffix, ok := exchangeSuffixes[strings.ToUpper(strings.TrimSpace(exchange))]; ok {
		return ticker + suffix
	}
	return ticker
}

// BaseTicker strips any exchange suffix: "LIT.L" → "LIT".
func BaseTicker(ticker string) string {
	ticker = NormalizeTicker(ticker)
	if i := strings.Index(ticker, "."); i > 0 {
		return ticker[:i]
	}
	return ticker
}
