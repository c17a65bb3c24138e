package sample

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountLiteral parses an AmountRange bound, which is written in plain
// decimal-point notation ("1250.75") since config is JSON/YAML, not SWIFT
// wire text.
func parseAmountLiteral(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// interpolateAmount picks a pseudo-random decimal in [lo, hi] and renders it
// in SWIFT's comma-decimal wire notation ("1234,56").
func interpolateAmount(g *Generator, lo, hi decimal.Decimal) string {
	if hi.LessThan(lo) {
		lo, hi = hi, lo
	}
	span := hi.Sub(lo)
	fraction := decimal.NewFromFloat(g.Float64())
	value := lo.Add(span.Mul(fraction)).Round(2)
	return strings.Replace(value.StringFixed(2), ".", ",", 1)
}
