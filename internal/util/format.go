package util

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencySymbols = map[currency.Unit]string{
	currency.GBP: "£",
	currency.USD: "$",
	currency.EUR: "€",
	currency.JPY: "¥",
	currency.CHF: "CHF ",
	currency.AUD: "A$",
	currency.CAD: "CA$",
}

// Money formats currency amounts in whole units for a locale.
// Safe for concurrent use once constructed.
type Money struct {
	tag    language.Tag
	unit   currency.Unit
	symbol string
}

// NewMoney returns a formatter for the given locale and currency.
// Currencies without a known symbol are prefixed with their ISO code.
func NewMoney(tag language.Tag, unit currency.Unit) *Money {
	symbol, ok := currencySymbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}
	return &Money{tag: tag, unit: unit, symbol: symbol}
}

// Unit returns the ISO currency the formatter renders.
func (m *Money) Unit() currency.Unit {
	return m.unit
}

// Symbol returns the prefix written before every amount.
func (m *Money) Symbol() string {
	return m.symbol
}

// Format rounds v half away from zero to whole units and groups digits for the locale.
// Non-finite values render as zero.
// Examples (en-GB, GBP): 240000 -> "£240,000", 12000.5 -> "£12,001", NaN -> "£0"
func (m *Money) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	rounded := decimal.NewFromFloat(v).Round(0)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	p := message.NewPrinter(m.tag)
	if rounded.LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return sign + m.symbol + p.Sprintf("%d", rounded.IntPart())
	}
	return sign + m.symbol + p.Sprint(number.Decimal(rounded.InexactFloat64(), number.MaxFractionDigits(0)))
}

// FormatInput renders a number the way a numeric form field shows it.
// Examples: 20 -> "20", 1.5 -> "1.5", -5 -> "-5"
func FormatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a rate as a whole percentage: 0.4 -> "40%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
