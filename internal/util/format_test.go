package util

import (
	"math"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestMoney_Format_BritishPounds(t *testing.T) {
	m := NewMoney(language.BritishEnglish, currency.GBP)

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "£0"},
		{"small", 500, "£500"},
		{"thousands", 12000, "£12,000"},
		{"annual fees", 240000, "£240,000"},
		{"millions", 1680000, "£1,680,000"},
		{"rounds half up", 12000.5, "£12,001"},
		{"rounds down", 95999.49, "£95,999"},
		{"negative", -1500, "-£1,500"},
		{"negative rounds to zero", -0.4, "£0"},
		{"NaN", math.NaN(), "£0"},
		{"Inf", math.Inf(1), "£0"},
		{"negative Inf", math.Inf(-1), "£0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoney_Format_USDollars(t *testing.T) {
	m := NewMoney(language.AmericanEnglish, currency.USD)
	if got := m.Format(96000); got != "$96,000" {
		t.Errorf("expected $96,000, got %q", got)
	}
}

func TestNewMoney_UnknownSymbolUsesCode(t *testing.T) {
	m := NewMoney(language.BritishEnglish, currency.SEK)
	if m.Symbol() != "SEK " {
		t.Errorf("expected ISO code prefix, got %q", m.Symbol())
	}
	if m.Unit() != currency.SEK {
		t.Errorf("expected SEK unit, got %s", m.Unit())
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{60000, "60000"},
		{1.5, "1.5"},
		{-5, "-5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatInput(tt.in); got != tt.want {
			t.Errorf("FormatInput(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.4); got != "40%" {
		t.Errorf("FormatPercent(0.4) = %q", got)
	}
	if got := FormatPercent(0.7); got != "70%" {
		t.Errorf("FormatPercent(0.7) = %q", got)
	}
}
