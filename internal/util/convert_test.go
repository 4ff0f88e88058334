package util

import (
	"math"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float64", float64(3.14), 3.14},
		{"float32", float32(2.5), 2.5},
		{"int64", int64(42), 42.0},
		{"int", int(7), 7.0},
		{"string valid", "3.14", 3.14},
		{"string int", "42", 42.0},
		{"string padded", "  60000 ", 60000},
		{"string negative", "-5", -5},
		{"string invalid", "abc", 0},
		{"string empty", "", 0},
		{"string NaN", "NaN", 0},
		{"string Inf", "Inf", 0},
		{"string overflow", "1e400", 0},
		{"string hex", "0x10", 16},
		{"string hex upper", "0XfF", 255},
		{"string octal", "0o17", 15},
		{"string binary", "0b101", 5},
		{"string leading zero", "010", 10},
		{"string signed hex", "-0x10", 0},
		{"string hex float", "0x1p4", 0},
		{"string hex malformed", "0xg", 0},
		{"string underscore", "1_000", 0},
		{"string exponent", "1e3", 1000},
		{"float NaN", math.NaN(), 0},
		{"float Inf", math.Inf(1), 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToFloat64(tt.in); got != tt.want {
				t.Errorf("ToFloat64(%v) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 12, 12},
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"NaN", math.NaN(), 0},
		{"Inf", math.Inf(1), 0},
		{"negative Inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonNegative(tt.in); got != tt.want {
				t.Errorf("NonNegative(%v) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
