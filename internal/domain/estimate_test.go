package domain

import (
	"math"
	"testing"
)

func TestCalculate_DefaultScenario(t *testing.T) {
	est := EstimateInput{Hires: 20, AverageSalary: 60000, AgencyFeePercent: 20}.Calculate()

	// 20 hires * 60000 * 20% = 240000
	if !floatEquals(est.AnnualFees, 240000) {
		t.Errorf("expected annual fees 240000, got %f", est.AnnualFees)
	}
	if !floatEquals(est.SavingsLow, 96000) {
		t.Errorf("expected low savings 96000, got %f", est.SavingsLow)
	}
	if !floatEquals(est.SavingsHigh, 168000) {
		t.Errorf("expected high savings 168000, got %f", est.SavingsHigh)
	}
	if !floatEquals(est.PerHire, 12000) {
		t.Errorf("expected 12000 per hire, got %f", est.PerHire)
	}
}

func TestCalculate_ZeroHires(t *testing.T) {
	est := EstimateInput{Hires: 0, AverageSalary: 60000, AgencyFeePercent: 20}.Calculate()

	if est.AnnualFees != 0 {
		t.Errorf("expected 0 annual fees, got %f", est.AnnualFees)
	}
	if est.PerHire != 0 {
		t.Errorf("expected 0 per hire, got %f", est.PerHire)
	}
	if math.IsNaN(est.PerHire) || math.IsInf(est.PerHire, 0) {
		t.Errorf("per hire must be finite, got %f", est.PerHire)
	}
}

func TestCalculate_NegativeInputsBehaveAsZero(t *testing.T) {
	tests := []struct {
		name  string
		input EstimateInput
		zero  EstimateInput
	}{
		{
			name:  "negative hires",
			input: EstimateInput{Hires: -5, AverageSalary: 60000, AgencyFeePercent: 20},
			zero:  EstimateInput{Hires: 0, AverageSalary: 60000, AgencyFeePercent: 20},
		},
		{
			name:  "negative salary",
			input: EstimateInput{Hires: 20, AverageSalary: -60000, AgencyFeePercent: 20},
			zero:  EstimateInput{Hires: 20, AverageSalary: 0, AgencyFeePercent: 20},
		},
		{
			name:  "negative percent",
			input: EstimateInput{Hires: 20, AverageSalary: 60000, AgencyFeePercent: -20},
			zero:  EstimateInput{Hires: 20, AverageSalary: 60000, AgencyFeePercent: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Calculate()
			want := tt.zero.Calculate()
			if got != want {
				t.Errorf("Calculate(%+v) = %+v, want %+v", tt.input, got, want)
			}
		})
	}
}

func TestCalculate_NonFiniteInputsBehaveAsZero(t *testing.T) {
	est := EstimateInput{Hires: math.NaN(), AverageSalary: math.Inf(1), AgencyFeePercent: 20}.Calculate()

	if est.AnnualFees != 0 || est.PerHire != 0 {
		t.Errorf("expected zero estimate, got %+v", est)
	}
	if est.Input.Hires != 0 || est.Input.AverageSalary != 0 {
		t.Errorf("expected clamped inputs, got %+v", est.Input)
	}
}

func TestCalculate_OverflowYieldsZero(t *testing.T) {
	tests := []struct {
		name  string
		input EstimateInput
	}{
		{"fees overflow", EstimateInput{Hires: 1e200, AverageSalary: 1e200, AgencyFeePercent: 20}},
		{"overflow times zero percent", EstimateInput{Hires: 1e200, AverageSalary: 1e200, AgencyFeePercent: 0}},
		{"per hire overflow", EstimateInput{Hires: 1e-300, AverageSalary: 1e308, AgencyFeePercent: 1e10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := tt.input.Calculate()
			for name, v := range map[string]float64{
				"fees":         est.AnnualFees,
				"savings low":  est.SavingsLow,
				"savings high": est.SavingsHigh,
				"per hire":     est.PerHire,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s must be finite, got %f", name, v)
				}
			}
			if est.AnnualFees == 0 && (est.SavingsLow != 0 || est.SavingsHigh != 0) {
				t.Errorf("expected zero savings with zero fees, got %+v", est)
			}
		})
	}
}

func TestCalculate_Properties(t *testing.T) {
	hires := []float64{0, 1, 3, 20, 250}
	salaries := []float64{0, 18500, 60000, 145250.5}
	percents := []float64{0, 1, 12.5, 20, 35, 100}

	for _, h := range hires {
		for _, s := range salaries {
			for _, p := range percents {
				est := EstimateInput{Hires: h, AverageSalary: s, AgencyFeePercent: p}.Calculate()

				wantFees := h * s * p / 100
				if !floatEquals(est.AnnualFees, wantFees) {
					t.Errorf("h=%v s=%v p=%v: fees %f, want %f", h, s, p, est.AnnualFees, wantFees)
				}
				if !floatEquals(est.SavingsLow, 0.4*est.AnnualFees) {
					t.Errorf("h=%v s=%v p=%v: low savings %f", h, s, p, est.SavingsLow)
				}
				if !floatEquals(est.SavingsHigh, 0.7*est.AnnualFees) {
					t.Errorf("h=%v s=%v p=%v: high savings %f", h, s, p, est.SavingsHigh)
				}
				if est.SavingsLow > est.SavingsHigh {
					t.Errorf("h=%v s=%v p=%v: low %f above high %f", h, s, p, est.SavingsLow, est.SavingsHigh)
				}
				if h > 0 && !floatEquals(est.PerHire, est.AnnualFees/h) {
					t.Errorf("h=%v s=%v p=%v: per hire %f", h, s, p, est.PerHire)
				}
				if h == 0 && est.PerHire != 0 {
					t.Errorf("s=%v p=%v: expected 0 per hire with no hires, got %f", s, p, est.PerHire)
				}
				if est.AnnualFees < 0 || est.SavingsLow < 0 || est.SavingsHigh < 0 || est.PerHire < 0 {
					t.Errorf("h=%v s=%v p=%v: negative derived value %+v", h, s, p, est)
				}
			}
		}
	}
}

func TestParseEstimateInput(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   EstimateInput
	}{
		{
			name:   "all missing uses defaults",
			fields: map[string]string{},
			want:   EstimateInput{Hires: 20, AverageSalary: 60000, AgencyFeePercent: 20},
		},
		{
			name:   "all present",
			fields: map[string]string{"hires": "12", "salary": "45000", "percent": "15"},
			want:   EstimateInput{Hires: 12, AverageSalary: 45000, AgencyFeePercent: 15},
		},
		{
			name:   "non-numeric hires is zero",
			fields: map[string]string{"hires": "lots"},
			want:   EstimateInput{Hires: 0, AverageSalary: 60000, AgencyFeePercent: 20},
		},
		{
			name:   "empty salary is zero",
			fields: map[string]string{"salary": ""},
			want:   EstimateInput{Hires: 20, AverageSalary: 0, AgencyFeePercent: 20},
		},
		{
			name:   "negative kept until calculate",
			fields: map[string]string{"percent": "-3"},
			want:   EstimateInput{Hires: 20, AverageSalary: 60000, AgencyFeePercent: -3},
		},
		{
			name:   "infinite is zero",
			fields: map[string]string{"hires": "Inf", "salary": "NaN"},
			want:   EstimateInput{Hires: 0, AverageSalary: 0, AgencyFeePercent: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEstimateInput(func(field string) (string, bool) {
				v, ok := tt.fields[field]
				return v, ok
			})
			if got != tt.want {
				t.Errorf("ParseEstimateInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseEstimateInput_MalformedHiresZeroesFees(t *testing.T) {
	in := ParseEstimateInput(func(field string) (string, bool) {
		if field == FieldHires {
			return "twenty", true
		}
		return "", false
	})

	est := in.Calculate()
	if est.AnnualFees != 0 {
		t.Errorf("expected 0 annual fees for malformed hires, got %f", est.AnnualFees)
	}
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
