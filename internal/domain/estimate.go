package domain

import "github.com/guildandgrove/website/internal/util"

// Form field names shared by the web form, the JSON API and the CLI flags.
const (
	FieldHires   = "hires"
	FieldSalary  = "salary"
	FieldPercent = "percent"
)

const (
	DefaultHires            = 20
	DefaultAverageSalary    = 60000
	DefaultAgencyFeePercent = 20

	// Typical agency spend reductions after in-house uplift.
	SavingsLowRate  = 0.4
	SavingsHighRate = 0.7
)

// EstimateInput holds the three estimator inputs.
type EstimateInput struct {
	Hires            float64
	AverageSalary    float64
	AgencyFeePercent float64
}

// Estimate is derived from an EstimateInput on every change and never stored.
type Estimate struct {
	Input       EstimateInput // after clamping
	AnnualFees  float64
	SavingsLow  float64
	SavingsHigh float64
	PerHire     float64
}

func DefaultEstimateInput() EstimateInput {
	return EstimateInput{
		Hires:            DefaultHires,
		AverageSalary:    DefaultAverageSalary,
		AgencyFeePercent: DefaultAgencyFeePercent,
	}
}

// ParseEstimateInput reads raw field values through lookup.
// A field lookup reports as missing keeps its default; a present field that
// does not parse as a finite number becomes 0.
func ParseEstimateInput(lookup func(field string) (string, bool)) EstimateInput {
	in := DefaultEstimateInput()
	if raw, ok := lookup(FieldHires); ok {
		in.Hires = util.ToFloat64(raw)
	}
	if raw, ok := lookup(FieldSalary); ok {
		in.AverageSalary = util.ToFloat64(raw)
	}
	if raw, ok := lookup(FieldPercent); ok {
		in.AgencyFeePercent = util.ToFloat64(raw)
	}
	return in
}

// Clamp returns a copy with negative or non-finite fields set to 0.
// The percent upper bound is left to the input control.
func (in EstimateInput) Clamp() EstimateInput {
	return EstimateInput{
		Hires:            util.NonNegative(in.Hires),
		AverageSalary:    util.NonNegative(in.AverageSalary),
		AgencyFeePercent: util.NonNegative(in.AgencyFeePercent),
	}
}

// Calculate derives the annual agency spend, the two savings bands and the
// spend per hire. It cannot fail: degenerate inputs yield zeros, and so does
// any product that overflows float64.
func (in EstimateInput) Calculate() Estimate {
	c := in.Clamp()

	fees := util.NonNegative(c.Hires * c.AverageSalary * (c.AgencyFeePercent / 100))

	var perHire float64
	if c.Hires > 0 {
		perHire = util.NonNegative(fees / c.Hires)
	}

	return Estimate{
		Input:       c,
		AnnualFees:  fees,
		SavingsLow:  fees * SavingsLowRate,
		SavingsHigh: fees * SavingsHighRate,
		PerHire:     perHire,
	}
}
