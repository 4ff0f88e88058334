package web

import (
	"encoding/json"
	"net/http"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/util"
)

// EstimateResponse is the JSON form of an estimate.
type EstimateResponse struct {
	Currency  string          `json:"currency"`
	Input     EstimateFields  `json:"input"`
	Result    EstimateValues  `json:"result"`
	Formatted FormattedValues `json:"formatted"`
}

type EstimateFields struct {
	Hires            float64 `json:"hires"`
	AverageSalary    float64 `json:"salary"`
	AgencyFeePercent float64 `json:"percent"`
}

type EstimateValues struct {
	AnnualFees  float64 `json:"annual_fees"`
	PerHire     float64 `json:"per_hire"`
	SavingsLow  float64 `json:"savings_low"`
	SavingsHigh float64 `json:"savings_high"`
}

type FormattedValues struct {
	AnnualFees  string `json:"annual_fees"`
	PerHire     string `json:"per_hire"`
	SavingsLow  string `json:"savings_low"`
	SavingsHigh string `json:"savings_high"`
}

// NewEstimateResponse builds the JSON view of est. Input holds the clamped values.
func NewEstimateResponse(est domain.Estimate, money *util.Money) EstimateResponse {
	return EstimateResponse{
		Currency: money.Unit().String(),
		Input: EstimateFields{
			Hires:            est.Input.Hires,
			AverageSalary:    est.Input.AverageSalary,
			AgencyFeePercent: est.Input.AgencyFeePercent,
		},
		Result: EstimateValues{
			AnnualFees:  est.AnnualFees,
			PerHire:     est.PerHire,
			SavingsLow:  est.SavingsLow,
			SavingsHigh: est.SavingsHigh,
		},
		Formatted: FormattedValues{
			AnnualFees:  money.Format(est.AnnualFees),
			PerHire:     money.Format(est.PerHire),
			SavingsLow:  money.Format(est.SavingsLow),
			SavingsHigh: money.Format(est.SavingsHigh),
		},
	}
}

func (s *Server) handleAPIEstimate(w http.ResponseWriter, r *http.Request) {
	_, est := s.estimate(r, ports.SourceAPI)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(NewEstimateResponse(est, s.money)); err != nil {
		s.logger.Sugar().Named("web").Errorw("encode estimate", "error", err)
	}
}
