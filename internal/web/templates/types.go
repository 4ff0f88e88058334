package templates

import (
	"github.com/a-h/templ"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/util"
)

// PageConfig carries per-deployment settings into the layout.
type PageConfig struct {
	BasePath     string // always ends in "/"
	AssetVersion string
	Lang         string
	Head         templ.Component // document metadata, rendered inside <head>
	Year         int
}

func (c PageConfig) lang() string {
	if c.Lang == "" {
		return "en"
	}
	return c.Lang
}

func (c PageConfig) asset(name string) templ.SafeURL {
	u := c.BasePath + "static/" + name
	if c.AssetVersion != "" {
		u += "?v=" + c.AssetVersion
	}
	return templ.URL(u)
}

// EstimatorView is the savings estimator card with display-ready values.
type EstimatorView struct {
	Endpoint       string // HTMX endpoint for recalculation
	Action         string // plain form action when scripting is unavailable
	CurrencySymbol string

	Hires   string
	Salary  string
	Percent string

	AnnualFees  string
	PerHire     string
	SavingsLow  string
	SavingsHigh string
	LowRate     string
	HighRate    string
}

// NewEstimatorView formats an estimate for display. in holds the values as
// entered (before clamping) so the form echoes them back unchanged.
func NewEstimatorView(basePath string, in domain.EstimateInput, est domain.Estimate, money *util.Money) EstimatorView {
	return EstimatorView{
		Endpoint:       basePath + "estimate",
		Action:         basePath,
		CurrencySymbol: money.Symbol(),
		Hires:          util.FormatInput(in.Hires),
		Salary:         util.FormatInput(in.AverageSalary),
		Percent:        util.FormatInput(in.AgencyFeePercent),
		AnnualFees:     money.Format(est.AnnualFees),
		PerHire:        money.Format(est.PerHire),
		SavingsLow:     money.Format(est.SavingsLow),
		SavingsHigh:    money.Format(est.SavingsHigh),
		LowRate:        util.FormatPercent(domain.SavingsLowRate),
		HighRate:       util.FormatPercent(domain.SavingsHighRate),
	}
}

// ResultID is the element swapped by estimator recalculation.
const ResultID = "estimate-result"

type numberField struct {
	name, label, value string
	step, max          string
}

func (v EstimatorView) fields() []numberField {
	return []numberField{
		{name: domain.FieldHires, label: "Hires / year", value: v.Hires, step: "1"},
		{name: domain.FieldSalary, label: "Avg salary (" + v.CurrencySymbol + ")", value: v.Salary, step: "1000"},
		{name: domain.FieldPercent, label: "Agency %", value: v.Percent, step: "1", max: "100"},
	}
}

const (
	contactResultID    = "contact-result"
	newsletterResultID = "newsletter-result"
)

type formField struct {
	name, label, kind, placeholder string
	wide                           bool
}

var contactFields = []formField{
	{name: "first_name", label: "First name", kind: "text", placeholder: "Alex"},
	{name: "last_name", label: "Last name", kind: "text", placeholder: "Morgan"},
	{name: "email", label: "Work email", kind: "email", placeholder: "alex@company.com", wide: true},
	{name: "company", label: "Company", kind: "text", placeholder: "Company Name", wide: true},
	{name: "message", label: "What would you like to improve?", kind: "textarea", placeholder: "Time-to-hire, agency spend, manager experience, DEI safeguards, etc.", wide: true},
}
