package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/pkg/tui/components"
	"github.com/guildandgrove/website/internal/pkg/tui/theme"
	"github.com/guildandgrove/website/internal/util"
)

const barWidth = 24

type field struct {
	name  string
	label string
}

// Field order matches the web form.
var fields = []field{
	{name: domain.FieldHires, label: "Hires / year"},
	{name: domain.FieldSalary, label: "Avg salary"},
	{name: domain.FieldPercent, label: "Agency %"},
}

// Estimator is the terminal savings estimator. The estimate is re-derived
// from the raw input text on every update and never cached across edits.
type Estimator struct {
	inputs   []textinput.Model
	focus    int
	money    *util.Money
	estimate domain.Estimate
	help     components.HelpBar
	styles   *theme.Styles
	quitting bool
}

// NewEstimator creates the model pre-filled with in.
func NewEstimator(money *util.Money, in domain.EstimateInput) *Estimator {
	values := []float64{in.Hires, in.AverageSalary, in.AgencyFeePercent}
	styles := theme.Default()

	e := &Estimator{
		inputs: make([]textinput.Model, len(fields)),
		money:  money,
		styles: styles,
		help: components.NewHelpBar(
			components.KeyBinding{Key: "tab", Desc: "next"},
			components.KeyBinding{Key: "shift+tab", Desc: "prev"},
			components.KeyBinding{Key: "esc", Desc: "quit"},
		),
	}
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 15
		ti.Width = 16
		ti.Cursor.Style = styles.Cursor
		ti.SetValue(util.FormatInput(values[i]))
		if f.name == domain.FieldSalary {
			ti.Prompt = money.Symbol()
		}
		e.inputs[i] = ti
	}
	e.inputs[0].Focus()
	e.recalculate()
	return e
}

// Estimate returns the estimate for the current input text.
func (e *Estimator) Estimate() domain.Estimate {
	return e.estimate
}

// Focused returns the index of the focused field.
func (e *Estimator) Focused() int {
	return e.focus
}

// Init implements tea.Model
func (e *Estimator) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (e *Estimator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			e.quitting = true
			return e, tea.Quit
		case "tab", "down", "enter":
			return e, e.setFocus(e.focus + 1)
		case "shift+tab", "up":
			return e, e.setFocus(e.focus - 1)
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	e.recalculate()
	return e, cmd
}

func (e *Estimator) setFocus(i int) tea.Cmd {
	n := len(e.inputs)
	e.focus = ((i % n) + n) % n
	for j := range e.inputs {
		e.inputs[j].Blur()
	}
	return e.inputs[e.focus].Focus()
}

// recalculate parses every field as present, so cleared text counts as 0.
func (e *Estimator) recalculate() {
	values := make(map[string]string, len(fields))
	for i, f := range fields {
		values[f.name] = e.inputs[i].Value()
	}
	in := domain.ParseEstimateInput(func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	})
	e.estimate = in.Calculate()
}

// View implements tea.Model
func (e *Estimator) View() string {
	if e.quitting {
		return ""
	}

	title := e.styles.Title.Render("GUILD & GROVE")
	tagline := e.styles.Muted.Render("Agency fees savings")
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tagline)

	var form strings.Builder
	for i, f := range fields {
		label := e.styles.Label
		if i == e.focus {
			label = e.styles.ActiveLabel
		}
		form.WriteString(label.Render(f.label))
		form.WriteString(e.inputs[i].View())
		form.WriteString("\n")
	}

	est := e.estimate
	low := components.NewBar(barWidth)
	low.Set(est.SavingsLow, est.AnnualFees)
	high := components.NewBar(barWidth)
	high.Set(est.SavingsHigh, est.AnnualFees)

	var results strings.Builder
	results.WriteString(e.styles.Body.Render("Estimated annual fees  "))
	results.WriteString(e.styles.Money.Render(e.money.Format(est.AnnualFees)))
	results.WriteString("\n")
	results.WriteString(e.styles.Muted.Render("≈ " + e.money.Format(est.PerHire) + " per hire"))
	results.WriteString("\n\n")
	results.WriteString(e.styles.Body.Render("Potential savings"))
	results.WriteString("\n")
	results.WriteString(e.band(domain.SavingsLowRate, low, est.SavingsLow))
	results.WriteString("\n")
	results.WriteString(e.band(domain.SavingsHighRate, high, est.SavingsHigh))

	card := e.styles.Card.Render(results.String())

	return e.styles.Container.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		form.String(),
		card,
		e.help.View(),
	))
}

func (e *Estimator) band(rate float64, bar components.Bar, amount float64) string {
	pct := e.styles.Highlighted.Render(util.FormatPercent(rate))
	return pct + " " + bar.View() + " " + e.styles.Savings.Render(e.money.Format(amount))
}

// Run starts the interactive estimator and returns the estimate shown at exit.
func Run(money *util.Money, in domain.EstimateInput, opts ...tea.ProgramOption) (domain.Estimate, error) {
	final, err := tea.NewProgram(NewEstimator(money, in), opts...).Run()
	if err != nil {
		return domain.Estimate{}, err
	}
	return final.(*Estimator).Estimate(), nil
}
