package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/util"
)

func newTestEstimator() *Estimator {
	return NewEstimator(util.NewMoney(language.BritishEnglish, currency.GBP), domain.DefaultEstimateInput())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(e *Estimator, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = e.Update(m)
	}
	return cmd
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimator_Defaults(t *testing.T) {
	e := newTestEstimator()

	est := e.Estimate()
	if !floatEquals(est.AnnualFees, 240000) {
		t.Errorf("expected 240000 annual fees, got %f", est.AnnualFees)
	}
	if !floatEquals(est.PerHire, 12000) {
		t.Errorf("expected 12000 per hire, got %f", est.PerHire)
	}

	view := e.View()
	for _, want := range []string{"£240,000", "£12,000", "£96,000", "£168,000", "40%", "70%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestEstimator_RecalculatesOnEdit(t *testing.T) {
	e := newTestEstimator()

	// hires "20" -> "2"
	send(e, key("backspace"))
	if !floatEquals(e.Estimate().AnnualFees, 24000) {
		t.Errorf("expected 24000 after edit, got %f", e.Estimate().AnnualFees)
	}

	// hires "2" -> "" counts as zero
	send(e, key("backspace"))
	est := e.Estimate()
	if est.AnnualFees != 0 || est.PerHire != 0 {
		t.Errorf("expected zero estimate for empty hires, got %+v", est)
	}

	// hires "" -> "abc" is malformed and counts as zero
	send(e, key("abc"))
	if e.Estimate().AnnualFees != 0 {
		t.Errorf("expected zero for malformed hires, got %f", e.Estimate().AnnualFees)
	}
}

func TestEstimator_FocusCycles(t *testing.T) {
	e := newTestEstimator()

	tests := []struct {
		key  string
		want int
	}{
		{"tab", 1},
		{"tab", 2},
		{"tab", 0},
		{"shift+tab", 2},
		{"shift+tab", 1},
	}
	for _, tt := range tests {
		send(e, key(tt.key))
		if got := e.Focused(); got != tt.want {
			t.Errorf("after %s: focus = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestEstimator_EditsFocusedFieldOnly(t *testing.T) {
	e := newTestEstimator()

	// percent "20" -> "2"
	send(e, key("tab"), key("tab"), key("backspace"))

	est := e.Estimate()
	if !floatEquals(est.Input.Hires, 20) {
		t.Errorf("hires changed unexpectedly: %f", est.Input.Hires)
	}
	if !floatEquals(est.Input.AgencyFeePercent, 2) {
		t.Errorf("expected percent 2, got %f", est.Input.AgencyFeePercent)
	}
	if !floatEquals(est.AnnualFees, 24000) {
		t.Errorf("expected 24000, got %f", est.AnnualFees)
	}
}

func TestEstimator_NegativeClamped(t *testing.T) {
	e := NewEstimator(util.NewMoney(language.BritishEnglish, currency.GBP), domain.EstimateInput{
		Hires: -5, AverageSalary: 60000, AgencyFeePercent: 20,
	})

	est := e.Estimate()
	if est.AnnualFees != 0 || est.PerHire != 0 {
		t.Errorf("expected negative hires to behave as zero, got %+v", est)
	}
}

func TestEstimator_Quit(t *testing.T) {
	e := newTestEstimator()

	cmd := send(e, key("esc"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if e.View() != "" {
		t.Error("expected empty view after quit")
	}
}
