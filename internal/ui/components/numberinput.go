package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for bounded integer entry.
// The text only ever holds digits; the value is clamped into [Min, Max]
// when the input loses focus.
type NumberInput struct {
	Model  textinput.Model
	Min    int
	Max    int
	HasMax bool
}

// NewNumberInput creates an unfocused input holding value. When hasMax is
// false the upper bound is ignored.
func NewNumberInput(value, min, max int, hasMax bool) NumberInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 9
	ti.Placeholder = strconv.Itoa(min)
	ti.SetValue(strconv.Itoa(value))

	return NumberInput{
		Model:  ti,
		Min:    min,
		Max:    max,
		HasMax: hasMax,
	}
}

// Focus gives the input keyboard focus.
func (n NumberInput) Focus() (NumberInput, tea.Cmd) {
	cmd := n.Model.Focus()
	return n, cmd
}

// Blur removes focus and rewrites the text as the clamped value. Blank
// text stays blank so the form can flag it.
func (n NumberInput) Blur() NumberInput {
	n.Model.Blur()
	if !n.Blank() {
		n.Model.SetValue(strconv.Itoa(n.Value()))
	}
	return n
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update handles messages. Keys carrying non-digit text are swallowed and
// anything that still slips in (pastes) is reduced to its digits.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.Text != "" && !allDigits(kmsg.Text) {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	if v := n.Model.Value(); !allDigits(v) {
		n.Model.SetValue(digitsOnly(v))
	}
	return n, cmd
}

// Blank reports whether no number has been entered.
func (n NumberInput) Blank() bool {
	return n.Model.Value() == ""
}

// Value returns the clamped integer value. Blank text yields Min; callers
// check Blank before trusting it.
func (n NumberInput) Value() int {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return n.Min
	}
	return n.clamp(v)
}

// InRange reports whether the raw text already lies inside the bounds.
func (n NumberInput) InRange() bool {
	v, err := strconv.Atoi(n.Model.Value())
	return err == nil && v == n.clamp(v)
}

func (n NumberInput) clamp(v int) int {
	if v < n.Min {
		return n.Min
	}
	if n.HasMax && v > n.Max {
		return n.Max
	}
	return v
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// View renders the input. Blank text is always flagged, out-of-range text
// while editing.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.Blank() || (n.Model.Focused() && !n.InRange()) {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
