package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/ui/theme"
)

// Select is a single-line option picker cycled with the left and right
// arrow keys. Options hold raw values; Label maps them to display text.
type Select struct {
	Options  []string
	Label    func(string) string
	Selected int
	focused  bool
}

// NewSelect creates a selector positioned on value, or on the first
// option when value is not among options.
func NewSelect(options []string, value string, label func(string) string) Select {
	if label == nil {
		label = func(s string) string { return s }
	}
	s := Select{Options: options, Label: label}
	for i, opt := range options {
		if opt == value {
			s.Selected = i
			break
		}
	}
	return s
}

// Focus gives the selector keyboard focus.
func (s Select) Focus() Select {
	s.focused = true
	return s
}

// Blur removes focus.
func (s Select) Blur() Select {
	s.focused = false
	return s
}

// Focused reports whether the selector has focus.
func (s Select) Focused() bool {
	return s.focused
}

// Update handles keyboard cycling. Wraps at both ends.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l", "space":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, nil
}

// Value returns the raw value of the current option.
func (s Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the current option between arrows.
func (s Select) View() string {
	label := s.Label(s.Value())
	if s.focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("◂ " + label + " ▸")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
}
