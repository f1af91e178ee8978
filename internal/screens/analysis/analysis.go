// Package analysis is the employee profile form. Submitting it runs one
// prediction and opens the result screen.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/features"
	"github.com/abhisek/churnlens/internal/form"
	"github.com/abhisek/churnlens/internal/predict"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
	"github.com/abhisek/churnlens/internal/screens/result"
	"github.com/abhisek/churnlens/internal/ui/components"
	"github.com/abhisek/churnlens/internal/ui/layout"
)

// Predictor is the part of predict.Predictor the form needs.
type Predictor interface {
	Predict(ctx context.Context, p form.Profile) (predict.Result, error)
}

// control is one on-screen input bound to a form field.
type control struct {
	field  form.Field
	number components.NumberInput
	choice components.Select
}

func (c control) value() string {
	if c.field.Kind == form.KindSelect {
		return c.choice.Value()
	}
	return strconv.Itoa(c.number.Value())
}

// AnalysisScreen collects a profile and submits it.
type AnalysisScreen struct {
	schema    *form.Schema
	predictor Predictor
	log       *zap.Logger
	text      texts

	controls []control
	focus    int // len(controls) is the submit button
	submit   components.Button
	errMsg   string
	notice   string
}

var _ screen.Screen = (*AnalysisScreen)(nil)

// New creates the form pre-filled with the schema defaults.
func New(schema *form.Schema, predictor Predictor, log *zap.Logger) *AnalysisScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AnalysisScreen{
		schema:    schema,
		predictor: predictor,
		log:       log,
		text:      textsFor(schema.Locale()),
	}
	s.submit = components.NewButton(s.text.submit, false, nil)
	s.notice = s.domainNotice()
	s.load(schema.Defaults())
	return s
}

// domainNotice describes ordinal options the dataset offers but validation
// will reject, or "" when the dataset and the classifier agree.
func (s *AnalysisScreen) domainNotice() string {
	lo, hi := form.OrdinalDomain[0], form.OrdinalDomain[len(form.OrdinalDomain)-1]
	var notes []string
	for _, f := range s.schema.Fields() {
		extra, _ := s.schema.OutOfDomain(f.Name)
		if len(extra) == 0 {
			continue
		}
		vals := make([]string, len(extra))
		for i, v := range extra {
			vals[i] = strconv.Itoa(v)
		}
		notes = append(notes, fmt.Sprintf(s.text.outOfDomain, s.schema.Label(f.Name), strings.Join(vals, ", "), lo, hi))
	}
	return strings.Join(notes, " ")
}

// load rebuilds the controls from p.
func (s *AnalysisScreen) load(p form.Profile) {
	fields := s.schema.Fields()
	s.controls = make([]control, len(fields))
	for i, f := range fields {
		raw, _ := p.Get(f.Name)
		c := control{field: f}
		if f.Kind == form.KindSelect {
			name := f.Name
			c.choice = components.NewSelect(f.Options, raw, func(v string) string {
				return s.schema.OptionLabel(name, v)
			})
		} else {
			v, _ := strconv.Atoi(raw)
			c.number = components.NewNumberInput(v, f.Min, f.Max, f.HasMax())
		}
		s.controls[i] = c
	}
	s.focus = 0
}

func (s *AnalysisScreen) Init() tea.Cmd {
	return s.focusCurrent()
}

func (s *AnalysisScreen) Title() string {
	return s.text.title
}

// KeyHints implements screen.KeyHintProvider.
func (s *AnalysisScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: s.text.navigate},
		{Key: "←→", Description: s.text.change},
		{Key: "Ctrl+S", Description: s.text.submit},
		{Key: "Ctrl+R", Description: s.text.reset},
		{Key: "Esc", Description: s.text.back},
	}
}

// Profile returns the profile currently shown, clamped into bounds.
func (s *AnalysisScreen) Profile() form.Profile {
	var p form.Profile
	for _, c := range s.controls {
		// Field names come from the schema, Set cannot fail.
		_ = p.Set(c.field.Name, c.value())
	}
	return p.Clamp()
}

// Notice returns the dataset/classifier mismatch note, or "".
func (s *AnalysisScreen) Notice() string {
	return s.notice
}

// Err returns the inline error of the last submission, or "".
func (s *AnalysisScreen) Err() string {
	return s.errMsg
}

func (s *AnalysisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s.forward(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.move(1)
	case "shift+tab", "up":
		return s, s.move(-1)
	case "ctrl+s":
		return s.submitProfile()
	case "ctrl+r":
		s.blurCurrent()
		s.load(s.schema.Defaults())
		s.errMsg = ""
		return s, s.focusCurrent()
	case "enter":
		if s.focus == len(s.controls) {
			return s.submitProfile()
		}
		return s, s.move(1)
	}

	return s.forward(msg)
}

// forward hands msg to the focused control.
func (s *AnalysisScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.focus >= len(s.controls) {
		var cmd tea.Cmd
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	c := &s.controls[s.focus]
	var cmd tea.Cmd
	if c.field.Kind == form.KindSelect {
		c.choice, cmd = c.choice.Update(msg)
	} else {
		c.number, cmd = c.number.Update(msg)
	}
	return s, cmd
}

// move shifts focus by delta, wrapping around the submit button.
func (s *AnalysisScreen) move(delta int) tea.Cmd {
	s.blurCurrent()
	n := len(s.controls) + 1
	s.focus = (s.focus + delta + n) % n
	return s.focusCurrent()
}

func (s *AnalysisScreen) blurCurrent() {
	if s.focus >= len(s.controls) {
		s.submit.Active = false
		return
	}
	c := &s.controls[s.focus]
	if c.field.Kind == form.KindSelect {
		c.choice = c.choice.Blur()
	} else {
		c.number = c.number.Blur()
	}
}

func (s *AnalysisScreen) focusCurrent() tea.Cmd {
	if s.focus >= len(s.controls) {
		s.submit.Active = true
		return nil
	}
	c := &s.controls[s.focus]
	if c.field.Kind == form.KindSelect {
		c.choice = c.choice.Focus()
		return nil
	}
	var cmd tea.Cmd
	c.number, cmd = c.number.Focus()
	return cmd
}

// submitProfile runs one prediction. On failure the form stays as it is
// with the error shown inline.
func (s *AnalysisScreen) submitProfile() (screen.Screen, tea.Cmd) {
	if blank := s.blankFields(); len(blank) > 0 {
		s.errMsg = s.text.missing + ": " + s.fieldList(blank)
		return s, nil
	}

	p := s.Profile()
	res, err := s.predictor.Predict(context.Background(), p)
	if err != nil {
		s.errMsg = s.describeError(err)
		s.log.Warn("submission failed", zap.Error(err))
		return s, nil
	}

	s.errMsg = ""
	resultScreen := result.New(res, s.schema.Locale())
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: resultScreen}
	}
}

func (s *AnalysisScreen) describeError(err error) string {
	var verr *form.ValidationError
	switch {
	case errors.Is(err, features.ErrNoDeclaredFeatures):
		return s.text.noFeatures
	case errors.As(err, &verr):
		return s.text.invalid + ": " + s.fieldList(verr.Fields)
	default:
		return err.Error()
	}
}

// blankFields names the number inputs left empty.
func (s *AnalysisScreen) blankFields() []string {
	var names []string
	for _, c := range s.controls {
		if c.field.Kind == form.KindNumber && c.number.Blank() {
			names = append(names, c.field.Name)
		}
	}
	return names
}

func (s *AnalysisScreen) fieldList(names []string) string {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = s.schema.Label(n)
	}
	return strings.Join(labels, ", ")
}
