package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/router"
	"github.com/abhisek/churnlens/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory, locale.English), &callCount
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	view := w.View(100, 30)
	if containsBanner(view) {
		t.Error("banner should not be visible at start")
	}
	if w.ringShare() != 0 {
		t.Errorf("expected empty ring at start, got %v", w.ringShare())
	}

	sendTicks(w, 5)
	if w.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", w.elapsed)
	}
	if got := w.ringShare(); got <= 0 || got >= logoShare {
		t.Errorf("expected ring mid-fill, got %v", got)
	}

	sendTicks(w, 10)
	if w.ringShare() != logoShare {
		t.Errorf("expected ring settled at %v, got %v", logoShare, w.ringShare())
	}
	view = w.View(100, 30)
	if !containsBanner(view) {
		t.Error("banner should be visible after phase 2")
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestTicksStopAfterAnimation(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	_, cmd := sendTicks(w, 40)
	if cmd != nil {
		t.Error("expected ticking to stop once the animation completes")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, 40)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

func TestTaglineFollowsLocale(t *testing.T) {
	w := New(func() screen.Screen { return &stubScreen{} }, locale.Portuguese)
	sendTicks(w, 40)
	if !strings.Contains(w.View(100, 30), "rotatividade") {
		t.Error("expected the Portuguese tagline")
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	if !strings.Contains(RenderBanner(60), bannerCompact) {
		t.Error("expected compact banner below the art width")
	}
}

func containsBanner(s string) bool {
	// The tagline appears together with the banner.
	return strings.Contains(s, "at a glance")
}
