package screen

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/balkashynov/wishmaker/internal/color"
)

type recordingSurface struct {
	colors []color.Color
	causes []color.Cause
}

func (r *recordingSurface) Render(c color.Color, cause color.Cause) {
	r.colors = append(r.colors, c)
	r.causes = append(r.causes, cause)
}

func (r *recordingSurface) last() color.Color {
	return r.colors[len(r.colors)-1]
}

func newTestScreen(initial color.Color) (*Screen, *recordingSurface) {
	state := color.NewState(initial, color.WithRand(rand.New(rand.NewPCG(7, 11))))
	s := New(state)
	surface := &recordingSurface{}
	s.Attach(surface)
	return s, surface
}

func TestNew_InitialState(t *testing.T) {
	s, surface := newTestScreen(color.NewColor(1, 0.5, 0))

	if !s.SlidersVisible() || s.Visibility() != Visible {
		t.Errorf("expected sliders visible initially")
	}
	if len(surface.colors) != 1 || surface.causes[0] != color.CauseInitial {
		t.Fatalf("expected initial render on attach, got %+v", surface.causes)
	}
	if surface.colors[0] != color.NewColor(1, 0.5, 0) {
		t.Errorf("initial render got %v", surface.colors[0])
	}
	if s.Hex() != "#FF8000" {
		t.Errorf("expected #FF8000, got %s", s.Hex())
	}
}

func TestHandle_ChannelChanged(t *testing.T) {
	s, surface := newTestScreen(color.Color{})

	if err := s.Handle(ChannelChanged{Channel: color.Green, Value: 1.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := color.NewColor(0, 1, 0)
	if s.Current() != want {
		t.Errorf("expected %v, got %v", want, s.Current())
	}
	if surface.last() != want || surface.causes[len(surface.causes)-1] != color.CauseSlider {
		t.Errorf("surface not updated with slider change")
	}
}

func TestHandle_HexSubmitted(t *testing.T) {
	s, surface := newTestScreen(color.Color{})

	if err := s.Handle(HexSubmitted{Text: "#FF5733"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Hex() != "#FF5733" {
		t.Errorf("expected #FF5733, got %s", s.Hex())
	}
	if len(surface.colors) != 2 || surface.causes[1] != color.CauseHex {
		t.Errorf("expected hex change pushed to surface, got %+v", surface.causes)
	}
}

func TestHandle_HexSubmitted_InvalidLeavesStateUntouched(t *testing.T) {
	initial := color.NewColor(0.1, 0.2, 0.3)
	s, surface := newTestScreen(initial)

	for _, text := range []string{"GGGGGG", "#12345G", "0x123456", "FFFFFFF"} {
		err := s.Handle(HexSubmitted{Text: text})
		if !errors.Is(err, color.ErrInvalidFormat) {
			t.Errorf("Handle(%q) expected ErrInvalidFormat, got %v", text, err)
		}
	}

	if s.Current() != initial {
		t.Errorf("state changed after invalid input: %v", s.Current())
	}
	if len(surface.colors) != 1 {
		t.Errorf("expected no renders after invalid input, got %d", len(surface.colors)-1)
	}
}

func TestHandle_HexSubmitted_BlankIgnored(t *testing.T) {
	s, surface := newTestScreen(color.NewColor(0.1, 0.2, 0.3))

	if err := s.Handle(HexSubmitted{Text: "   "}); err != nil {
		t.Errorf("expected blank input to be ignored, got %v", err)
	}
	if len(surface.colors) != 1 {
		t.Errorf("expected no render for blank input")
	}
}

func TestHandle_RandomRequested(t *testing.T) {
	s, surface := newTestScreen(color.Color{})

	if err := s.Handle(RandomRequested{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := s.Current()
	for _, ch := range color.Channels {
		if v := c.Get(ch); v < 0 || v > 1 {
			t.Errorf("%s out of range: %v", ch, v)
		}
	}
	if len(surface.colors) != 2 || surface.last() != c || surface.causes[1] != color.CauseRandom {
		t.Errorf("expected one random render with the whole color, got %+v", surface.causes)
	}
}

func TestHandle_ToggleSlidersIsInvolution(t *testing.T) {
	s, surface := newTestScreen(color.Color{})

	before := s.Visibility()
	if err := s.Handle(ToggleSliders{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SlidersVisible() {
		t.Errorf("expected sliders hidden after one toggle")
	}
	if err := s.Handle(ToggleSliders{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Visibility() != before {
		t.Errorf("expected visibility %v after two toggles, got %v", before, s.Visibility())
	}
	if len(surface.colors) != 1 {
		t.Errorf("toggle must not re-render the color")
	}
}

func TestAttach_Detach(t *testing.T) {
	s, first := newTestScreen(color.Color{})
	second := &recordingSurface{}
	detach := s.Attach(second)

	_ = s.Handle(ChannelChanged{Channel: color.Red, Value: 1})
	detach()
	_ = s.Handle(ChannelChanged{Channel: color.Blue, Value: 1})

	if len(first.colors) != 3 {
		t.Errorf("first surface expected 3 renders, got %d", len(first.colors))
	}
	if len(second.colors) != 2 {
		t.Errorf("detached surface expected 2 renders, got %d", len(second.colors))
	}
}

func TestScreens_AreIndependent(t *testing.T) {
	a, _ := newTestScreen(color.Color{})
	b, _ := newTestScreen(color.Color{})

	_ = a.Handle(ChannelChanged{Channel: color.Red, Value: 1})
	_ = a.Handle(ToggleSliders{})

	if b.Current() != (color.Color{}) || !b.SlidersVisible() {
		t.Errorf("screen b affected by screen a")
	}
}

func TestClose_StopsRendering(t *testing.T) {
	state := color.NewState(color.Color{})
	s := New(state)
	surface := &recordingSurface{}
	s.Attach(surface)
	s.Close()

	state.SetChannel(color.Red, 1)

	if len(surface.colors) != 1 {
		t.Errorf("expected no renders after Close, got %d", len(surface.colors)-1)
	}
}

func TestSurfaceFunc(t *testing.T) {
	s, _ := newTestScreen(color.Color{})
	var got color.Color
	s.Attach(SurfaceFunc(func(c color.Color, _ color.Cause) { got = c }))

	_ = s.Handle(HexSubmitted{Text: "0000FF"})

	if got != color.NewColor(0, 0, 1) {
		t.Errorf("SurfaceFunc not called with new color, got %v", got)
	}
}
