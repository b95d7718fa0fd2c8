// Package screen mediates between the picker's input widgets and the
// color state. Widgets send events in, display surfaces get colors out;
// neither side holds a reference to the other.
package screen

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/balkashynov/wishmaker/internal/color"
)

// Visibility is the shared show/hide state of the three sliders
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Event is an input delivered to Screen.Handle
type Event interface {
	event()
}

// ChannelChanged is sent when a slider moves
type ChannelChanged struct {
	Channel color.Channel
	Value   float64
}

// RandomRequested is sent by the random-color button
type RandomRequested struct{}

// HexSubmitted is sent when the hex field is submitted
type HexSubmitted struct {
	Text string
}

// ToggleSliders is sent by the show/hide button
type ToggleSliders struct{}

func (ChannelChanged) event()  {}
func (RandomRequested) event() {}
func (HexSubmitted) event()    {}
func (ToggleSliders) event()   {}

// Surface displays the current color
type Surface interface {
	Render(c color.Color, cause color.Cause)
}

// SurfaceFunc adapts a function to the Surface interface
type SurfaceFunc func(c color.Color, cause color.Cause)

func (f SurfaceFunc) Render(c color.Color, cause color.Cause) { f(c, cause) }

type attachment struct {
	id      int
	surface Surface
}

// Screen owns one color state and routes events to it
type Screen struct {
	state       *color.State
	sliders     Visibility
	surfaces    []attachment
	nextID      int
	logger      *slog.Logger
	unsubscribe func()
}

// Option configures a Screen
type Option func(*Screen)

// WithLogger sets the logger used for event tracing
func WithLogger(l *slog.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Screen around state. Sliders start visible.
func New(state *color.State, opts ...Option) *Screen {
	s := &Screen{
		state:   state,
		sliders: Visible,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unsubscribe = state.Subscribe(s.broadcast)
	return s
}

// Handle applies one input event.
// The only failure is a malformed hex submission, which returns an error
// wrapping color.ErrInvalidFormat and leaves the color untouched. Blank
// submissions are ignored.
func (s *Screen) Handle(ev Event) error {
	switch ev := ev.(type) {
	case ChannelChanged:
		s.logger.Debug("channel changed", "channel", ev.Channel.String(), "value", ev.Value)
		s.state.SetChannel(ev.Channel, ev.Value)

	case RandomRequested:
		c := s.state.Randomize()
		s.logger.Debug("random color", "hex", color.Encode(c))

	case HexSubmitted:
		if strings.TrimSpace(ev.Text) == "" {
			return nil
		}
		c, err := color.Decode(ev.Text)
		if err != nil {
			s.logger.Warn("rejected hex input", "input", ev.Text, "error", err)
			return err
		}
		s.logger.Debug("hex submitted", "hex", color.Encode(c))
		s.state.SetColor(c)

	case ToggleSliders:
		if s.sliders == Visible {
			s.sliders = Hidden
		} else {
			s.sliders = Visible
		}
		s.logger.Debug("sliders toggled", "visibility", s.sliders.String())

	default:
		return errors.New("screen: unknown event")
	}
	return nil
}

// Attach registers a surface, renders the current color on it right away
// and returns a function that detaches it
func (s *Screen) Attach(surface Surface) (detach func()) {
	id := s.nextID
	s.nextID++
	s.surfaces = append(s.surfaces, attachment{id: id, surface: surface})
	surface.Render(s.state.Current(), color.CauseInitial)

	return func() {
		for i, a := range s.surfaces {
			if a.id == id {
				s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
				return
			}
		}
	}
}

// Current returns the current color
func (s *Screen) Current() color.Color {
	return s.state.Current()
}

// Hex returns the current color as #RRGGBB
func (s *Screen) Hex() string {
	return color.Encode(s.state.Current())
}

// Visibility returns the slider visibility state
func (s *Screen) Visibility() Visibility {
	return s.sliders
}

// SlidersVisible reports whether the sliders are shown
func (s *Screen) SlidersVisible() bool {
	return s.sliders == Visible
}

// Close stops the screen from receiving state changes
func (s *Screen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.surfaces = nil
}

// broadcast pushes every change to every surface, whatever its origin
func (s *Screen) broadcast(c color.Color, cause color.Cause) {
	attached := make([]attachment, len(s.surfaces))
	copy(attached, s.surfaces)
	for _, a := range attached {
		a.surface.Render(c, cause)
	}
}
