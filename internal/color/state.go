package color

import "math/rand/v2"

// Cause tells observers which kind of input produced a change
type Cause int

const (
	CauseSlider Cause = iota
	CauseRandom
	CauseHex
	// CauseInitial marks the first render of a newly attached display
	CauseInitial
)

func (c Cause) String() string {
	switch c {
	case CauseSlider:
		return "slider"
	case CauseRandom:
		return "random"
	case CauseHex:
		return "hex"
	case CauseInitial:
		return "initial"
	default:
		return "unknown"
	}
}

// Observer is called with the new color after every change
type Observer func(c Color, cause Cause)

type subscription struct {
	id int
	fn Observer
}

// State is the single source of truth for the current color.
//
// It is not safe for concurrent use; all mutations are expected to come
// from one event loop. Observers run synchronously inside the mutating call
// and are only notified when the stored color actually changes.
type State struct {
	current   Color
	rng       *rand.Rand
	observers []subscription
	nextID    int
}

// StateOption configures a State
type StateOption func(*State)

// WithRand sets the random source used by Randomize
func WithRand(r *rand.Rand) StateOption {
	return func(s *State) {
		s.rng = r
	}
}

// NewState creates a State holding initial
func NewState(initial Color, opts ...StateOption) *State {
	s := &State{current: initial}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Current returns the stored color
func (s *State) Current() Color {
	return s.current
}

// SetChannel clamps v and stores it in one channel, leaving the others as is.
// Invalid channels are ignored.
func (s *State) SetChannel(ch Channel, v float64) {
	if !ch.Valid() {
		return
	}
	s.store(s.current.With(ch, v), CauseSlider)
}

// SetColor replaces the whole color
func (s *State) SetColor(c Color) {
	s.store(NewColor(c.red, c.green, c.blue), CauseHex)
}

// Randomize replaces the color with three independent uniform samples and
// returns it
func (s *State) Randomize() Color {
	c := NewColor(s.rng.Float64(), s.rng.Float64(), s.rng.Float64())
	s.store(c, CauseRandom)
	return c
}

// Subscribe registers fn and returns a function that removes it again
func (s *State) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) store(c Color, cause Cause) {
	if c == s.current {
		return
	}
	s.current = c

	// Copy so observers may unsubscribe while being notified
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	for _, sub := range subs {
		sub.fn(c, cause)
	}
}
