package color

import (
	"math/rand/v2"
	"testing"
)

type notification struct {
	color Color
	cause Cause
}

func newRecordingState(initial Color) (*State, *[]notification) {
	s := NewState(initial, WithRand(rand.New(rand.NewPCG(1, 2))))
	var got []notification
	s.Subscribe(func(c Color, cause Cause) {
		got = append(got, notification{c, cause})
	})
	return s, &got
}

func TestState_SetChannel(t *testing.T) {
	s, got := newRecordingState(Color{})

	s.SetChannel(Green, 1.5)

	want := NewColor(0, 1, 0)
	if s.Current() != want {
		t.Errorf("expected %v, got %v", want, s.Current())
	}
	if len(*got) != 1 || (*got)[0].color != want || (*got)[0].cause != CauseSlider {
		t.Errorf("expected one slider notification with %v, got %+v", want, *got)
	}
}

func TestState_SetChannel_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-3, 0},
		{-0.0001, 0},
		{0.42, 0.42},
		{1.0001, 1},
		{99, 1},
	}
	for _, tt := range tests {
		s := NewState(NewColor(0.5, 0.5, 0.5))
		s.SetChannel(Red, tt.v)
		if got := s.Current().Red(); got != tt.want {
			t.Errorf("SetChannel(Red, %v) stored %v, want %v", tt.v, got, tt.want)
		}
		if s.Current().Green() != 0.5 || s.Current().Blue() != 0.5 {
			t.Errorf("SetChannel(Red, %v) touched other channels: %v", tt.v, s.Current())
		}
	}
}

func TestState_NoNotificationWhenUnchanged(t *testing.T) {
	s, got := newRecordingState(NewColor(0, 1, 0))

	s.SetChannel(Green, 5)
	s.SetChannel(Red, -1)
	s.SetColor(NewColor(0, 1, 0))
	s.SetChannel(Channel(-1), 0.5)

	if len(*got) != 0 {
		t.Errorf("expected no notifications, got %d", len(*got))
	}
}

func TestState_SetColor(t *testing.T) {
	s, got := newRecordingState(Color{})
	c := NewColor(0.2, 0.4, 0.6)

	s.SetColor(c)

	if s.Current() != c {
		t.Errorf("expected %v, got %v", c, s.Current())
	}
	if len(*got) != 1 || (*got)[0].cause != CauseHex {
		t.Errorf("expected one hex notification, got %+v", *got)
	}
}

func TestState_Randomize(t *testing.T) {
	s, got := newRecordingState(Color{})

	first := s.Randomize()
	second := s.Randomize()

	for _, c := range []Color{first, second} {
		for _, ch := range Channels {
			if v := c.Get(ch); v < 0 || v > 1 {
				t.Errorf("%s out of range: %v", ch, v)
			}
		}
	}
	if first == second {
		t.Errorf("expected two independent samples, got %v twice", first)
	}
	if s.Current() != second {
		t.Errorf("expected current %v, got %v", second, s.Current())
	}
	if len(*got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(*got))
	}
	if (*got)[0].color != first || (*got)[0].cause != CauseRandom {
		t.Errorf("first notification should carry the whole new color, got %+v", (*got)[0])
	}
}

func TestState_Unsubscribe(t *testing.T) {
	s := NewState(Color{})
	calls := 0
	unsubscribe := s.Subscribe(func(Color, Cause) { calls++ })

	s.SetChannel(Red, 1)
	unsubscribe()
	s.SetChannel(Red, 0)
	unsubscribe()

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestState_UnsubscribeDuringNotify(t *testing.T) {
	s := NewState(Color{})
	var order []string
	var unsubscribeA func()
	unsubscribeA = s.Subscribe(func(Color, Cause) {
		order = append(order, "a")
		unsubscribeA()
	})
	s.Subscribe(func(Color, Cause) { order = append(order, "b") })

	s.SetChannel(Blue, 1)
	s.SetChannel(Blue, 0)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "b" {
		t.Errorf("unexpected notification order %v", order)
	}
}
