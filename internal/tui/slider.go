package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wishmaker/internal/color"
)

const (
	sliderLabelWidth = 9
	sliderValueWidth = 11
	minSliderWidth   = 10

	sliderFPS       = 60
	springFrequency = 18.0
	springDamping   = 1.0
)

// sliderFrameMsg advances one slider's spring by a frame.
// tag drops frames from an animation that was superseded.
type sliderFrameMsg struct {
	channel color.Channel
	tag     int
}

// Slider shows one channel's value as a bar
type Slider struct {
	channel   color.Channel
	bar       progress.Model
	value     float64 // target
	shown     float64 // position currently drawn
	velocity  float64
	spring    harmonica.Spring
	tag       int
	animating bool
}

// NewSlider creates a slider for ch
func NewSlider(ch color.Channel, width int) Slider {
	bar := progress.New(
		progress.WithSolidFill(channelFill(ch)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = ColorBorder

	return Slider{
		channel: ch,
		bar:     bar,
		spring:  harmonica.NewSpring(harmonica.FPS(sliderFPS), springFrequency, springDamping),
	}
}

// Channel returns the channel this slider controls
func (s Slider) Channel() color.Channel {
	return s.channel
}

// Value returns the value the slider currently represents
func (s Slider) Value() float64 {
	return s.value
}

// Set moves the slider without animation
func (s *Slider) Set(v float64) {
	s.value = v
	s.shown = v
	s.velocity = 0
	s.animating = false
	s.tag++
}

// AnimateTo springs the slider from where it is drawn now to v
func (s *Slider) AnimateTo(v float64) tea.Cmd {
	s.value = v
	s.animating = true
	s.tag++
	return s.nextFrame()
}

func (s Slider) nextFrame() tea.Cmd {
	msg := sliderFrameMsg{channel: s.channel, tag: s.tag}
	return tea.Tick(time.Second/sliderFPS, func(time.Time) tea.Msg {
		return msg
	})
}

// SetWidth resizes the bar
func (s *Slider) SetWidth(w int) {
	if w < minSliderWidth {
		w = minSliderWidth
	}
	s.bar.Width = w
}

// Update steps the spring on this slider's frames
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	frame, ok := msg.(sliderFrameMsg)
	if !ok || frame.channel != s.channel || frame.tag != s.tag || !s.animating {
		return s, nil
	}

	s.shown, s.velocity = s.spring.Update(s.shown, s.velocity, s.value)
	if math.Abs(s.shown-s.value) < 0.001 && math.Abs(s.velocity) < 0.01 {
		s.shown = s.value
		s.velocity = 0
		s.animating = false
		return s, nil
	}
	return s, s.nextFrame()
}

// View renders the label, the bar and the numeric value
func (s Slider) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().
		Width(sliderLabelWidth).
		Foreground(lipgloss.Color(ColorSecondaryText))
	marker := "  "
	if focused {
		labelStyle = labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		marker = "▶ "
	}

	bar := s.bar.ViewAs(color.Clamp(s.shown))

	valueStyle := lipgloss.NewStyle().
		Width(sliderValueWidth).
		Align(lipgloss.Right).
		Foreground(lipgloss.Color(ColorPrimaryText))
	value := fmt.Sprintf("%.2f (%3d)", s.value, int(s.value*255+0.5))

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStyle.Render(marker+s.channel.String()),
		bar,
		valueStyle.Render(value),
	)
}
