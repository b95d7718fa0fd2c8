package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wishmaker/internal/color"
	"github.com/balkashynov/wishmaker/internal/screen"
)

const (
	cardMaxWidth = 64
	cardMinWidth = 40
)

// PickerOptions tunes slider steps
type PickerOptions struct {
	Step     float64
	FineStep float64
}

// render is one color change delivered by the screen
type render struct {
	color color.Color
	cause color.Cause
}

// renderQueue collects surface renders until Update applies them.
// The model is copied on every Update, so the screen writes here instead
// of into the model.
type renderQueue struct {
	items []render
}

func (q *renderQueue) Render(c color.Color, cause color.Cause) {
	q.items = append(q.items, render{color: c, cause: cause})
}

func (q *renderQueue) drain() []render {
	items := q.items
	q.items = nil
	return items
}

// PickerModel is the single picker screen
type PickerModel struct {
	screen  *screen.Screen
	pending *renderQueue
	opts    PickerOptions

	sliders    []Slider
	focus      int
	hexInput   textinput.Model
	editingHex bool

	background    color.Color
	validationErr string

	keys keyMap
	help help.Model

	width  int
	height int

	quitting bool
}

// NewPickerModel creates the picker around scr and attaches its display
func NewPickerModel(scr *screen.Screen, opts PickerOptions) PickerModel {
	sliders := make([]Slider, 0, len(color.Channels))
	for _, ch := range color.Channels {
		sliders = append(sliders, NewSlider(ch, cardMinWidth-sliderLabelWidth-sliderValueWidth))
	}

	input := textinput.New()
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 16
	input.Width = 12
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := PickerModel{
		screen:   scr,
		pending:  &renderQueue{},
		opts:     opts,
		sliders:  sliders,
		hexInput: input,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	m.keys.setEditing(false, scr.SlidersVisible())

	scr.Attach(m.pending)
	m.applyRenders()

	return m
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		barWidth := m.cardWidth() - 4 - sliderLabelWidth - sliderValueWidth
		for i := range m.sliders {
			m.sliders[i].SetWidth(barWidth)
		}
		return m, nil

	case sliderFrameMsg:
		var cmds []tea.Cmd
		for i := range m.sliders {
			var cmd tea.Cmd
			m.sliders[i], cmd = m.sliders[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.editingHex {
			return m.updateHexInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey handles keys while the hex field is not focused
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + len(m.sliders) - 1) % len(m.sliders)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % len(m.sliders)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.nudge(-m.opts.Step)

	case key.Matches(msg, m.keys.Right):
		return m.nudge(m.opts.Step)

	case key.Matches(msg, m.keys.FineLeft):
		return m.nudge(-m.opts.FineStep)

	case key.Matches(msg, m.keys.FineRight):
		return m.nudge(m.opts.FineStep)

	case key.Matches(msg, m.keys.Random):
		return m.dispatch(screen.RandomRequested{})

	case key.Matches(msg, m.keys.Toggle):
		return m.dispatch(screen.ToggleSliders{})

	case key.Matches(msg, m.keys.Hex):
		m.editingHex = true
		m.validationErr = ""
		m.keys.setEditing(true, m.screen.SlidersVisible())
		return m, m.hexInput.Focus()
	}

	return m, nil
}

// updateHexInput handles keys while typing a hex code
func (m PickerModel) updateHexInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.leaveHexInput()
		m.validationErr = ""
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.hexInput.Value()
		model, cmd := m.dispatch(screen.HexSubmitted{Text: text})
		pm := model.(PickerModel)
		if pm.validationErr == "" {
			pm.leaveHexInput()
		}
		return pm, cmd
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.validationErr = ""
	return m, cmd
}

func (m *PickerModel) leaveHexInput() {
	m.editingHex = false
	m.hexInput.Blur()
	m.hexInput.SetValue("")
	m.keys.setEditing(false, m.screen.SlidersVisible())
}

// nudge moves the focused slider by delta
func (m PickerModel) nudge(delta float64) (tea.Model, tea.Cmd) {
	s := m.sliders[m.focus]
	return m.dispatch(screen.ChannelChanged{
		Channel: s.Channel(),
		Value:   s.Value() + delta,
	})
}

// dispatch sends ev to the screen and applies the resulting renders
func (m PickerModel) dispatch(ev screen.Event) (tea.Model, tea.Cmd) {
	err := m.screen.Handle(ev)
	switch {
	case errors.Is(err, color.ErrInvalidFormat):
		m.validationErr = fmt.Sprintf("%q is not a hex color (use #RRGGBB)", strings.TrimSpace(m.hexInput.Value()))
	case err != nil:
		m.validationErr = err.Error()
	default:
		m.validationErr = ""
	}

	m.keys.setEditing(m.editingHex, m.screen.SlidersVisible())
	return m, m.applyRenders()
}

// applyRenders pushes queued color changes onto the sliders, the
// background and the hex placeholder. Only a random pick animates.
func (m *PickerModel) applyRenders() tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range m.pending.drain() {
		m.background = r.color
		m.hexInput.Placeholder = color.Encode(r.color)
		for i := range m.sliders {
			v := r.color.Get(m.sliders[i].Channel())
			if r.cause == color.CauseRandom {
				cmds = append(cmds, m.sliders[i].AnimateTo(v))
			} else {
				m.sliders[i].Set(v)
			}
		}
	}
	return tea.Batch(cmds...)
}

// Hex returns the color shown when the picker closed
func (m PickerModel) Hex() string {
	return m.screen.Hex()
}

// View renders the TUI
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	bg := lipgloss.Color(color.Encode(m.background))
	fg := lipgloss.Color(contrastText(m.background))

	helpBar := lipgloss.NewStyle().
		Width(m.width).
		Background(bg).
		Foreground(fg).
		Render(m.help.View(m.keys))
	helpHeight := lipgloss.Height(helpBar)

	content := lipgloss.Place(
		m.width,
		max(m.height-helpHeight, 1),
		lipgloss.Center,
		lipgloss.Center,
		m.renderCard(),
		lipgloss.WithWhitespaceBackground(bg),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func (m PickerModel) cardWidth() int {
	w := m.width - 4
	if w > cardMaxWidth {
		w = cardMaxWidth
	}
	if w < cardMinWidth {
		w = cardMinWidth
	}
	return w
}

// renderCard renders the panel floating on the picked background
func (m PickerModel) renderCard() string {
	width := m.cardWidth()
	var rows []string

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	rows = append(rows, titleStyle.Render("WishMaker"))

	descStyle := lipgloss.NewStyle().
		Bold(true).
		Width(width - 4).
		Foreground(lipgloss.Color(ColorDescription))
	rows = append(rows, descStyle.Render("Change the background color in three ways!"), "")

	if m.screen.SlidersVisible() {
		for i, s := range m.sliders {
			rows = append(rows, s.View(i == m.focus && !m.editingHex))
		}
		rows = append(rows, "")
	}

	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1)
	rows = append(rows, lipgloss.JoinHorizontal(
		lipgloss.Top,
		buttonStyle.Render("r  Random Color"),
		"  ",
		buttonStyle.Render("t  Show/Hide Sliders"),
	), "")

	hexLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("Hex ")
	rows = append(rows, hexLabel+m.hexInput.View())

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)
		rows = append(rows, errorStyle.Render("❌ "+m.validationErr))
	}

	h, s, l := m.background.HSL()
	r, g, b := m.background.Bytes()
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	rows = append(rows, "", infoStyle.Render(fmt.Sprintf(
		"%s  rgb(%d, %d, %d)  hsl(%.0f°, %.0f%%, %.0f%%)",
		color.Encode(m.background), r, g, b, h, s*100, l*100,
	)))

	cardStyle := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1, 2)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
