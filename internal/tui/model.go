package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/production"
)

// target addresses one visible counter.
type target struct {
	section string
	label   string
}

// Model is the bubbletea model over a gallery. Nothing is cached between
// messages: every View re-reads the sections, so derived steps and the visible
// range of a collection are recomputed per render.
type Model struct {
	gallery *reducerx.Gallery
	keys    KeyMap
	help    help.Model
	styles  Styles
	logger  *zap.Logger

	transitions <-chan core.Transition
	last        *core.Transition

	cursor int
	err    error
	quit   bool
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithLogger logs every trigger at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTransitions shows the most recent transition read from ch in a status
// line. ch is drained without blocking after every message.
func WithTransitions(ch <-chan core.Transition) Option {
	return func(m *Model) { m.transitions = ch }
}

// New creates a model over g.
func New(g *reducerx.Gallery, opts ...Option) Model {
	m := Model{
		gallery: g,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.cursor--
		case key.Matches(msg, m.keys.Down):
			m.cursor++
		case key.Matches(msg, m.keys.Increment):
			m.err = m.press(reducerx.OpIncrement)
		case key.Matches(msg, m.keys.Decrement):
			m.err = m.press(reducerx.OpDecrement)
		}
	}
	m.cursor = clamp(m.cursor, len(m.targets()))
	m.drain()
	return m, nil
}

func (m *Model) drain() {
	for {
		select {
		case t, ok := <-m.transitions:
			if !ok {
				m.transitions = nil
				return
			}
			m.last = &t
		default:
			return
		}
	}
}

func (m Model) press(op reducerx.Op) error {
	targets := m.targets()
	if len(targets) == 0 {
		return nil
	}
	t := targets[clamp(m.cursor, len(targets))]
	m.logger.Debug("trigger", zap.String("section", t.section), zap.String("label", t.label), zap.String("op", string(op)))
	return m.gallery.Trigger(t.section, t.label, op)
}

// targets lists the visible counters in page order.
func (m Model) targets() []target {
	var out []target
	for _, s := range m.gallery.Sections() {
		for _, r := range s.Rows {
			out = append(out, target{section: s.Title, label: r.Label})
		}
	}
	return out
}

// Cursor is the index of the focused counter in page order.
func (m Model) Cursor() int { return m.cursor }

// Focused returns the section and label of the focused counter.
func (m Model) Focused() (section, label string, ok bool) {
	targets := m.targets()
	if len(targets) == 0 {
		return "", "", false
	}
	t := targets[clamp(m.cursor, len(targets))]
	return t.section, t.label, true
}

// Last is the most recent transition seen on the WithTransitions channel.
func (m Model) Last() (core.Transition, bool) {
	if m.last == nil {
		return core.Transition{}, false
	}
	return *m.last, true
}

// Err is the error of the last trigger, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.gallery.ID()))
	b.WriteString("\n")

	i := 0
	for _, s := range m.gallery.Sections() {
		b.WriteString(m.styles.Section.Render(s.Title) + " " + m.styles.Kind.Render(string(s.Kind)))
		b.WriteString("\n")
		for _, r := range s.Rows {
			line := production.FormatRow(r)
			if i == m.cursor {
				b.WriteString(m.styles.Focused.Render("> " + line))
			} else {
				b.WriteString(m.styles.Row.Render("  " + line))
			}
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	}

	if t := m.last; t != nil {
		b.WriteString(m.styles.Kind.Render(fmt.Sprintf("last: %s %s %v -> %v", t.Store, t.Action, t.Before, t.After)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts an interactive program over g and blocks until the user quits.
func Run(g *reducerx.Gallery, opts ...Option) error {
	_, err := tea.NewProgram(New(g, opts...), tea.WithAltScreen()).Run()
	return err
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
