package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dilmatt/rangegrid/internal/actions"
	"github.com/dilmatt/rangegrid/internal/grid"
	"github.com/dilmatt/rangegrid/internal/hand"
	"github.com/dilmatt/rangegrid/internal/randutil"
	"github.com/dilmatt/rangegrid/internal/style"
)

// Grid chrome: one title row above the grid, one column of left
// padding before the first cell.
const (
	gridOriginX = 1
	gridOriginY = 2

	wideCellWidth    = 5
	compactCellWidth = 4

	// Compact cells below this terminal width (size-variant hint).
	compactThreshold = 90
)

// Options configures a Model.
type Options struct {
	Catalogue *actions.Catalogue
	Initial   map[hand.Label]string
	ReadOnly  bool
	Seed      int64

	// TestMode captures emitted intents instead of relying on the
	// rendered view for assertions.
	TestMode bool
}

// Model is the Bubble Tea model for the range grid editor. It owns
// the selection map and feeds pointer events to the gesture engine,
// which requests selection changes back through its intent callback.
type Model struct {
	logger    *log.Logger
	catalogue *actions.Catalogue

	selection map[hand.Label]string
	engine    *grid.Engine
	layout    grid.Layout
	rng       *rand.Rand

	keys KeyMap
	help help.Model

	activeIdx int
	readOnly  bool
	quitting  bool
	status    string

	// Card preview for the most recently touched hand. Suits are
	// drawn once per hand so the preview stays stable between frames.
	lastHand  hand.Label
	lastCards [2]hand.Card

	width  int
	height int

	testMode        bool
	capturedIntents []string
}

// NewModel creates a grid editor model.
func NewModel(logger *log.Logger, opts Options) *Model {
	cat := opts.Catalogue
	if cat == nil {
		cat = actions.Default()
	}
	selection := make(map[hand.Label]string, len(opts.Initial))
	for l, id := range opts.Initial {
		selection[l] = id
	}

	m := &Model{
		logger:    logger.WithPrefix("tui"),
		catalogue: cat,
		selection: selection,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		rng:       randutil.New(opts.Seed),
		readOnly:  opts.ReadOnly,
		testMode:  opts.TestMode,
		layout: grid.Layout{
			OriginX:    gridOriginX,
			OriginY:    gridOriginY,
			CellWidth:  wideCellWidth,
			CellHeight: 1,
		},
	}

	m.engine = grid.NewEngine(grid.Config{
		Layout:       m.layout,
		ActiveAction: m.activeActionID(),
		ReadOnly:     opts.ReadOnly,
		Assignment: func(l hand.Label) (string, bool) {
			id, ok := m.selection[l]
			return id, ok
		},
		OnIntent: m.applyIntent,
		Logger:   logger,
	})

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// applyIntent is the engine's intent callback: it mutates the
// selection map this model owns.
func (m *Model) applyIntent(l hand.Label, mode grid.Mode) {
	if mode == grid.Select {
		m.selection[l] = m.activeActionID()
	} else {
		delete(m.selection, l)
	}
	m.touchHand(l)

	if m.testMode {
		m.capturedIntents = append(m.capturedIntents, fmt.Sprintf("%s %s", l, mode))
	}
}

func (m *Model) activeActionID() string {
	acts := m.catalogue.Actions()
	if len(acts) == 0 {
		return ""
	}
	return acts[m.activeIdx%len(acts)].ID
}

// touchHand updates the card preview for the given hand.
func (m *Model) touchHand(l hand.Label) {
	if l == m.lastHand {
		return
	}
	m.lastHand = l
	m.lastCards = hand.CardVisuals(l, m.rng)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cw := wideCellWidth
		if m.width > 0 && m.width < compactThreshold {
			cw = compactCellWidth
		}
		m.layout.CellWidth = cw
		m.engine.SetLayout(m.layout)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case key.Matches(msg, m.keys.NextAction):
		m.cycleAction(1)

	case key.Matches(msg, m.keys.PrevAction):
		m.cycleAction(-1)

	case key.Matches(msg, m.keys.PickAction):
		idx := int(msg.String()[0] - '1')
		if idx < m.catalogue.Len() {
			m.activeIdx = idx
			m.engine.SetActiveAction(m.activeActionID())
			m.status = ""
		}

	case key.Matches(msg, m.keys.ReadOnly):
		m.readOnly = !m.readOnly
		m.engine.SetReadOnly(m.readOnly)

	case key.Matches(msg, m.keys.Clear):
		if !m.readOnly {
			clear(m.selection)
			m.status = "cleared"
		}

	case key.Matches(msg, m.keys.Export):
		m.status = m.exportNotation()
	}

	return m, nil
}

func (m *Model) cycleAction(step int) {
	n := m.catalogue.Len()
	if n == 0 {
		return
	}
	m.activeIdx = (m.activeIdx + step + n) % n
	m.engine.SetActiveAction(m.activeActionID())
	m.status = ""
}

// updateMouse feeds mouse events to the gesture engine. Down events
// are hit-tested here (the terminal reports coordinates, not cells);
// motion while a session is open extends the drag; release closes
// the session wherever it lands.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if l, ok := m.layout.CellAt(msg.X, msg.Y); ok {
			m.engine.MouseDown(l)
		}

	case tea.MouseActionMotion:
		if !m.engine.Active() {
			return
		}
		if l, ok := m.layout.CellAt(msg.X, msg.Y); ok {
			m.engine.MouseEnter(l)
		}

	case tea.MouseActionRelease:
		m.engine.MouseUp()
	}
}

// exportNotation renders the hands painted with the active action as
// compact range notation.
func (m *Model) exportNotation() string {
	active := m.activeActionID()
	set := make(map[hand.Label]struct{})
	for l, id := range m.selection {
		if id == active {
			set[l] = struct{}{}
		}
	}
	if len(set) == 0 {
		return fmt.Sprintf("%s: empty", active)
	}
	return fmt.Sprintf("%s: %s", active, hand.RenderNotation(set))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := TitleStyle.Render("rangegrid")
	if m.readOnly {
		title += " " + ReadOnlyStyle.Render("[read-only]")
	}

	gridBlock := m.renderGrid()
	sidebar := m.renderSidebar()
	body := lipgloss.JoinHorizontal(lipgloss.Top, gridBlock, "  ", sidebar)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", m.renderStatusBar())
}

func (m *Model) renderGrid() string {
	cw := m.layout.CellWidth
	var rows []string
	g := hand.Grid()
	for row := range hand.GridSize {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", gridOriginX))
		for col := range hand.GridSize {
			l := g[row][col]
			cell := style.For(l, m.selection, m.catalogue)
			b.WriteString(cell.Render(string(l), cw))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(SidebarHeaderStyle.Render("Actions"))
	b.WriteString("\n")
	for i, a := range m.catalogue.Actions() {
		marker := "  "
		lineStyle := ActionStyle
		if i == m.activeIdx%m.catalogue.Len() {
			marker = "> "
			lineStyle = ActiveActionStyle
		}
		b.WriteString(lineStyle.Render(fmt.Sprintf("%s%d %s %s", marker, i+1, swatch(a), a.ID)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ComboStyle.Render(fmt.Sprintf("Combos: %.1f / 1326", m.catalogue.Combos(m.selection))))
	b.WriteString("\n")

	if m.lastHand != "" {
		b.WriteString("\n")
		b.WriteString(SidebarHeaderStyle.Render("Hand"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s %s",
			m.lastHand,
			renderCard(m.lastCards[0]),
			renderCard(m.lastCards[1])))
		b.WriteString("\n")
	}

	return b.String()
}

func swatch(a actions.Action) string {
	color := a.Color
	if a.Kind == actions.Weighted {
		color = style.FoldGray
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

func renderCard(c hand.Card) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Suit.Color())).
		Bold(true).
		Render(c.String())
}

func (m *Model) renderStatusBar() string {
	helpView := m.help.View(m.keys)
	if m.status != "" {
		return StatusStyle.Render(m.status) + "  " + helpView
	}
	return helpView
}

// Selection returns a copy of the current selection map.
func (m *Model) Selection() map[hand.Label]string {
	out := make(map[hand.Label]string, len(m.selection))
	for l, id := range m.selection {
		out[l] = id
	}
	return out
}

// CapturedIntents returns the intents recorded in test mode, as
// "HAND mode" strings in emission order.
func (m *Model) CapturedIntents() []string {
	if !m.testMode {
		return nil
	}
	out := make([]string, len(m.capturedIntents))
	copy(out, m.capturedIntents)
	return out
}
