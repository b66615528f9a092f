// Package grid implements the paint-gesture engine for the 13x13
// starting-hand grid: it turns raw pointer and touch events into a
// stream of select/deselect intents, one per newly touched cell per
// continuous interaction.
package grid

import (
	"github.com/charmbracelet/log"

	"github.com/dilmatt/rangegrid/internal/hand"
)

// Mode is the selection intent of an interaction session.
type Mode int

const (
	Select Mode = iota
	Deselect
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Deselect {
		return "deselect"
	}
	return "select"
}

// Config wires an Engine to its collaborators. The engine never owns
// the selection map; it reads assignments through Assignment and
// requests changes through OnIntent.
type Config struct {
	// Layout is used to hit-test touch-move coordinates, which do not
	// retarget to the cell under the finger on their own.
	Layout Layout

	// ActiveAction is the id being painted. The first touched cell's
	// assignment relative to this id fixes the session mode.
	ActiveAction string

	// Assignment reports the current action id for a hand, with ok
	// false when the hand is unassigned.
	Assignment func(hand.Label) (string, bool)

	// OnIntent receives one (hand, mode) intent per newly touched
	// cell during a session.
	OnIntent func(hand.Label, Mode)

	// ReadOnly and BackgroundDisplay disable interaction entirely.
	ReadOnly          bool
	BackgroundDisplay bool

	Logger *log.Logger
}

// session is the transient per-interaction state. The mode is fixed
// when the session opens and never recomputed per cell. Each cell
// emits at most once per session, so wiggling back over an already
// painted cell stays silent.
type session struct {
	mode    Mode
	last    hand.Label
	dragged bool
	visited map[hand.Label]struct{}
}

// Engine is the gesture state machine. All methods run synchronously
// on the UI event loop; there is no internal locking.
type Engine struct {
	cfg Config

	session *session

	// touchActive spans touch-start to touch-end; suppressNextMouse
	// consumes the synthetic mouse-down some event sources emit
	// right after a touch gesture.
	touchActive       bool
	suppressNextMouse bool
}

// NewEngine creates an engine for the given wiring.
func NewEngine(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Engine{cfg: cfg}
}

// SetLayout updates the hit-test geometry, typically after a resize,
// so touch-move coordinates keep resolving against the cells actually
// on screen.
func (e *Engine) SetLayout(l Layout) {
	e.cfg.Layout = l
}

// SetActiveAction changes the action id painted by future sessions.
// An open session keeps the mode it was established with.
func (e *Engine) SetActiveAction(id string) {
	e.cfg.ActiveAction = id
}

// SetReadOnly toggles read-only mode. Enabling it mid-session closes
// the session.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.cfg.ReadOnly = readOnly
	if readOnly {
		e.session = nil
	}
}

// Dragging reports whether an open session has moved beyond its
// first cell.
func (e *Engine) Dragging() bool {
	return e.session != nil && e.session.dragged
}

// Active reports whether an interaction session is open.
func (e *Engine) Active() bool {
	return e.session != nil
}

func (e *Engine) interactive() bool {
	return !e.cfg.ReadOnly && !e.cfg.BackgroundDisplay
}

// open establishes a session from the first touched cell: deselect
// when the cell already carries the active action, select otherwise.
// The opening cell's intent is emitted immediately, so a pure tap is
// fully handled here and release emits nothing.
func (e *Engine) open(l hand.Label) {
	mode := Select
	if id, ok := e.currentAssignment(l); ok && id == e.cfg.ActiveAction {
		mode = Deselect
	}
	e.session = &session{
		mode:    mode,
		last:    l,
		visited: map[hand.Label]struct{}{l: {}},
	}
	e.cfg.Logger.Debug("session opened", "hand", l, "mode", mode)
	e.emit(l, mode)
}

// enter extends an open session into a cell. Cells already touched
// this session are no-ops; a new cell emits the session's fixed mode.
func (e *Engine) enter(l hand.Label) {
	s := e.session
	if s == nil || l == s.last {
		return
	}
	s.last = l
	s.dragged = true
	if _, seen := s.visited[l]; seen {
		return
	}
	s.visited[l] = struct{}{}
	e.emit(l, s.mode)
}

// close ends the session unconditionally with no terminal emission.
func (e *Engine) close() {
	if e.session != nil {
		e.cfg.Logger.Debug("session closed", "dragged", e.session.dragged)
	}
	e.session = nil
}

func (e *Engine) currentAssignment(l hand.Label) (string, bool) {
	if e.cfg.Assignment == nil {
		return "", false
	}
	return e.cfg.Assignment(l)
}

func (e *Engine) emit(l hand.Label, m Mode) {
	if e.cfg.OnIntent != nil {
		e.cfg.OnIntent(l, m)
	}
}

// MouseDown starts a mouse session over a cell. The mouse-down that
// event sources synthesise right after a touch gesture is consumed
// without opening a second session.
func (e *Engine) MouseDown(l hand.Label) {
	if e.touchActive || e.suppressNextMouse {
		e.suppressNextMouse = false
		return
	}
	if !e.interactive() || e.session != nil {
		return
	}
	e.open(l)
}

// MouseEnter extends an open session into the cell under the cursor.
func (e *Engine) MouseEnter(l hand.Label) {
	e.enter(l)
}

// MouseUp closes the session. Release anywhere counts; the cursor
// need not be over the grid.
func (e *Engine) MouseUp() {
	e.close()
}

// TouchStart starts a touch session over a cell and arms suppression
// of the trailing synthetic mouse-down.
func (e *Engine) TouchStart(l hand.Label) {
	e.touchActive = true
	e.suppressNextMouse = true
	if !e.interactive() || e.session != nil {
		return
	}
	e.open(l)
}

// TouchMove extends the session to the cell under the finger. Touch
// events keep their original target, so the cell is resolved by
// hit-testing the coordinates against the layout.
func (e *Engine) TouchMove(x, y int) {
	if e.session == nil {
		return
	}
	if l, ok := e.cfg.Layout.CellAt(x, y); ok {
		e.enter(l)
	}
}

// TouchEnd closes the session.
func (e *Engine) TouchEnd() {
	e.touchActive = false
	e.close()
}

// TouchCancel closes the session; cancelled gestures emit nothing
// further.
func (e *Engine) TouchCancel() {
	e.touchActive = false
	e.close()
}
