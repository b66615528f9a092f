package grid

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilmatt/rangegrid/internal/hand"
)

type intent struct {
	hand hand.Label
	mode Mode
}

type harness struct {
	engine    *Engine
	selection map[hand.Label]string
	intents   []intent
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{selection: map[hand.Label]string{}}

	cfg.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	if cfg.ActiveAction == "" {
		cfg.ActiveAction = "raise"
	}
	cfg.Assignment = func(l hand.Label) (string, bool) {
		id, ok := h.selection[l]
		return id, ok
	}
	cfg.OnIntent = func(l hand.Label, m Mode) {
		h.intents = append(h.intents, intent{hand: l, mode: m})
		// Apply the intent like the owning collaborator would.
		if m == Select {
			h.selection[l] = cfg.ActiveAction
		} else {
			delete(h.selection, l)
		}
	}

	h.engine = NewEngine(cfg)
	return h
}

func TestTapSelectsUnassignedCell(t *testing.T) {
	h := newHarness(t, Config{})

	h.engine.MouseDown("AA")
	h.engine.MouseUp()

	require.Len(t, h.intents, 1, "tap emits exactly one intent, release adds nothing")
	assert.Equal(t, intent{"AA", Select}, h.intents[0])
}

func TestTapDeselectsCellAssignedToActiveAction(t *testing.T) {
	h := newHarness(t, Config{ActiveAction: "raise"})
	h.selection["AA"] = "raise"

	h.engine.MouseDown("AA")
	h.engine.MouseUp()

	require.Len(t, h.intents, 1)
	assert.Equal(t, intent{"AA", Deselect}, h.intents[0])
}

func TestTapSelectsCellAssignedToOtherAction(t *testing.T) {
	h := newHarness(t, Config{ActiveAction: "raise"})
	h.selection["AA"] = "call"

	h.engine.MouseDown("AA")

	require.Len(t, h.intents, 1)
	assert.Equal(t, intent{"AA", Select}, h.intents[0], "repainting with another action selects")
}

func TestDragEmitsEachNewCellOnceWithFixedMode(t *testing.T) {
	h := newHarness(t, Config{ActiveAction: "raise"})
	// KK is already raised; the mode is fixed from the first cell and
	// never recomputed, so KK still gets a select intent mid-drag.
	h.selection["KK"] = "raise"

	h.engine.MouseDown("AA")
	h.engine.MouseEnter("KK")
	h.engine.MouseEnter("QQ")
	h.engine.MouseEnter("QQ") // same cell, no duplicate
	h.engine.MouseEnter("AA") // re-entering a painted cell, no duplicate
	h.engine.MouseUp()

	require.Len(t, h.intents, 3)
	assert.Equal(t, []intent{
		{"AA", Select},
		{"KK", Select},
		{"QQ", Select},
	}, h.intents)
	for _, it := range h.intents {
		assert.Equal(t, Select, it.mode)
	}
}

func TestDeselectDragKeepsMode(t *testing.T) {
	h := newHarness(t, Config{ActiveAction: "raise"})
	h.selection["AA"] = "raise"
	// QQ is unassigned but still receives the session's deselect mode.

	h.engine.MouseDown("AA")
	h.engine.MouseEnter("QQ")
	h.engine.MouseUp()

	assert.Equal(t, []intent{
		{"AA", Deselect},
		{"QQ", Deselect},
	}, h.intents)
}

func TestReleaseOutsideGridTerminatesSession(t *testing.T) {
	h := newHarness(t, Config{})

	h.engine.MouseDown("AA")
	h.engine.MouseUp() // released anywhere in the viewport
	h.engine.MouseEnter("KK")

	require.Len(t, h.intents, 1, "movement after release emits nothing")
	assert.False(t, h.engine.Active())
}

func TestReadOnlyIgnoresInteraction(t *testing.T) {
	h := newHarness(t, Config{ReadOnly: true})

	h.engine.MouseDown("AA")
	h.engine.MouseEnter("KK")
	h.engine.MouseUp()
	h.engine.TouchStart("QQ")
	h.engine.TouchEnd()

	assert.Empty(t, h.intents)
}

func TestBackgroundDisplayIgnoresInteraction(t *testing.T) {
	h := newHarness(t, Config{BackgroundDisplay: true})

	h.engine.MouseDown("AA")
	h.engine.TouchStart("KK")

	assert.Empty(t, h.intents)
}

func TestEnablingReadOnlyClosesOpenSession(t *testing.T) {
	h := newHarness(t, Config{})

	h.engine.MouseDown("AA")
	h.engine.SetReadOnly(true)
	h.engine.MouseEnter("KK")

	require.Len(t, h.intents, 1)
	assert.False(t, h.engine.Active())
}

func TestSecondDownDuringSessionIsIgnored(t *testing.T) {
	h := newHarness(t, Config{})

	h.engine.MouseDown("AA")
	h.engine.MouseDown("KK") // single session by construction

	require.Len(t, h.intents, 1)
	assert.Equal(t, intent{"AA", Select}, h.intents[0])
}

func TestTouchDragHitTestsCoordinates(t *testing.T) {
	layout := Layout{OriginX: 2, OriginY: 1, CellWidth: 5, CellHeight: 1}
	h := newHarness(t, Config{Layout: layout})

	h.engine.TouchStart("AA")
	h.engine.TouchMove(2+5, 1)   // row 0 col 1 -> AKs
	h.engine.TouchMove(2+6, 1)   // still inside AKs, no duplicate
	h.engine.TouchMove(2+5*2, 2) // row 1 col 2 -> KQs
	h.engine.TouchMove(0, 0)     // off-grid, ignored
	h.engine.TouchEnd()

	assert.Equal(t, []intent{
		{"AA", Select},
		{"AKs", Select},
		{"KQs", Select},
	}, h.intents)
	assert.False(t, h.engine.Active())
}

func TestSetLayoutRehitTestsAgainstNewGeometry(t *testing.T) {
	h := newHarness(t, Config{Layout: Layout{CellWidth: 5, CellHeight: 1}})

	// Cells shrink mid-session, as on a terminal resize.
	h.engine.SetLayout(Layout{CellWidth: 3, CellHeight: 1})

	h.engine.TouchStart("AA")
	h.engine.TouchMove(3, 0) // col 1 under the new width -> AKs
	h.engine.TouchEnd()

	assert.Equal(t, []intent{
		{"AA", Select},
		{"AKs", Select},
	}, h.intents, "touch-move must use the updated layout")
}

func TestTouchCancelClosesSession(t *testing.T) {
	layout := Layout{CellWidth: 5, CellHeight: 1}
	h := newHarness(t, Config{Layout: layout})

	h.engine.TouchStart("AA")
	h.engine.TouchCancel()
	h.engine.TouchMove(0, 0)

	require.Len(t, h.intents, 1)
}

func TestSyntheticMouseAfterTouchIsSuppressed(t *testing.T) {
	h := newHarness(t, Config{})

	t.Run("mouse-down during touch gesture", func(t *testing.T) {
		h.engine.TouchStart("AA")
		h.engine.MouseDown("AA") // synthetic, same gesture
		h.engine.TouchEnd()

		require.Len(t, h.intents, 1, "no duplicate session from synthetic mouse")
	})

	t.Run("mouse-down right after touch end", func(t *testing.T) {
		h.intents = nil
		h.engine.TouchStart("KK")
		h.engine.TouchEnd()
		h.engine.MouseDown("KK") // synthetic trailer, consumed

		require.Len(t, h.intents, 1)

		// The next real mouse interaction works normally.
		h.engine.MouseDown("QQ")
		h.engine.MouseUp()
		require.Len(t, h.intents, 2)
		assert.Equal(t, intent{"QQ", Select}, h.intents[1])
	})
}

func TestDraggedFlag(t *testing.T) {
	h := newHarness(t, Config{})

	h.engine.MouseDown("AA")
	assert.False(t, h.engine.Dragging())

	h.engine.MouseEnter("KK")
	assert.True(t, h.engine.Dragging())

	h.engine.MouseUp()
	assert.False(t, h.engine.Dragging())
}

func TestSetActiveActionAppliesToNextSession(t *testing.T) {
	h := newHarness(t, Config{ActiveAction: "raise"})
	h.selection["AA"] = "call"

	h.engine.SetActiveAction("call")
	h.engine.MouseDown("AA")

	require.Len(t, h.intents, 1)
	assert.Equal(t, Deselect, h.intents[0].mode, "mode compares against the new active action")
}
