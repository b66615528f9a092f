// Package style maps painted hands to their visual cell style: solid
// fills for simple actions and left-to-right splits for weighted ones.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dilmatt/rangegrid/internal/actions"
	"github.com/dilmatt/rangegrid/internal/hand"
)

const (
	// FoldGray is the fixed muted gray a weighted component id of
	// "fold" resolves to, regardless of catalogue contents.
	FoldGray = "#6B7280"

	// fallback for component ids the catalogue cannot resolve.
	fallbackColor = "#FFFFFF"
)

// Split describes a weighted fill: the left color covers Percent of
// the cell width, the right color the remainder.
type Split struct {
	Left    string
	Right   string
	Percent int
}

// Cell is the computed style for one grid cell. The zero value means
// "no style": the hand is unassigned or its action id is unknown.
type Cell struct {
	Assigned bool
	Fill     string // solid fill, simple actions
	Text     string // contrasting text color
	Split    *Split // set for weighted actions
}

// For computes the cell style for a hand given the current selection
// and the action catalogue. Unassigned hands and ids missing from the
// catalogue get the zero style.
func For(l hand.Label, selection map[hand.Label]string, cat *actions.Catalogue) Cell {
	id, ok := selection[l]
	if !ok {
		return Cell{}
	}
	a, ok := cat.Lookup(id)
	if !ok {
		return Cell{}
	}

	if a.Kind == actions.Weighted {
		return Cell{
			Assigned: true,
			Split: &Split{
				Left:    resolveComponent(a.Action1, cat),
				Right:   resolveComponent(a.Action2, cat),
				Percent: a.Weight,
			},
		}
	}

	return Cell{
		Assigned: true,
		Fill:     a.Color,
		Text:     ContrastText(a.Color),
	}
}

// resolveComponent resolves a weighted component id to a fill color.
// "fold" is always the fixed gray; ids without a simple catalogue
// entry fall back to white.
func resolveComponent(id string, cat *actions.Catalogue) string {
	if id == actions.FoldID {
		return FoldGray
	}
	if a, ok := cat.Lookup(id); ok && a.Kind == actions.Simple {
		return a.Color
	}
	return fallbackColor
}

// ContrastText picks a readable text color for the given background.
func ContrastText(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#FAFAFA"
	}
	// Perceived luminance; light backgrounds get dark text.
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.55 {
		return "#1F2937"
	}
	return "#FAFAFA"
}

// Render draws content into a cell of the given width using the
// computed style. Weighted fills split the padded content at the
// weight percentage of the width, which is the terminal equivalent of
// a hard-stop linear gradient.
func (c Cell) Render(content string, width int) string {
	if width < 1 {
		width = 1
	}
	padded := padCenter(content, width)

	if !c.Assigned {
		return lipgloss.NewStyle().Render(padded)
	}

	if c.Split != nil {
		cut := (width*c.Split.Percent + 50) / 100
		if cut < 0 {
			cut = 0
		}
		if cut > width {
			cut = width
		}
		left := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Split.Left)).
			Foreground(lipgloss.Color(ContrastText(c.Split.Left)))
		right := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Split.Right)).
			Foreground(lipgloss.Color(ContrastText(c.Split.Right)))
		return left.Render(padded[:cut]) + right.Render(padded[cut:])
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Fill)).
		Foreground(lipgloss.Color(c.Text)).
		Render(padded)
}

// padCenter pads or truncates content to exactly width cells. Labels
// are ASCII so byte slicing is safe here.
func padCenter(content string, width int) string {
	if len(content) >= width {
		return content[:width]
	}
	gap := width - len(content)
	left := gap / 2
	return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
}
