// Package actions defines the action catalogue a range is painted
// with: simple colored actions and weighted blends of two actions.
package actions

import (
	"fmt"

	"github.com/dilmatt/rangegrid/internal/hand"
)

// Kind distinguishes the two action variants.
type Kind int

const (
	Simple Kind = iota
	Weighted
)

// FoldID is the reserved action id for folding. Components of a
// weighted action may reference it whether or not the catalogue
// defines a fold action.
const FoldID = "fold"

// Action is one paintable entry in the catalogue.
type Action struct {
	ID    string
	Kind  Kind
	Color string // hex fill, simple actions only

	// Weighted blend: Weight percent of Action1, remainder Action2.
	Action1 string
	Action2 string
	Weight  int
}

// Catalogue is an ordered, immutable set of actions keyed by id.
type Catalogue struct {
	ordered []Action
	byID    map[string]Action
}

// NewCatalogue validates the actions and builds a catalogue. Weighted
// actions must carry both component ids and a weight within 0-100;
// ids must be unique and non-empty.
func NewCatalogue(list []Action) (*Catalogue, error) {
	c := &Catalogue{
		ordered: make([]Action, 0, len(list)),
		byID:    make(map[string]Action, len(list)),
	}
	for _, a := range list {
		if a.ID == "" {
			return nil, fmt.Errorf("action with empty id")
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate action id %q", a.ID)
		}
		if a.Kind == Weighted {
			if a.Action1 == "" || a.Action2 == "" {
				return nil, fmt.Errorf("weighted action %q needs two component ids", a.ID)
			}
			if a.Weight < 0 || a.Weight > 100 {
				return nil, fmt.Errorf("weighted action %q weight %d outside 0-100", a.ID, a.Weight)
			}
		}
		c.ordered = append(c.ordered, a)
		c.byID[a.ID] = a
	}
	return c, nil
}

// Default returns the built-in catalogue used when no config file is
// present.
func Default() *Catalogue {
	c, err := NewCatalogue([]Action{
		{ID: "raise", Kind: Simple, Color: "#E74C3C"},
		{ID: "call", Kind: Simple, Color: "#2ECC71"},
		{ID: FoldID, Kind: Simple, Color: "#6B7280"},
	})
	if err != nil {
		panic(err) // static catalogue
	}
	return c
}

// Lookup returns the action for id.
func (c *Catalogue) Lookup(id string) (Action, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Actions returns the actions in catalogue order.
func (c *Catalogue) Actions() []Action {
	out := make([]Action, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of actions.
func (c *Catalogue) Len() int {
	return len(c.ordered)
}

// Combos sums the concrete combinations a selection covers. Hands
// painted with a weighted action contribute their combinations scaled
// by the action's weight (the Action1 share). Unknown action ids
// contribute nothing.
func (c *Catalogue) Combos(selection map[hand.Label]string) float64 {
	total := 0.0
	for l, id := range selection {
		a, ok := c.byID[id]
		if !ok {
			continue
		}
		combos := float64(l.Combinations())
		if a.Kind == Weighted {
			combos *= float64(a.Weight) / 100
		}
		total += combos
	}
	return total
}
