package main

import (
	"fmt"
	"sort"

	"github.com/dilmatt/rangegrid/internal/hand"
)

// CombosCmd prints per-hand and total combination counts for a range.
type CombosCmd struct {
	Notation string `arg:"" help:"Range notation, e.g. 'QQ+,AKs,A5s-A2s'"`
}

func (c *CombosCmd) Run() error {
	set, err := hand.ParseNotation(c.Notation)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, string(l))
	}
	sort.Strings(labels)

	total := 0
	for _, l := range labels {
		combos := hand.Label(l).Combinations()
		total += combos
		fmt.Printf("%-4s %2d (%s)\n", l, combos, hand.Label(l).Shape())
	}
	fmt.Printf("\n%d hands, %d of 1326 combos (%.1f%%)\n",
		len(labels), total, float64(total)/1326*100)
	return nil
}
