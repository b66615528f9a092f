package main

import (
	"fmt"

	"github.com/dilmatt/rangegrid/internal/hand"
)

// ExportCmd parses a range notation and prints its normalized compact
// form.
type ExportCmd struct {
	Notation string `arg:"" help:"Range notation to normalize"`
}

func (c *ExportCmd) Run() error {
	set, err := hand.ParseNotation(c.Notation)
	if err != nil {
		return err
	}
	fmt.Println(hand.RenderNotation(set))
	return nil
}
