package actions

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the HCL surface of a catalogue file:
//
//	action "raise" {
//	  color = "#E74C3C"
//	}
//
//	action "half-raise" {
//	  action1 = "raise"
//	  action2 = "fold"
//	  weight  = 50
//	}
type fileConfig struct {
	Actions []actionBlock `hcl:"action,block"`
}

type actionBlock struct {
	ID      string  `hcl:"id,label"`
	Color   *string `hcl:"color,optional"`
	Action1 *string `hcl:"action1,optional"`
	Action2 *string `hcl:"action2,optional"`
	Weight  *int    `hcl:"weight,optional"`
}

// LoadCatalogue reads an action catalogue from an HCL file. A missing
// file yields the built-in default catalogue.
func LoadCatalogue(filename string) (*Catalogue, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return catalogueFromConfig(cfg)
}

// ParseCatalogue decodes a catalogue from in-memory HCL source.
func ParseCatalogue(src []byte, filename string) (*Catalogue, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return catalogueFromConfig(cfg)
}

func catalogueFromConfig(cfg fileConfig) (*Catalogue, error) {
	if len(cfg.Actions) == 0 {
		return Default(), nil
	}

	list := make([]Action, 0, len(cfg.Actions))
	for _, b := range cfg.Actions {
		a, err := actionFromBlock(b)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return NewCatalogue(list)
}

func actionFromBlock(b actionBlock) (Action, error) {
	weighted := b.Action1 != nil || b.Action2 != nil || b.Weight != nil

	if weighted {
		if b.Color != nil {
			return Action{}, fmt.Errorf("action %q: color and weighted fields are mutually exclusive", b.ID)
		}
		if b.Action1 == nil || b.Action2 == nil || b.Weight == nil {
			return Action{}, fmt.Errorf("action %q: weighted actions need action1, action2 and weight", b.ID)
		}
		return Action{
			ID:      b.ID,
			Kind:    Weighted,
			Action1: *b.Action1,
			Action2: *b.Action2,
			Weight:  *b.Weight,
		}, nil
	}

	if b.Color == nil {
		return Action{}, fmt.Errorf("action %q: color is required for simple actions", b.ID)
	}
	return Action{ID: b.ID, Kind: Simple, Color: *b.Color}, nil
}
