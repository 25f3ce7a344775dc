// This file translates decoded schema blocks into the format-agnostic
// RawConfig token tree. Rows arrive here as unevaluated expressions and are
// resolved against the action function library; cell-level failures report
// the expression's source range.

package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
	"github.com/vk/keyloom/internal/schema"
)

// Cell markers understood inside rows. A dot leaves the coordinate
// unoccupied; an underscore occupies it transparently.
const (
	cellUnoccupied  = "."
	cellTransparent = "_"
	aliasSigil      = "@"
)

func translateFile(f *schema.File) (*config.RawConfig, error) {
	raw := &config.RawConfig{}

	for _, src := range f.Sources {
		layout, err := translateSource(src)
		if err != nil {
			return nil, err
		}
		raw.Sources = append(raw.Sources, layout)
	}
	for _, al := range f.Aliases {
		def, err := translateAlias(al)
		if err != nil {
			return nil, err
		}
		raw.Aliases = append(raw.Aliases, def)
	}
	for _, layer := range f.Layers {
		token, err := translateLayer(layer)
		if err != nil {
			return nil, err
		}
		raw.Layers = append(raw.Layers, token)
	}
	for _, in := range f.Inputs {
		raw.Inputs = append(raw.Inputs, config.InputDevice{Path: in.Device})
	}
	for _, out := range f.Outputs {
		raw.Outputs = append(raw.Outputs, config.OutputDevice{Name: out.Name})
	}
	return raw, nil
}

func translateSource(src *schema.SourceBlock) (grid.Grid[keycode.Code], error) {
	layout := make(grid.Grid[keycode.Code])
	err := eachCell(src.Rows, func(c grid.Coord, cell cty.Value) error {
		if cell.IsNull() || !cell.IsKnown() {
			return fmt.Errorf("source cell (%d,%d) must not be null", c.Row, c.Col)
		}
		if !cell.Type().Equals(cty.String) {
			return fmt.Errorf("source cell (%d,%d) must be a key name, got %s",
				c.Row, c.Col, cell.Type().FriendlyName())
		}
		name := cell.AsString()
		if name == cellUnoccupied {
			return nil
		}
		code, err := keycode.Parse(name)
		if err != nil {
			return fmt.Errorf("source cell (%d,%d): %w", c.Row, c.Col, err)
		}
		layout[c] = code
		return nil
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func translateAlias(al *schema.AliasBlock) (config.AliasDef, error) {
	val, diags := al.Action.Value(&hcl.EvalContext{Functions: actionFunctions})
	if diags.HasErrors() {
		return config.AliasDef{}, diags
	}
	act, err := argToAction(val)
	if err != nil {
		return config.AliasDef{}, fmt.Errorf("%s: alias %q: %w", al.Action.Range(), al.Name, err)
	}
	return config.AliasDef{Name: al.Name, Action: act}, nil
}

func translateLayer(layer *schema.LayerBlock) (config.LayerToken, error) {
	token := config.LayerToken{Name: layer.Name}

	if layer.Anchor != nil {
		code, err := keycode.Parse(*layer.Anchor)
		if err != nil {
			return config.LayerToken{}, fmt.Errorf("layer %q anchor: %w", layer.Name, err)
		}
		token.Anchor = &code
	}
	if layer.AnchorAt != nil {
		if len(layer.AnchorAt) != 2 {
			return config.LayerToken{}, fmt.Errorf("layer %q: anchor_at must be [row, col]", layer.Name)
		}
		token.AnchorAt = grid.Coord{Row: layer.AnchorAt[0], Col: layer.AnchorAt[1]}
	}

	symbols := make(grid.Grid[config.Symbol])
	err := eachCell(layer.Rows, func(c grid.Coord, cell cty.Value) error {
		sym, occupied, err := translateCell(cell)
		if err != nil {
			return fmt.Errorf("layer %q cell (%d,%d): %w", layer.Name, c.Row, c.Col, err)
		}
		if occupied {
			symbols[c] = sym
		}
		return nil
	})
	if err != nil {
		return config.LayerToken{}, err
	}
	token.Symbols = symbols
	return token, nil
}

// translateCell maps one evaluated cell value onto a button symbol. The
// second return is false for the unoccupied marker.
func translateCell(cell cty.Value) (config.Symbol, bool, error) {
	if cell.IsNull() || !cell.IsKnown() {
		return config.Symbol{}, false, fmt.Errorf("cell must not be null")
	}
	if cell.Type().Equals(actionType) {
		act, err := argToAction(cell)
		if err != nil {
			return config.Symbol{}, false, err
		}
		return config.Inline(act), true, nil
	}
	if !cell.Type().Equals(cty.String) {
		return config.Symbol{}, false, fmt.Errorf("cell must be a string or an action, got %s",
			cell.Type().FriendlyName())
	}
	s := cell.AsString()
	switch {
	case s == cellUnoccupied:
		return config.Symbol{}, false, nil
	case s == cellTransparent:
		return config.Transparent(), true, nil
	case strings.HasPrefix(s, aliasSigil):
		name := strings.TrimPrefix(s, aliasSigil)
		if name == "" {
			return config.Symbol{}, false, fmt.Errorf("alias reference is missing a name")
		}
		return config.AliasRef(name), true, nil
	default:
		code, err := keycode.Parse(s)
		if err != nil {
			return config.Symbol{}, false, err
		}
		return config.Inline(action.Emit(code)), true, nil
	}
}

// eachCell evaluates a rows expression and visits every cell with its
// coordinate. Rows and cells may be tuples or lists; anything else is
// rejected with the expression's source range.
func eachCell(expr hcl.Expression, visit func(grid.Coord, cty.Value) error) error {
	val, diags := expr.Value(&hcl.EvalContext{Functions: actionFunctions})
	if diags.HasErrors() {
		return diags
	}
	if !val.CanIterateElements() {
		return fmt.Errorf("%s: rows must be a list of rows", expr.Range())
	}

	row := 0
	for it := val.ElementIterator(); it.Next(); row++ {
		_, rowVal := it.Element()
		if !rowVal.CanIterateElements() {
			return fmt.Errorf("%s: row %d must be a list of cells", expr.Range(), row)
		}
		col := 0
		for cells := rowVal.ElementIterator(); cells.Next(); col++ {
			_, cell := cells.Element()
			if err := visit(grid.Coord{Row: row, Col: col}, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
