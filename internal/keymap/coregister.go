package keymap

import (
	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
)

// coregisterLayer aligns one layer's symbol matrix onto the normalized
// source layout and resolves every placed symbol into a button map.
//
// The symbol matrix is normalized first. If the layer declares an anchor it
// is then translated so its AnchorAt cell lands on the anchor key's
// coordinate in the source. Transparent cells produce no entry.
func coregisterLayer(source grid.Grid[keycode.Code], layer config.LayerToken, aliases map[string]*action.Action) (config.ButtonMap, error) {
	symbols := grid.Normalize(layer.Symbols)

	if layer.Anchor != nil {
		anchored, ok := grid.AnchorTo(*layer.Anchor, source, symbols, layer.AnchorAt)
		if !ok {
			return nil, &config.AnchorNotFoundError{Key: *layer.Anchor, Layer: layer.Name}
		}
		symbols = anchored
	}

	pairs, miss, ok := grid.Overlay(source, symbols)
	if !ok {
		return nil, &config.AlignmentError{Coord: miss, Symbol: symbols[miss], Layer: layer.Name}
	}

	buttons := make(config.ButtonMap, len(pairs))
	for _, pair := range pairs {
		switch pair.Item.Kind {
		case config.SymbolTransparent:
			// No override at this key.
		case config.SymbolInline:
			buttons[pair.Key] = pair.Item.Action
		case config.SymbolAlias:
			resolved, found := aliases[pair.Item.Alias]
			if !found {
				return nil, &config.AliasNotFoundError{Alias: pair.Item.Alias, Layer: layer.Name}
			}
			buttons[pair.Key] = resolved
		}
	}
	return buttons, nil
}
