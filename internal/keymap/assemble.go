package keymap

import (
	"context"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/ctxlog"
	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
)

// Assemble interprets a raw token tree into a validated Config. Checks run
// in a fixed order and the first violation wins: cardinalities, alias table,
// source-layout dedup, layer-name dedup and coregistration in declaration
// order, then the cross-reference pass over every mentioned layer name.
func Assemble(ctx context.Context, raw *config.RawConfig) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)

	if err := checkCardinalities(raw); err != nil {
		return nil, err
	}

	aliases, err := BuildAliasTable(raw.Aliases)
	if err != nil {
		return nil, err
	}
	logger.Debug("Alias table built.", "aliases", len(aliases))

	source := grid.Normalize(raw.Sources[0])
	if hasDuplicateKey(source) {
		return nil, config.ErrDuplicateInSource
	}

	layers := make(config.LayerMap, len(raw.Layers))
	for _, layer := range raw.Layers {
		if _, dup := layers[layer.Name]; dup {
			return nil, &config.DuplicateLayerError{Name: layer.Name}
		}
		buttons, err := coregisterLayer(source, layer, aliases)
		if err != nil {
			return nil, err
		}
		layers[layer.Name] = buttons
		logger.Debug("Layer coregistered.", "layer", layer.Name, "bindings", len(buttons))
	}

	if err := checkLayerRefs(raw, layers); err != nil {
		return nil, err
	}

	return &config.Config{
		Layers: layers,
		Input:  raw.Inputs[0],
		Output: raw.Outputs[0],
		Entry:  raw.Layers[len(raw.Layers)-1].Name,
	}, nil
}

// checkCardinalities enforces the one-source/one-input/one-output/some-layers
// rule. The order below is fixed; a config violating several rules reports
// the first.
func checkCardinalities(raw *config.RawConfig) error {
	switch {
	case len(raw.Sources) == 0:
		return config.ErrNoSourceLayer
	case len(raw.Sources) > 1:
		return config.ErrMultipleSourceLayer
	case len(raw.Layers) == 0:
		return config.ErrNoButtonLayer
	case len(raw.Inputs) == 0:
		return config.ErrNoInputSource
	case len(raw.Inputs) > 1:
		return config.ErrMultipleInputSource
	case len(raw.Outputs) == 0:
		return config.ErrNoOutputSink
	case len(raw.Outputs) > 1:
		return config.ErrMultipleOutputSink
	}
	return nil
}

// hasDuplicateKey scans the source layout in ascending coordinate order for
// the same key code at two coordinates.
func hasDuplicateKey(source grid.Grid[keycode.Code]) bool {
	seen := make(map[keycode.Code]struct{}, len(source))
	for _, c := range source.Coords() {
		code := source[c]
		if _, dup := seen[code]; dup {
			return true
		}
		seen[code] = struct{}{}
	}
	return false
}
