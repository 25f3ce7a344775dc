package keymap

import (
	"sort"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/keycode"
)

// checkLayerRefs walks every resolved action (layers in declaration order,
// keys in ascending code order) and every alias body (declaration order),
// collects the layer names they reference with first-occurrence order
// preserved, and fails with the full ordered list of names that no declared
// layer carries.
func checkLayerRefs(raw *config.RawConfig, layers config.LayerMap) error {
	declared := make(map[string]struct{}, len(raw.Layers))
	for _, layer := range raw.Layers {
		declared[layer.Name] = struct{}{}
	}

	var referenced []string
	seen := make(map[string]struct{})
	collect := func(names []string) {
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			referenced = append(referenced, name)
		}
	}

	for _, layer := range raw.Layers {
		buttons := layers[layer.Name]
		for _, code := range sortedCodes(buttons) {
			collect(buttons[code].LayerRefs())
		}
	}
	for _, alias := range raw.Aliases {
		collect(alias.Action.LayerRefs())
	}

	var unknown []string
	for _, name := range referenced {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return &config.LayerNotFoundError{Names: unknown}
	}
	return nil
}

func sortedCodes(buttons config.ButtonMap) []keycode.Code {
	codes := make([]keycode.Code, 0, len(buttons))
	for code := range buttons {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
