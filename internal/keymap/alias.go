package keymap

import (
	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/config"
)

// BuildAliasTable folds the ordered alias definitions into a lookup table in
// one left-to-right pass. The first repeated name short-circuits the scan
// with a DuplicateAliasError. The accumulator map never escapes except as
// the completed table.
func BuildAliasTable(defs []config.AliasDef) (map[string]*action.Action, error) {
	table := make(map[string]*action.Action, len(defs))
	for _, def := range defs {
		if _, dup := table[def.Name]; dup {
			return nil, &config.DuplicateAliasError{Name: def.Name}
		}
		table[def.Name] = def.Action
	}
	return table, nil
}
