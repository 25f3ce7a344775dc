package config

import (
	"fmt"

	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
)

// --- Raw token tree (parser output, interpreter input) ---

// RawConfig is the unvalidated token tree for one configuration file.
// Slices keep declaration order; cardinalities are checked by the keymap
// package, not here.
type RawConfig struct {
	Sources []grid.Grid[keycode.Code]
	Layers  []LayerToken
	Aliases []AliasDef
	Inputs  []InputDevice
	Outputs []OutputDevice
}

// LayerToken is one declared layer: a named sparse matrix of button symbols,
// optionally anchored to a key of the source layout.
type LayerToken struct {
	Name string

	// Anchor, when set, names the source-layer key this layer is aligned
	// against. AnchorAt is the designated coordinate within the layer's own
	// (normalized) symbol matrix that lands on the anchor key; it is fixed
	// at parse time and defaults to the origin.
	Anchor   *keycode.Code
	AnchorAt grid.Coord

	Symbols grid.Grid[Symbol]
}

// AliasDef binds a name to an action. Aliases address actions directly:
// an alias body never references another alias, so resolution is a single
// table lookup.
type AliasDef struct {
	Name   string
	Action *action.Action
}

// InputDevice identifies the physical device keyloom grabs events from.
type InputDevice struct {
	Path string
}

// OutputDevice names the virtual device keyloom writes events to.
type OutputDevice struct {
	Name string
}

// SymbolKind discriminates the Symbol variants.
type SymbolKind int

const (
	// SymbolInline carries an action written directly in the cell.
	SymbolInline SymbolKind = iota
	// SymbolAlias references an alias definition by name.
	SymbolAlias
	// SymbolTransparent marks "no override here"; the cell produces no entry.
	SymbolTransparent
)

// Symbol is one occupied cell of a layer's matrix.
type Symbol struct {
	Kind   SymbolKind
	Action *action.Action // SymbolInline
	Alias  string         // SymbolAlias
}

// Inline builds an inline-action symbol.
func Inline(a *action.Action) Symbol {
	return Symbol{Kind: SymbolInline, Action: a}
}

// AliasRef builds an alias-reference symbol.
func AliasRef(name string) Symbol {
	return Symbol{Kind: SymbolAlias, Alias: name}
}

// Transparent builds a transparent symbol.
func Transparent() Symbol {
	return Symbol{Kind: SymbolTransparent}
}

// String renders the symbol in the surface syntax for diagnostics.
func (s Symbol) String() string {
	switch s.Kind {
	case SymbolInline:
		return s.Action.String()
	case SymbolAlias:
		return "@" + s.Alias
	case SymbolTransparent:
		return "_"
	}
	return fmt.Sprintf("symbol(kind=%d)", s.Kind)
}

// --- Validated model (interpreter output) ---

// ButtonMap maps physical keys to their actions for one layer. Keys are
// unique by construction: they come from the duplicate-checked source layout
// and each coordinate is visited exactly once.
type ButtonMap map[keycode.Code]*action.Action

// LayerMap maps layer names to their button maps.
type LayerMap map[string]ButtonMap

// Config is the fully validated runtime model. It is immutable once built;
// a reload produces a fresh Config from fresh input.
type Config struct {
	Layers LayerMap
	Input  InputDevice
	Output OutputDevice

	// Entry is the layer active at startup: the last layer in declaration
	// order. Pinned by tests; the runtime depends on this exact rule.
	Entry string
}
