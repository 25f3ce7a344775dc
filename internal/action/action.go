// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the remapping behavior attached to a key: a small
// recursive tree of tagged variants. Author input is tree-shaped, never
// graph-shaped, since layers are referenced by name and resolved later, so no
// cycles can be constructed. The tree is immutable once built and traversed
// by structural recursion.
package action

import (
	"fmt"
	"strings"
	"time"

	"github.com/vk/keyloom/internal/keycode"
)

// Kind discriminates the Action variants.
type Kind int

const (
	// KindEmit emits a plain key.
	KindEmit Kind = iota
	// KindLayerAdd pushes a named layer onto the active set while held.
	KindLayerAdd
	// KindLayerRemove pops a named layer from the active set.
	KindLayerRemove
	// KindLayerToggle flips a named layer on or off.
	KindLayerToggle
	// KindTapHold resolves to Tap on a quick press and Hold past Timeout.
	KindTapHold
	// KindTapNext resolves to Tap when released before the next key event,
	// Hold otherwise.
	KindTapNext
	// KindModded wraps Inner with a modifier set held around it.
	KindModded
	// KindMultiTap selects among Steps by consecutive tap count.
	KindMultiTap
)

// Action is one node of the behavior tree. Exactly the fields relevant to
// Kind are populated; the rest stay zero.
type Action struct {
	Kind Kind

	Key   keycode.Code // KindEmit
	Layer string       // KindLayerAdd, KindLayerRemove, KindLayerToggle

	Tap     *Action       // KindTapHold, KindTapNext
	Hold    *Action       // KindTapHold, KindTapNext
	Timeout time.Duration // KindTapHold

	Mods  ModSet  // KindModded
	Inner *Action // KindModded

	Steps []*Action // KindMultiTap
}

// Emit builds a plain key emission.
func Emit(key keycode.Code) *Action {
	return &Action{Kind: KindEmit, Key: key}
}

// LayerAdd builds a layer-add of the named layer.
func LayerAdd(layer string) *Action {
	return &Action{Kind: KindLayerAdd, Layer: layer}
}

// LayerRemove builds a layer-remove of the named layer.
func LayerRemove(layer string) *Action {
	return &Action{Kind: KindLayerRemove, Layer: layer}
}

// LayerToggle builds a layer-toggle of the named layer.
func LayerToggle(layer string) *Action {
	return &Action{Kind: KindLayerToggle, Layer: layer}
}

// TapHold builds a tap-hold with the given hold timeout.
func TapHold(tap, hold *Action, timeout time.Duration) *Action {
	return &Action{Kind: KindTapHold, Tap: tap, Hold: hold, Timeout: timeout}
}

// TapNext builds a tap-next.
func TapNext(tap, hold *Action) *Action {
	return &Action{Kind: KindTapNext, Tap: tap, Hold: hold}
}

// Modded wraps inner with mods held around it.
func Modded(mods ModSet, inner *Action) *Action {
	return &Action{Kind: KindModded, Mods: mods, Inner: inner}
}

// MultiTap builds a multi-tap over the ordered step alternatives.
func MultiTap(steps ...*Action) *Action {
	return &Action{Kind: KindMultiTap, Steps: steps}
}

// LayerRefs returns every layer name referenced anywhere in the tree,
// deduplicated, in first-occurrence order.
func (a *Action) LayerRefs() []string {
	var refs []string
	seen := make(map[string]struct{})
	a.collectLayerRefs(&refs, seen)
	return refs
}

func (a *Action) collectLayerRefs(refs *[]string, seen map[string]struct{}) {
	if a == nil {
		return
	}
	switch a.Kind {
	case KindLayerAdd, KindLayerRemove, KindLayerToggle:
		if _, dup := seen[a.Layer]; !dup {
			seen[a.Layer] = struct{}{}
			*refs = append(*refs, a.Layer)
		}
	case KindTapHold, KindTapNext:
		a.Tap.collectLayerRefs(refs, seen)
		a.Hold.collectLayerRefs(refs, seen)
	case KindModded:
		a.Inner.collectLayerRefs(refs, seen)
	case KindMultiTap:
		for _, step := range a.Steps {
			step.collectLayerRefs(refs, seen)
		}
	}
}

// String renders the action in the surface syntax for diagnostics.
func (a *Action) String() string {
	if a == nil {
		return "<nil>"
	}
	switch a.Kind {
	case KindEmit:
		return fmt.Sprintf("key(%s)", a.Key)
	case KindLayerAdd:
		return fmt.Sprintf("layer_add(%s)", a.Layer)
	case KindLayerRemove:
		return fmt.Sprintf("layer_rem(%s)", a.Layer)
	case KindLayerToggle:
		return fmt.Sprintf("layer_toggle(%s)", a.Layer)
	case KindTapHold:
		return fmt.Sprintf("tap_hold(%s, %s, %d)", a.Tap, a.Hold, a.Timeout/time.Millisecond)
	case KindTapNext:
		return fmt.Sprintf("tap_next(%s, %s)", a.Tap, a.Hold)
	case KindModded:
		return fmt.Sprintf("modded(%s, %s)", a.Mods, a.Inner)
	case KindMultiTap:
		parts := make([]string, len(a.Steps))
		for i, step := range a.Steps {
			parts[i] = step.String()
		}
		return fmt.Sprintf("multi_tap(%s)", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("action(kind=%d)", a.Kind)
}
