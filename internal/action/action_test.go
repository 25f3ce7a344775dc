package action

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/keyloom/internal/keycode"
)

func TestLayerRefs_FlatVariants(t *testing.T) {
	require.Empty(t, Emit(keycode.A).LayerRefs())
	require.Equal(t, []string{"nav"}, LayerAdd("nav").LayerRefs())
	require.Equal(t, []string{"nav"}, LayerRemove("nav").LayerRefs())
	require.Equal(t, []string{"nav"}, LayerToggle("nav").LayerRefs())
}

func TestLayerRefs_RecursesIntoNestedActions(t *testing.T) {
	a := TapHold(
		Modded(ModShift, LayerToggle("sym")),
		MultiTap(
			LayerAdd("nav"),
			TapNext(Emit(keycode.A), LayerRemove("fn")),
		),
		200*time.Millisecond,
	)
	require.Equal(t, []string{"sym", "nav", "fn"}, a.LayerRefs())
}

func TestLayerRefs_DedupKeepsFirstOccurrenceOrder(t *testing.T) {
	a := MultiTap(
		LayerAdd("nav"),
		LayerToggle("sym"),
		LayerRemove("nav"),
		LayerAdd("sym"),
	)
	require.Equal(t, []string{"nav", "sym"}, a.LayerRefs())
}

func TestString(t *testing.T) {
	tests := []struct {
		action *Action
		want   string
	}{
		{Emit(keycode.A), "key(a)"},
		{LayerAdd("nav"), "layer_add(nav)"},
		{LayerToggle("sym"), "layer_toggle(sym)"},
		{
			TapHold(Emit(keycode.A), LayerAdd("nav"), 200*time.Millisecond),
			"tap_hold(key(a), layer_add(nav), 200)",
		},
		{
			Modded(ModCtrl|ModShift, Emit(keycode.C)),
			"modded(shift+ctrl, key(c))",
		},
		{
			MultiTap(Emit(keycode.A), Emit(keycode.B)),
			"multi_tap(key(a), key(b))",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.action.String())
	}
}

func TestParseMod(t *testing.T) {
	m, ok := ParseMod("Ctrl")
	require.True(t, ok)
	require.Equal(t, ModCtrl, m)

	_, ok = ParseMod("hyper")
	require.False(t, ok)
}

func TestModSet_String(t *testing.T) {
	require.Equal(t, "none", ModSet(0).String())
	require.Equal(t, "shift+meta", (ModShift | ModMeta).String())
}
