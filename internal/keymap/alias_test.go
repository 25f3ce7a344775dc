package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/keycode"
)

func TestBuildAliasTable(t *testing.T) {
	defs := []config.AliasDef{
		{Name: "a1", Action: action.Emit(keycode.A)},
		{Name: "a2", Action: action.LayerToggle("nav")},
	}
	table, err := BuildAliasTable(defs)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, action.Emit(keycode.A), table["a1"])
	require.Equal(t, action.LayerToggle("nav"), table["a2"])
}

func TestBuildAliasTable_Empty(t *testing.T) {
	table, err := BuildAliasTable(nil)
	require.NoError(t, err)
	require.Empty(t, table)
}

func TestBuildAliasTable_FirstDuplicateWins(t *testing.T) {
	defs := []config.AliasDef{
		{Name: "a1", Action: action.Emit(keycode.A)},
		{Name: "a2", Action: action.Emit(keycode.B)},
		{Name: "a1", Action: action.Emit(keycode.C)},
		{Name: "a2", Action: action.Emit(keycode.D)},
	}
	_, err := BuildAliasTable(defs)
	var dup *config.DuplicateAliasError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "a1", dup.Name, "the first repeated name scanning left to right is reported")
}
