package hcl

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
)

func parse(t *testing.T, src string) (*config.RawConfig, error) {
	t.Helper()
	return NewParser().Parse(context.Background(), []byte(src), "test.kbd.hcl")
}

func TestParse_FullFile(t *testing.T) {
	src := `
input  { device = "/dev/input/event3" }
output { name = "keyloom-virtual" }

source {
  rows = [
    ["esc", "1", "2"],
    ["tab", "q", "w"],
  ]
}

alias "nav_space" {
  action = tap_hold("space", layer_add("nav"), 180)
}

layer "base" {
  rows = [
    ["esc", ".", "_"],
    ["@nav_space", "q", "w"],
  ]
}

layer "nav" {
  anchor = "q"
  rows = [
    ["left", "down"],
  ]
}
`
	raw, err := parse(t, src)
	require.NoError(t, err)

	require.Equal(t, []config.InputDevice{{Path: "/dev/input/event3"}}, raw.Inputs)
	require.Equal(t, []config.OutputDevice{{Name: "keyloom-virtual"}}, raw.Outputs)

	wantSource := grid.Grid[keycode.Code]{
		{Row: 0, Col: 0}: keycode.Esc, {Row: 0, Col: 1}: keycode.Num1, {Row: 0, Col: 2}: keycode.Num2,
		{Row: 1, Col: 0}: keycode.Tab, {Row: 1, Col: 1}: keycode.Q, {Row: 1, Col: 2}: keycode.W,
	}
	require.Len(t, raw.Sources, 1)
	if diff := cmp.Diff(wantSource, raw.Sources[0]); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}

	wantAlias := []config.AliasDef{{
		Name: "nav_space",
		Action: action.TapHold(
			action.Emit(keycode.Space),
			action.LayerAdd("nav"),
			180*time.Millisecond,
		),
	}}
	if diff := cmp.Diff(wantAlias, raw.Aliases); diff != "" {
		t.Errorf("aliases mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, raw.Layers, 2)
	base := raw.Layers[0]
	require.Equal(t, "base", base.Name)
	require.Nil(t, base.Anchor)
	wantBase := grid.Grid[config.Symbol]{
		{Row: 0, Col: 0}: config.Inline(action.Emit(keycode.Esc)),
		{Row: 0, Col: 2}: config.Transparent(),
		{Row: 1, Col: 0}: config.AliasRef("nav_space"),
		{Row: 1, Col: 1}: config.Inline(action.Emit(keycode.Q)),
		{Row: 1, Col: 2}: config.Inline(action.Emit(keycode.W)),
	}
	if diff := cmp.Diff(wantBase, base.Symbols); diff != "" {
		t.Errorf("base symbols mismatch (-want +got):\n%s", diff)
	}

	nav := raw.Layers[1]
	require.NotNil(t, nav.Anchor)
	require.Equal(t, keycode.Q, *nav.Anchor)
	require.Equal(t, grid.Coord{}, nav.AnchorAt)
}

func TestParse_InlineActionCells(t *testing.T) {
	src := `
source { rows = [["a", "s"]] }
layer "base" {
  rows = [[
    modded("ctrl+shift", "a"),
    multi_tap("s", layer_toggle("nav"), tap_next("d", "f")),
  ]]
}
`
	raw, err := parse(t, src)
	require.NoError(t, err)

	want := grid.Grid[config.Symbol]{
		{Row: 0, Col: 0}: config.Inline(action.Modded(action.ModShift|action.ModCtrl, action.Emit(keycode.A))),
		{Row: 0, Col: 1}: config.Inline(action.MultiTap(
			action.Emit(keycode.S),
			action.LayerToggle("nav"),
			action.TapNext(action.Emit(keycode.D), action.Emit(keycode.F)),
		)),
	}
	if diff := cmp.Diff(want, raw.Layers[0].Symbols); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AnchorAt(t *testing.T) {
	src := `
layer "nav" {
  anchor    = "s"
  anchor_at = [0, 1]
  rows      = [["left", "down"]]
}
`
	raw, err := parse(t, src)
	require.NoError(t, err)
	require.Equal(t, grid.Coord{Row: 0, Col: 1}, raw.Layers[0].AnchorAt)
}

func TestParse_MultipleBlocksSurviveTranslation(t *testing.T) {
	// Cardinality violations are the assembler's call, not the parser's.
	src := `
input { device = "/dev/input/event0" }
input { device = "/dev/input/event1" }
source { rows = [["a"]] }
source { rows = [["b"]] }
`
	raw, err := parse(t, src)
	require.NoError(t, err)
	require.Len(t, raw.Inputs, 2)
	require.Len(t, raw.Sources, 2)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := parse(t, "layer \"base\" {\n")
	require.Error(t, err)
}

func TestParse_UnknownKeyName(t *testing.T) {
	_, err := parse(t, `source { rows = [["hyperkey"]] }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hyperkey")
	require.Contains(t, err.Error(), "(0,0)")
}

func TestParse_UnknownKeyInLayerCell(t *testing.T) {
	_, err := parse(t, `layer "base" { rows = [[".", "wat"]] }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `layer "base" cell (0,1)`)
}

func TestParse_EmptyAliasReference(t *testing.T) {
	_, err := parse(t, `layer "base" { rows = [["@"]] }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing a name")
}

func TestParse_BadAnchorAt(t *testing.T) {
	_, err := parse(t, `
layer "nav" {
  anchor_at = [1]
  rows      = [["a"]]
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "anchor_at")
}

func TestParse_NullCellIsRejected(t *testing.T) {
	// A conditional can produce a typed null; it must surface as a
	// diagnostic, never reach the string accessors.
	tests := []struct {
		name string
		src  string
	}{
		{"source cell", `source { rows = [[true ? null : "a"]] }`},
		{"layer cell", `layer "base" { rows = [[true ? null : "a"]] }`},
		{"alias action", `alias "x" { action = true ? null : "a" }`},
		{"function argument", `alias "x" { action = tap_next(true ? null : "a", "s") }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src)
			require.Error(t, err)
			require.Contains(t, err.Error(), "null")
		})
	}
}

func TestParse_FractionalTapHoldTimeout(t *testing.T) {
	_, err := parse(t, `alias "x" { action = tap_hold("a", "s", 200.7) }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "whole number")
}

func TestParse_NonPositiveTapHoldTimeout(t *testing.T) {
	_, err := parse(t, `alias "x" { action = tap_hold("a", "s", 0) }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "timeout")
}

func TestParse_UnknownFunction(t *testing.T) {
	_, err := parse(t, `alias "x" { action = warp("a") }`)
	require.Error(t, err)
}
