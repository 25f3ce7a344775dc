// This file defines the expression vocabulary of the surface language: the
// cty function library that turns calls like tap_hold("a", layer_add("nav"),
// 200) into action trees, carried through evaluation as capsule values.

package hcl

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/vk/keyloom/internal/action"
	"github.com/vk/keyloom/internal/keycode"
)

// actionType is the capsule carrying a *action.Action through cty evaluation.
var actionType = cty.Capsule("action", reflect.TypeOf(action.Action{}))

func actionVal(a *action.Action) cty.Value {
	return cty.CapsuleVal(actionType, a)
}

// argToAction accepts either an action capsule or a bare key name; the
// string form is shorthand for key(name).
func argToAction(v cty.Value) (*action.Action, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("value must not be null")
	}
	switch {
	case v.Type().Equals(actionType):
		return v.EncapsulatedValue().(*action.Action), nil
	case v.Type().Equals(cty.String):
		code, err := keycode.Parse(v.AsString())
		if err != nil {
			return nil, err
		}
		return action.Emit(code), nil
	default:
		return nil, fmt.Errorf("expected an action or a key name, got %s", v.Type().FriendlyName())
	}
}

func parseMods(spec string) (action.ModSet, error) {
	var mods action.ModSet
	for _, part := range strings.Split(spec, "+") {
		m, ok := action.ParseMod(part)
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		mods |= m
	}
	return mods, nil
}

// layerFunc builds a one-string-argument function around a layer-name
// constructor.
func layerFunc(build func(string) *action.Action) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "layer", Type: cty.String},
		},
		Type: function.StaticReturnType(actionType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return actionVal(build(args[0].AsString())), nil
		},
	})
}

var keyFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(actionType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		code, err := keycode.Parse(args[0].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		return actionVal(action.Emit(code)), nil
	},
})

var tapHoldFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "tap", Type: cty.DynamicPseudoType},
		{Name: "hold", Type: cty.DynamicPseudoType},
		{Name: "timeout_ms", Type: cty.Number},
	},
	Type: function.StaticReturnType(actionType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		tap, err := argToAction(args[0])
		if err != nil {
			return cty.NilVal, err
		}
		hold, err := argToAction(args[1])
		if err != nil {
			return cty.NilVal, err
		}
		bf := args[2].AsBigFloat()
		if !bf.IsInt() {
			return cty.NilVal, fmt.Errorf("tap_hold timeout must be a whole number of milliseconds, got %s", bf.String())
		}
		ms, _ := bf.Int64()
		if ms <= 0 {
			return cty.NilVal, fmt.Errorf("tap_hold timeout must be positive, got %d", ms)
		}
		return actionVal(action.TapHold(tap, hold, time.Duration(ms)*time.Millisecond)), nil
	},
})

var tapNextFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "tap", Type: cty.DynamicPseudoType},
		{Name: "hold", Type: cty.DynamicPseudoType},
	},
	Type: function.StaticReturnType(actionType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		tap, err := argToAction(args[0])
		if err != nil {
			return cty.NilVal, err
		}
		hold, err := argToAction(args[1])
		if err != nil {
			return cty.NilVal, err
		}
		return actionVal(action.TapNext(tap, hold)), nil
	},
})

var moddedFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "mods", Type: cty.String},
		{Name: "inner", Type: cty.DynamicPseudoType},
	},
	Type: function.StaticReturnType(actionType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		mods, err := parseMods(args[0].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		inner, err := argToAction(args[1])
		if err != nil {
			return cty.NilVal, err
		}
		return actionVal(action.Modded(mods, inner)), nil
	},
})

var multiTapFunc = function.New(&function.Spec{
	VarParam: &function.Parameter{Name: "steps", Type: cty.DynamicPseudoType},
	Type:     function.StaticReturnType(actionType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		if len(args) == 0 {
			return cty.NilVal, fmt.Errorf("multi_tap needs at least one step")
		}
		steps := make([]*action.Action, len(args))
		for i, arg := range args {
			step, err := argToAction(arg)
			if err != nil {
				return cty.NilVal, fmt.Errorf("multi_tap step %d: %w", i+1, err)
			}
			steps[i] = step
		}
		return actionVal(action.MultiTap(steps...)), nil
	},
})

// actionFunctions is the full vocabulary available inside rows and alias
// action expressions.
var actionFunctions = map[string]function.Function{
	"key":          keyFunc,
	"layer_add":    layerFunc(action.LayerAdd),
	"layer_rem":    layerFunc(action.LayerRemove),
	"layer_toggle": layerFunc(action.LayerToggle),
	"tap_hold":     tapHoldFunc,
	"tap_next":     tapNextFunc,
	"modded":       moddedFunc,
	"multi_tap":    multiTapFunc,
}
