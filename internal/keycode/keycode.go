// Package keycode defines the physical key identifier used throughout the
// keymap pipeline and the name table that the configuration surface and
// diagnostics speak in.
package keycode

import (
	"fmt"
	"strings"
)

// Code identifies a physical key. Values follow the Linux input-event-codes
// numbering so a Code can be handed to an evdev consumer unchanged.
type Code uint16

// Key codes from linux/input-event-codes.h. Only the keys the configuration
// surface names are listed; the Code type itself accepts any value.
const (
	Reserved   Code = 0
	Esc        Code = 1
	Num1       Code = 2
	Num2       Code = 3
	Num3       Code = 4
	Num4       Code = 5
	Num5       Code = 6
	Num6       Code = 7
	Num7       Code = 8
	Num8       Code = 9
	Num9       Code = 10
	Num0       Code = 11
	Minus      Code = 12
	Equal      Code = 13
	Backspace  Code = 14
	Tab        Code = 15
	Q          Code = 16
	W          Code = 17
	E          Code = 18
	R          Code = 19
	T          Code = 20
	Y          Code = 21
	U          Code = 22
	I          Code = 23
	O          Code = 24
	P          Code = 25
	LeftBrace  Code = 26
	RightBrace Code = 27
	Enter      Code = 28
	LeftCtrl   Code = 29
	A          Code = 30
	S          Code = 31
	D          Code = 32
	F          Code = 33
	G          Code = 34
	H          Code = 35
	J          Code = 36
	K          Code = 37
	L          Code = 38
	Semicolon  Code = 39
	Apostrophe Code = 40
	Grave      Code = 41
	LeftShift  Code = 42
	Backslash  Code = 43
	Z          Code = 44
	X          Code = 45
	C          Code = 46
	V          Code = 47
	B          Code = 48
	N          Code = 49
	M          Code = 50
	Comma      Code = 51
	Dot        Code = 52
	Slash      Code = 53
	RightShift Code = 54
	LeftAlt    Code = 56
	Space      Code = 57
	CapsLock   Code = 58
	F1         Code = 59
	F2         Code = 60
	F3         Code = 61
	F4         Code = 62
	F5         Code = 63
	F6         Code = 64
	F7         Code = 65
	F8         Code = 66
	F9         Code = 67
	F10        Code = 68
	F11        Code = 87
	F12        Code = 88
	RightCtrl  Code = 97
	RightAlt   Code = 100
	Home       Code = 102
	Up         Code = 103
	PageUp     Code = 104
	Left       Code = 105
	Right      Code = 106
	End        Code = 107
	Down       Code = 108
	PageDown   Code = 109
	Insert     Code = 110
	Delete     Code = 111
	LeftMeta   Code = 125
	RightMeta  Code = 126
	Compose    Code = 127
)

// names holds the canonical spelling for each code. Aliases are added on top
// in the lookup table below.
var names = map[Code]string{
	Esc: "esc",
	Num1: "1", Num2: "2", Num3: "3", Num4: "4", Num5: "5",
	Num6: "6", Num7: "7", Num8: "8", Num9: "9", Num0: "0",
	Minus: "minus", Equal: "equal", Backspace: "backspace", Tab: "tab",
	Q: "q", W: "w", E: "e", R: "r", T: "t", Y: "y", U: "u", I: "i", O: "o", P: "p",
	LeftBrace: "lbrace", RightBrace: "rbrace", Enter: "enter", LeftCtrl: "lctrl",
	A: "a", S: "s", D: "d", F: "f", G: "g", H: "h", J: "j", K: "k", L: "l",
	Semicolon: "semicolon", Apostrophe: "apostrophe", Grave: "grave",
	LeftShift: "lshift", Backslash: "backslash",
	Z: "z", X: "x", C: "c", V: "v", B: "b", N: "n", M: "m",
	Comma: "comma", Dot: "dot", Slash: "slash", RightShift: "rshift",
	LeftAlt: "lalt", Space: "space", CapsLock: "caps",
	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	F7: "f7", F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12",
	RightCtrl: "rctrl", RightAlt: "ralt",
	Home: "home", Up: "up", PageUp: "pgup", Left: "left", Right: "right",
	End: "end", Down: "down", PageDown: "pgdn", Insert: "insert", Delete: "del",
	LeftMeta: "lmeta", RightMeta: "rmeta", Compose: "compose",
}

var byName map[string]Code

func init() {
	byName = make(map[string]Code, len(names)+16)
	for code, name := range names {
		byName[name] = code
	}
	// Common alternate spellings accepted on input.
	byName["escape"] = Esc
	byName["return"] = Enter
	byName["ret"] = Enter
	byName["bspc"] = Backspace
	byName["spc"] = Space
	byName["capslock"] = CapsLock
	byName["delete"] = Delete
	byName["pageup"] = PageUp
	byName["pagedown"] = PageDown
	byName["lsft"] = LeftShift
	byName["rsft"] = RightShift
	byName["lsuper"] = LeftMeta
	byName["rsuper"] = RightMeta
}

// Parse resolves a key name from the configuration surface into a Code.
// Names are matched case-insensitively.
func Parse(name string) (Code, error) {
	code, ok := byName[strings.ToLower(name)]
	if !ok {
		return Reserved, fmt.Errorf("unknown key name %q", name)
	}
	return code, nil
}

// String returns the canonical name for the code, or a numeric form for
// codes outside the name table.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", uint16(c))
}
