// Package config defines the format-agnostic data model for the keymap
// pipeline: the raw token tree a parser produces, the validated Config the
// interpreter assembles, and the closed error taxonomy shared by both.
//
// The RawConfig captures the author's input as-is; cardinality and
// cross-reference rules are deliberately NOT enforced here. A concrete
// parser (see the hcl package) hands a RawConfig to the keymap package,
// which judges it and assembles the Config the runtime engine consumes.
package config
