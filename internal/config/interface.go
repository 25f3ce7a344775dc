package config

import "context"

// Parser is the interface for a format-specific tokenizer/parser. The keymap
// interpreter treats the surface grammar as an external collaborator: it
// consumes the RawConfig token tree and never sees the text itself.
//
// Parse diagnostics are opaque to the caller; the keymap loader wraps them
// into a ParseError so parser and interpreter failures share one error
// channel.
type Parser interface {
	// Parse tokenizes src (UTF-8 text, already validated by the caller) into
	// a RawConfig. filename is used for diagnostics only.
	Parse(ctx context.Context, src []byte, filename string) (*RawConfig, error)
}
