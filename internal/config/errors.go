package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/keyloom/internal/grid"
	"github.com/vk/keyloom/internal/keycode"
)

// The interpretation pipeline fails fast: every error below is terminal and
// carries exactly the context a human needs to fix the file. The set is
// closed: interpretation either succeeds or fails with one of these.

// Cardinality and source-layout errors (no payload).
var (
	// ErrNoSourceLayer indicates the config declares no source block.
	ErrNoSourceLayer = errors.New("no source layer defined")

	// ErrMultipleSourceLayer indicates more than one source block.
	ErrMultipleSourceLayer = errors.New("multiple source layers defined")

	// ErrNoButtonLayer indicates the config declares no layer blocks.
	ErrNoButtonLayer = errors.New("no button layers defined")

	// ErrNoInputSource indicates the config declares no input block.
	ErrNoInputSource = errors.New("no input device defined")

	// ErrMultipleInputSource indicates more than one input block.
	ErrMultipleInputSource = errors.New("multiple input devices defined")

	// ErrNoOutputSink indicates the config declares no output block.
	ErrNoOutputSink = errors.New("no output device defined")

	// ErrMultipleOutputSink indicates more than one output block.
	ErrMultipleOutputSink = errors.New("multiple output devices defined")

	// ErrDuplicateInSource indicates the source layout lists the same key
	// at two coordinates.
	ErrDuplicateInSource = errors.New("duplicate key in source layer")
)

// DuplicateAliasError reports the first alias name defined twice, scanning
// definitions left to right.
type DuplicateAliasError struct {
	Name string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q defined more than once", e.Name)
}

// DuplicateLayerError reports the first layer name declared twice, scanning
// declarations left to right.
type DuplicateLayerError struct {
	Name string
}

func (e *DuplicateLayerError) Error() string {
	return fmt.Sprintf("layer %q declared more than once", e.Name)
}

// ParseError wraps a failure from the external tokenizer/parser, an invalid
// encoding, or an unreadable file, so every loader failure travels the same
// channel as interpretation errors.
type ParseError struct {
	// Path is the file that failed to load.
	Path string
	// Err is the parser's own diagnostic, kept opaque.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying diagnostic.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AnchorNotFoundError reports an anchor key that does not occur in the
// source layout.
type AnchorNotFoundError struct {
	Key   keycode.Code
	Layer string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("layer %q: anchor key %q not found in source layer", e.Layer, e.Key)
}

// AlignmentError reports a layer cell with no source-layout cell under it
// after anchoring. Coord and Symbol describe the offending cell in the
// anchored position.
type AlignmentError struct {
	Coord  grid.Coord
	Symbol Symbol
	Layer  string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("layer %q: symbol %s at (%d,%d) has no matching key in source layer",
		e.Layer, e.Symbol, e.Coord.Row, e.Coord.Col)
}

// AliasNotFoundError reports a reference to an alias that was never defined.
type AliasNotFoundError struct {
	Alias string
	Layer string
}

func (e *AliasNotFoundError) Error() string {
	return fmt.Sprintf("layer %q: alias %q not defined", e.Layer, e.Alias)
}

// LayerNotFoundError reports every layer name referenced by an action but
// never declared, in first-reference order.
type LayerNotFoundError struct {
	Names []string
}

func (e *LayerNotFoundError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("layer(s) not found: %s", strings.Join(quoted, ", "))
}
