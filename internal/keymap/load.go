package keymap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/ctxlog"
)

// Loader reads a configuration file, hands the text to an external parser,
// and assembles the result. It is the only I/O-performing piece of the
// interpretation core: everything past the file read is pure, so concurrent
// loads are independent by construction.
type Loader struct {
	parser config.Parser
}

// NewLoader builds a Loader around the given parser implementation.
func NewLoader(parser config.Parser) *Loader {
	return &Loader{parser: parser}
}

// Load interprets the file at path into a validated Config. Read failures,
// encoding failures, and parser diagnostics all surface as *config.ParseError
// so callers have a single failure channel; interpretation failures carry
// the taxonomy from the config package unchanged.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading keymap configuration.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}
	if !utf8.Valid(src) {
		return nil, &config.ParseError{Path: path, Err: errors.New("file is not valid UTF-8")}
	}

	raw, err := l.parser.Parse(ctx, src, path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}
	logger.Debug("Configuration parsed.",
		"layers", len(raw.Layers), "aliases", len(raw.Aliases))

	cfg, err := Assemble(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("interpreting %s: %w", path, err)
	}
	logger.Info("Keymap configuration loaded.",
		"path", path, "layers", len(cfg.Layers), "entry", cfg.Entry)
	return cfg, nil
}
