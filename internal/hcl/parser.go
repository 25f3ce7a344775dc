package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/ctxlog"
	"github.com/vk/keyloom/internal/schema"
)

// Parser implements config.Parser for the .kbd.hcl surface.
type Parser struct{}

// NewParser creates a new HCL parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tokenizes src into the raw token tree. Diagnostics from the HCL
// machinery are returned as-is; the keymap loader wraps them opaquely.
func (p *Parser) Parse(ctx context.Context, src []byte, filename string) (*config.RawConfig, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	var decoded schema.File
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, diags
	}
	logger.Debug("Configuration file decoded.",
		"file", filename,
		"sources", len(decoded.Sources),
		"layers", len(decoded.Layers),
		"aliases", len(decoded.Aliases))

	return translateFile(&decoded)
}
