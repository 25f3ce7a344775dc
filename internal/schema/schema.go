// Package schema holds the HCL decoding structs for the keymap surface.
// These mirror the block structure of a .kbd.hcl file one-to-one; all
// judgement (cardinalities, geometry, references) happens downstream on the
// translated model, never here.
package schema

import "github.com/hashicorp/hcl/v2"

// InputBlock selects the physical device events are read from.
type InputBlock struct {
	Device string `hcl:"device"`
}

// OutputBlock names the virtual device events are written to.
type OutputBlock struct {
	Name string `hcl:"name"`
}

// SourceBlock carries the physical layout. Rows stays an expression until
// translation so cells can be validated with their source ranges at hand.
type SourceBlock struct {
	Rows hcl.Expression `hcl:"rows"`
}

// AliasBlock binds a name to an action expression.
type AliasBlock struct {
	Name   string         `hcl:"name,label"`
	Action hcl.Expression `hcl:"action"`
}

// LayerBlock is one named button layer. Anchor and AnchorAt are optional;
// AnchorAt designates which cell of the layer lands on the anchor key and
// defaults to the layer's origin.
type LayerBlock struct {
	Name     string         `hcl:"name,label"`
	Anchor   *string        `hcl:"anchor,optional"`
	AnchorAt []int          `hcl:"anchor_at,optional"`
	Rows     hcl.Expression `hcl:"rows"`
}

// File is the top-level structure of a .kbd.hcl file. Every block kind is a
// slice: the parser reports what the author wrote, and the assembler judges
// how many of each are allowed.
type File struct {
	Inputs  []*InputBlock  `hcl:"input,block"`
	Outputs []*OutputBlock `hcl:"output,block"`
	Sources []*SourceBlock `hcl:"source,block"`
	Aliases []*AliasBlock  `hcl:"alias,block"`
	Layers  []*LayerBlock  `hcl:"layer,block"`
}
