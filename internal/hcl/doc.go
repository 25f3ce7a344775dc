// Package hcl provides the concrete HCL implementation of the config.Parser
// interface. It owns all knowledge of the surface grammar: block decoding
// into the schema structs, the action function library available inside
// expressions, and the translation of decoded blocks into the format-agnostic
// RawConfig token tree.
package hcl
