// Package keymap interprets a raw configuration token tree into a validated
// runtime Config.
//
// The pipeline is a fixed sequence of fail-fast passes: cardinality checks,
// alias table construction, source-layout dedup, per-layer coregistration
// (normalize, anchor, overlay, alias resolution), and a final cross-reference
// check of every layer name mentioned inside any action. Every pass is pure;
// the only I/O in the package is the single file read in Loader.Load.
package keymap
