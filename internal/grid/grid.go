// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the sparse coordinate grid the keymap pipeline is built
// on. A layer authored in a config file is a handful of occupied cells in an
// unbounded plane; everything the interpreter does to it (normalization,
// anchoring, overlay onto the physical layout) is a pure function on that
// shape. Iteration is pinned to ascending coordinate order so that the first
// reported failure of any pass is reproducible across runs.
package grid

import "sort"

// Coord addresses a cell as (row, column). Coordinates are totally ordered:
// row first, then column.
type Coord struct {
	Row int
	Col int
}

// Less reports whether c sorts before other.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns c shifted by the negation of d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Grid is a sparse mapping from coordinates to values. Absent coordinates are
// unoccupied; only occupied cells carry meaning.
type Grid[T any] map[Coord]T

// Coords returns the occupied coordinates in ascending order.
func (g Grid[T]) Coords() []Coord {
	coords := make([]Coord, 0, len(g))
	for c := range g {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

// Translate returns a copy of g with every coordinate shifted by d.
func Translate[T any](g Grid[T], d Coord) Grid[T] {
	out := make(Grid[T], len(g))
	for c, v := range g {
		out[c.Add(d)] = v
	}
	return out
}

// Normalize shifts g so the bounding box of its occupied region starts at
// (0,0). Leading blank rows and columns in an authored layout therefore carry
// no meaning. Normalizing an already normalized grid is a no-op; an empty
// grid is returned as-is.
func Normalize[T any](g Grid[T]) Grid[T] {
	if len(g) == 0 {
		return g
	}
	first := true
	var min Coord
	for c := range g {
		if first {
			min = c
			first = false
			continue
		}
		if c.Row < min.Row {
			min.Row = c.Row
		}
		if c.Col < min.Col {
			min.Col = c.Col
		}
	}
	return Translate(g, Coord{}.Sub(min))
}

// FindValue locates the first coordinate (in ascending order) holding v.
func FindValue[T comparable](g Grid[T], v T) (Coord, bool) {
	for _, c := range g.Coords() {
		if g[c] == v {
			return c, true
		}
	}
	return Coord{}, false
}

// AnchorTo translates items so that the cell at anchorAt lands on the
// coordinate where anchorKey occurs in source. The second return is false
// when anchorKey is not present in source; items is returned untranslated in
// that case.
func AnchorTo[K comparable, T any](anchorKey K, source Grid[K], items Grid[T], anchorAt Coord) (Grid[T], bool) {
	target, ok := FindValue(source, anchorKey)
	if !ok {
		return items, false
	}
	return Translate(items, target.Sub(anchorAt)), true
}

// Pair couples a source value with the item that landed on its coordinate.
type Pair[K, T any] struct {
	Key  K
	Item T
}

// Overlay coregisters items onto source: every occupied coordinate of items
// must be occupied in source, and matching cells are paired in ascending
// coordinate order. On the first coordinate (ascending) present in items but
// absent from source, Overlay returns that coordinate with ok=false.
func Overlay[K, T any](source Grid[K], items Grid[T]) (pairs []Pair[K, T], miss Coord, ok bool) {
	pairs = make([]Pair[K, T], 0, len(items))
	for _, c := range items.Coords() {
		key, found := source[c]
		if !found {
			return nil, c, false
		}
		pairs = append(pairs, Pair[K, T]{Key: key, Item: items[c]})
	}
	return pairs, Coord{}, true
}
