// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render defines the draw commands widgets produce.

A List is an ordered sequence of rectangles and textured quads for one
frame. Widgets append to it during layout; the host walks it afterwards
and issues the actual draw calls, sampling quads from the shared glyph
atlas texture. Commands earlier in the list are drawn first.
*/
package render

import (
	"image"
	"image/color"
)

// Kind discriminates draw commands.
type Kind uint8

const (
	// KindRect fills Dst with Color.
	KindRect Kind = iota
	// KindQuad draws the atlas texture region Src into Dst, modulated
	// by Color. Glyph masks are stored as white in the atlas, so the
	// modulation tints them with the text color; color glyphs are drawn
	// with an opaque white Color to pass their pixels through.
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "Rect"
	case KindQuad:
		return "Quad"
	default:
		panic("invalid Kind")
	}
}

// Command is a single draw instruction.
type Command struct {
	Kind  Kind
	Dst   image.Rectangle
	Src   image.Rectangle
	Color color.NRGBA
}

// List accumulates the draw commands of a frame in draw order.
type List struct {
	Commands []Command
}

// Reset empties the list, retaining its storage for the next frame.
func (l *List) Reset() {
	l.Commands = l.Commands[:0]
}

// Rect appends a filled rectangle.
func (l *List) Rect(dst image.Rectangle, col color.NRGBA) {
	if dst.Empty() || col.A == 0 {
		return
	}
	l.Commands = append(l.Commands, Command{Kind: KindRect, Dst: dst, Color: col})
}

// Quad appends a textured quad sampling the atlas region src.
func (l *List) Quad(dst, src image.Rectangle, col color.NRGBA) {
	if dst.Empty() || col.A == 0 {
		return
	}
	l.Commands = append(l.Commands, Command{Kind: KindQuad, Dst: dst, Src: src, Color: col})
}
