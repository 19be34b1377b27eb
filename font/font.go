// SPDX-License-Identifier: Unlicense OR MIT

// Package font describes font faces independently of any particular
// shaper implementation.
package font

import "github.com/go-text/typesetting/font"

// Typeface identifies a font family by name. A typeface may hold several
// comma-separated family names that are tried in order when resolving
// faces. The empty string selects the default typeface.
type Typeface string

// Variant distinguishes designs within a typeface, such as "Mono" or
// "Smallcaps".
type Variant string

// Style selects between upright and italic designs.
type Style int

const (
	Regular Style = iota
	Italic
)

// Weight is a font weight in CSS units offset by 400, making the zero
// value normal text weight.
type Weight int

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Font describes a single variant of a typeface.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is an opaque handle to a loaded typeface. Implementations are
// provided by font loaders such as the opentype package.
type Face interface {
	Face() font.Face
}

// FontFace pairs a font description with the face that renders it.
type FontFace struct {
	Font Font
	Face Face
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	}
	panic("invalid Style")
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	}
	panic("invalid Weight")
}
