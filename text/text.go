// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"image/color"

	"golang.org/x/image/math/fixed"

	imfont "github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/io/system"
)

// FontFace is an alias for convenience when building font collections.
type FontFace = imfont.FontFace

// Alignment characterizes the positioning of text within the space available
// to it.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Align returns the x offset that should be applied to text with width so that it
// appears correctly aligned within a space of size maxWidth and with the primary
// text direction dir.
func (a Alignment) Align(dir system.TextDirection, width fixed.Int26_6, maxWidth int) fixed.Int26_6 {
	mw := fixed.I(maxWidth)
	if dir.Progression() == system.TowardOrigin {
		switch a {
		case Start:
			a = End
		case End:
			a = Start
		}
	}
	switch a {
	case Middle:
		return fixed.I(((mw - width) / 2).Floor())
	case End:
		return fixed.I((mw - width).Floor())
	case Start:
		return 0
	default:
		panic(fmt.Errorf("unknown alignment %v", a))
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("invalid Alignment")
	}
}

// WrapPolicy configures strategies for choosing where to break lines of text for
// line wrapping.
type WrapPolicy uint8

const (
	// WrapWords only breaks lines at word boundaries. Lines will overflow
	// the available width rather than break words apart.
	WrapWords WrapPolicy = iota
	// WrapHeuristically tries to minimize breaking within words, but will break
	// within a word when the alternative is overflowing the available width.
	WrapHeuristically
	// WrapGraphemes will maximize the amount of text on each line at the expense
	// of legibility, breaking within words whenever it results in denser lines.
	WrapGraphemes
)

func (p WrapPolicy) String() string {
	switch p {
	case WrapWords:
		return "WrapWords"
	case WrapHeuristically:
		return "WrapHeuristically"
	case WrapGraphemes:
		return "WrapGraphemes"
	default:
		panic("invalid WrapPolicy")
	}
}

// Span overrides text styling for a half-open range of runes [Start, End)
// within the source text. A Span with an empty Typeface inherits the base
// font, a zero PxPerEm inherits the base size, and a transparent Color
// inherits the color of the surrounding text.
type Span struct {
	// Start and End bound the styled runes.
	Start, End int
	// Font replaces the base font when its Typeface is set.
	Font imfont.Font
	// PxPerEm replaces the base size when nonzero.
	PxPerEm fixed.Int26_6
	// Color is applied to the styled glyphs when its alpha is nonzero.
	Color color.NRGBA
}

// spanSegment is a maximal contiguous range of runes sharing one resolved
// shaping style.
type spanSegment struct {
	start, end int
	font       imfont.Font
	ppem       fixed.Int26_6
}

// clipSpans rebases spans onto the rune range [start, end), dropping spans
// that do not overlap it. It is used to translate document-relative spans
// into paragraph-relative ones.
func clipSpans(spans []Span, start, end int) []Span {
	clipped := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.End <= start || s.Start >= end {
			continue
		}
		if s.Start < start {
			s.Start = start
		}
		if s.End > end {
			s.End = end
		}
		s.Start -= start
		s.End -= start
		clipped = append(clipped, s)
	}
	return clipped
}

// segmentSpans divides the runes [0, runes) into consecutive segments with the
// shaping style of each resolved against the base parameters. Spans must be
// sorted by Start; overlapping ranges are clipped against their predecessors
// and uncovered gaps use the base style.
func segmentSpans(params Parameters, spans []Span, runes int) []spanSegment {
	segments := make([]spanSegment, 0, len(spans)*2+1)
	base := spanSegment{font: params.Font, ppem: params.PxPerEm}
	pos := 0
	for _, s := range spans {
		start, end := s.Start, s.End
		if start < pos {
			start = pos
		}
		if end > runes {
			end = runes
		}
		if start >= end {
			continue
		}
		if start > pos {
			seg := base
			seg.start, seg.end = pos, start
			segments = append(segments, seg)
		}
		seg := base
		seg.start, seg.end = start, end
		if s.Font.Typeface != "" {
			seg.font = s.Font
		}
		if s.PxPerEm != 0 {
			seg.ppem = s.PxPerEm
		}
		segments = append(segments, seg)
		pos = end
	}
	if pos < runes {
		seg := base
		seg.start, seg.end = pos, runes
		segments = append(segments, seg)
	}
	return segments
}
