// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/font"
	"golang.org/x/exp/slices"
	"golang.org/x/image/math/fixed"

	imfont "github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/io/system"
)

// Flags encode special properties of a glyph.
type Flags uint16

const (
	// FlagTowardOrigin is set for glyphs in runs that flow
	// towards the origin (RTL).
	FlagTowardOrigin Flags = 1 << iota
	// FlagLineBreak is set for the last glyph in a line.
	FlagLineBreak
	// FlagRunBreak is set for the last glyph in a run. A run is a sequence of
	// glyphs sharing constant style properties (same size, same face, same
	// direction, etc...).
	FlagRunBreak
	// FlagClusterBreak is set for the last glyph in a glyph cluster. A glyph
	// cluster is a sequence of glyphs which are logically a single unit, but
	// require multiple symbols from a font to display.
	FlagClusterBreak
	// FlagParagraphBreak indicates that the glyph is a line break which ended a
	// paragraph of text (rather than breaking a line for wrapping reasons). Such
	// glyphs are always synthetic and will never have an actual image.
	FlagParagraphBreak
	// FlagParagraphStart indicates that the glyph starts a new paragraph.
	FlagParagraphStart
	// FlagTruncator indicates that the glyph is part of a special truncator run
	// that does not correspond to any runes of the shaped text, but does
	// represent all runes that could not be displayed.
	FlagTruncator
)

func (f Flags) String() string {
	var b strings.Builder
	if f&FlagParagraphStart != 0 {
		b.WriteString("S")
	} else {
		b.WriteString("_")
	}
	if f&FlagParagraphBreak != 0 {
		b.WriteString("P")
	} else {
		b.WriteString("_")
	}
	if f&FlagTruncator != 0 {
		b.WriteString("…")
	} else {
		b.WriteString("_")
	}
	if f&FlagLineBreak != 0 {
		b.WriteString("L")
	} else {
		b.WriteString("_")
	}
	if f&FlagRunBreak != 0 {
		b.WriteString("R")
	} else {
		b.WriteString("_")
	}
	if f&FlagTowardOrigin != 0 {
		b.WriteString("T")
	} else {
		b.WriteString("_")
	}
	if f&FlagClusterBreak != 0 {
		b.WriteString("C")
	} else {
		b.WriteString("_")
	}
	return b.String()
}

// GlyphID uniquely identifies a glyph within a specific font.
type GlyphID uint64

// Glyph describes a shaped font glyph. Many fields are distances relative
// to the "dot", which is a point on the baseline (the line upon which glyphs
// visually rest) for the line of text containing the glyph.
//
// Glyphs are organized into "glyph clusters", sequences that together
// represent one or more runes of original text. Sequences of clusters that
// share style parameters are "runs".
type Glyph struct {
	// ID is a unique, per-shaper identifier for the shape of the glyph.
	// Glyphs from the same shaper will share an ID when they are from
	// the same face and represent the same glyph at the same size.
	ID GlyphID
	// X is the x coordinate of the dot for this glyph in document coordinates.
	X fixed.Int26_6
	// Y is the y coordinate of the dot for this glyph in document coordinates.
	Y int32
	// Advance is the logical width of the glyph. The final visual appearance
	// of the glyph may be wider or narrower than this.
	Advance fixed.Int26_6
	// Ascent is the distance from the dot to the logical top of text on this
	// glyph's line. The visual appearance of text on the line may extend above
	// this value.
	Ascent fixed.Int26_6
	// Descent is the distance from the dot to the logical bottom of text on
	// this glyph's line. The visual appearance of text on the line may extend
	// below this value.
	Descent fixed.Int26_6
	// Offset encodes the origin of the drawing coordinate space for this glyph
	// relative to the dot. This value is used when converting glyphs to paths
	// or images.
	Offset fixed.Point26_6
	// Bounds encodes the visual dimensions of the glyph relative to the dot.
	Bounds fixed.Rectangle26_6
	// Runes is the number of runes represented by the glyph cluster this glyph
	// belongs to. If Flags does not contain FlagClusterBreak, this value will
	// always be zero. The final glyph in the cluster contains the runes count
	// for the entire cluster.
	Runes int
	// Flags encode special properties of this glyph.
	Flags Flags
}

const (
	facebits = 16
	sizebits = 16
	gidbits  = 64 - facebits - sizebits
)

// newGlyphID encodes a face index, ppem size and glyph id into a GlyphID.
func newGlyphID(ppem fixed.Int26_6, faceIdx int, gid font.GID) GlyphID {
	if gid&^((1<<gidbits)-1) != 0 {
		panic("glyph id out of bounds")
	}
	if faceIdx&^((1<<facebits)-1) != 0 {
		panic("face index out of bounds")
	}
	if ppem&^((1<<sizebits)-1) != 0 {
		panic("ppem out of bounds")
	}
	return GlyphID(faceIdx)<<(gidbits+sizebits) | GlyphID(ppem)<<gidbits | GlyphID(gid)
}

// splitGlyphID is the inverse of newGlyphID.
func splitGlyphID(g GlyphID) (fixed.Int26_6, int, font.GID) {
	faceIdx := int(uint64(g) >> (gidbits + sizebits))
	ppem := fixed.Int26_6((uint64(g) >> gidbits) & ((1 << sizebits) - 1))
	gid := font.GID(g & ((1 << gidbits) - 1))
	return ppem, faceIdx, gid
}

// Parameters are static arguments to a shaping process.
type Parameters struct {
	// Font describes the preferred typeface.
	Font imfont.Font
	// Alignment characterizes the positioning of text within the space
	// available.
	Alignment Alignment
	// PxPerEm is the pixels-per-em to shape the text with.
	PxPerEm fixed.Int26_6
	// MaxLines limits the quantity of shaped lines. Zero means no limit.
	MaxLines int
	// Truncator is a string of text to insert where the shaped text was
	// truncated, which can currently only happen if MaxLines is nonzero.
	Truncator string
	// WrapPolicy configures how line breaks will be chosen when wrapping text
	// across lines.
	WrapPolicy WrapPolicy
	// MinWidth and MaxWidth provide the minimum and maximum horizontal space
	// constraints for the shaped text.
	MinWidth, MaxWidth int
	// Locale provides primary direction and language information that shapes
	// the text.
	Locale system.Locale
	// Spans optionally style sub-ranges of the text with their own font and
	// size. Spans must be sorted by Start and use rune offsets relative to the
	// shaped text. An empty slice styles all text with the base parameters.
	Spans []Span

	// forceTruncate controls whether the truncator string is inserted on the
	// final line of text with a MaxLines. It is unexported because this
	// behavior only makes sense for the shaper to control when it iterates
	// paragraphs of text.
	forceTruncate bool
}

// ShaperOption configures a shaper.
type ShaperOption func(*Shaper)

// WithCollection provides a collection of fonts to the shaper. The first
// font of the collection is the default face, and later faces are used as
// fallbacks in the order provided.
func WithCollection(collection []FontFace) ShaperOption {
	return func(s *Shaper) {
		s.config.collection = collection
	}
}

// Shaper converts strings of text into glyphs that can be displayed. It is
// fully stateful, and the results of a shaping operation are invalidated by
// the next one. Shaping results are cached, so shaping the same text with
// the same parameters repeatedly is cheap.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	initialized bool
	config      struct {
		collection []FontFace
	}
	shaper      shaperImpl
	layoutCache layoutCache

	// paragraph accumulates the runes of the current paragraph when laying
	// out text from a reader.
	paragraph []rune

	// Iterator state.
	brokeParagraph bool
	// paragraphStart is a glyph positioned at the start of the line following
	// the final paragraph break, emitted if the text ends in a paragraph
	// break.
	paragraphStart Glyph
	txt            document
	line           int
	run            int
	glyph          int
	// advance is the width of the glyphs of the current run that have already
	// been emitted.
	advance fixed.Int26_6
	// done tracks whether iteration is over.
	done bool
}

// NewShaper constructs a shaper with the provided options.
func NewShaper(options ...ShaperOption) *Shaper {
	l := &Shaper{}
	for _, opt := range options {
		opt(l)
	}
	l.init()
	return l
}

func (l *Shaper) init() {
	if l.initialized {
		return
	}
	l.initialized = true
	for _, f := range l.config.collection {
		l.shaper.Load(f)
	}
}

// Layout text from an io.RuneReader and shape it into glyphs. The results
// can be retrieved by iteratively calling NextGlyph.
func (l *Shaper) Layout(params Parameters, txt io.RuneReader) {
	l.layoutText(params, txt, "")
}

// LayoutString is Layout for strings.
func (l *Shaper) LayoutString(params Parameters, str string) {
	l.layoutText(params, nil, str)
}

func (l *Shaper) reset(align Alignment) {
	l.brokeParagraph = false
	l.txt.reset()
	l.txt.alignment = align
	l.line, l.run, l.glyph = 0, 0, 0
	l.advance = 0
	l.done = false
}

// layoutText lays out a body of text by breaking it into paragraphs and
// laying each out separately. The shaping results are cached per paragraph,
// so modifying one paragraph of a large document does not reshape the
// others. Only one of txt and str should be provided.
func (l *Shaper) layoutText(params Parameters, txt io.RuneReader, str string) {
	l.init()
	l.reset(params.Alignment)
	if txt == nil && len(str) == 0 {
		l.txt.append(l.layoutParagraph(params, "", nil))
		return
	}
	maxLines := params.MaxLines
	truncating := maxLines > 0
	var (
		done      bool
		startByte int
		endByte   int
		runeOff   int
	)
	for !done {
		l.paragraph = l.paragraph[:0]
		if txt != nil {
			for {
				r, _, err := txt.ReadRune()
				if err != nil {
					done = true
					break
				}
				l.paragraph = append(l.paragraph, r)
				if r == '\n' {
					break
				}
			}
			if done && len(l.paragraph) == 0 && len(l.txt.lines) > 0 {
				// The reader ended at a paragraph boundary that has already
				// been laid out.
				break
			}
		} else {
			for endByte = startByte; endByte < len(str); {
				r, width := utf8.DecodeRuneInString(str[endByte:])
				endByte += width
				if r == '\n' {
					break
				}
			}
			done = endByte == len(str)
		}
		endsWithNewline := false
		if txt != nil {
			endsWithNewline = len(l.paragraph) > 0 && l.paragraph[len(l.paragraph)-1] == '\n'
		} else {
			endsWithNewline = endByte > startByte && str[endByte-1] == '\n'
		}
		paragraphParams := params
		if truncating {
			paragraphParams.MaxLines = maxLines - len(l.txt.lines)
			paragraphParams.forceTruncate = endsWithNewline || !done
		}
		if len(params.Spans) > 0 {
			var paragraphRunes int
			if txt != nil {
				paragraphRunes = len(l.paragraph)
			} else {
				paragraphRunes = utf8.RuneCountInString(str[startByte:endByte])
			}
			paragraphParams.Spans = clipSpans(params.Spans, runeOff, runeOff+paragraphRunes)
			runeOff += paragraphRunes
		}
		if txt != nil {
			l.txt.append(l.layoutParagraph(paragraphParams, "", l.paragraph))
		} else {
			l.txt.append(l.layoutParagraph(paragraphParams, str[startByte:endByte], nil))
			startByte = endByte
		}
		if truncating && len(l.txt.lines) == maxLines {
			// The line limit has been reached, so any remaining text must be
			// represented by the truncator of the final line.
			unreadRunes := 0
			if txt != nil {
				for {
					if _, _, err := txt.ReadRune(); err != nil {
						break
					}
					unreadRunes++
				}
			} else {
				unreadRunes = utf8.RuneCountInString(str[endByte:])
			}
			if unreadRunes > 0 {
				// The layout cache owns the run and glyph storage of the final
				// line. Copy what we modify so that laying the paragraph out
				// again is unaffected.
				li := len(l.txt.lines) - 1
				runs := slices.Clone(l.txt.lines[li].runs)
				ri := len(runs) - 1
				runs[ri].Glyphs = slices.Clone(runs[ri].Glyphs)
				runs[ri].Runes.Count += unreadRunes
				if gi := len(runs[ri].Glyphs) - 1; gi >= 0 {
					runs[ri].Glyphs[gi].runeCount += unreadRunes
				}
				l.txt.lines[li].runs = runs
				l.txt.lines[li].runeCount += unreadRunes
			}
			done = true
		}
	}
}

// layoutParagraph shapes and wraps a paragraph using the provided parameters.
// It accepts the paragraph data in either string or rune format, preferring
// the string in order to hit the shaped text cache.
func (l *Shaper) layoutParagraph(params Parameters, asStr string, asRunes []rune) document {
	if len(asStr) == 0 && len(asRunes) > 0 {
		asStr = string(asRunes)
	}
	// Alignment is not part of the cache key because changing it does not
	// impact shaping.
	params.Alignment = Start
	lk := layoutKey{
		ppem:          params.PxPerEm,
		maxWidth:      params.MaxWidth,
		minWidth:      params.MinWidth,
		maxLines:      params.MaxLines,
		truncator:     params.Truncator,
		locale:        params.Locale,
		font:          params.Font,
		forceTruncate: params.forceTruncate,
		wrapPolicy:    params.WrapPolicy,
		str:           asStr,
		spans:         spansHash(params.Spans),
	}
	if doc, ok := l.layoutCache.Get(lk); ok {
		return doc
	}
	if asRunes == nil {
		asRunes = []rune(asStr)
	}
	doc := l.shaper.LayoutRunes(params, asRunes)
	l.layoutCache.Put(lk, doc)
	return doc
}

// NextGlyph returns the next glyph from the most recently laid out text, if
// any. Glyphs are returned in visual order within each run, with runs
// iterated logically, and lines iterated from top to bottom.
func (l *Shaper) NextGlyph() (Glyph, bool) {
	l.init()
	if l.done {
		return Glyph{}, false
	}
	for {
		if l.line == len(l.txt.lines) {
			if l.brokeParagraph {
				// The text ended in a paragraph break, so emit a glyph
				// carrying the position of the caret on the (empty) line
				// following it.
				glyph := l.paragraphStart
				l.brokeParagraph = false
				return glyph, true
			}
			l.done = true
			return Glyph{}, false
		}
		line := l.txt.lines[l.line]
		if l.run == len(line.runs) {
			l.line++
			l.run = 0
			continue
		}
		run := line.runs[l.run]
		align := l.txt.alignment.Align(line.direction, line.width, l.txt.alignWidth)
		if len(run.Glyphs) == 0 {
			if len(line.runs) == 1 {
				// The line is empty, so emit a synthetic glyph carrying the
				// line metrics.
				l.line++
				g := Glyph{
					X:       align,
					Y:       int32(line.yOffset),
					Ascent:  line.ascent,
					Descent: line.descent,
					Flags:   FlagLineBreak | FlagRunBreak | FlagClusterBreak,
				}
				if l.brokeParagraph {
					g.Flags |= FlagParagraphStart
					l.brokeParagraph = false
				}
				return g, true
			}
			// Skip empty runs on lines with more content.
			l.run++
			continue
		}
		rtl := run.Direction.Progression() == system.TowardOrigin
		// The glyph storage of an RTL run is in visual order, so iterate it
		// backwards to produce logical order.
		storageIdx := l.glyph
		if rtl {
			storageIdx = len(run.Glyphs) - 1 - l.glyph
		}
		g := run.Glyphs[storageIdx]
		endOfRun := l.glyph == len(run.Glyphs)-1
		endOfCluster := endOfRun
		if !endOfCluster {
			nextIdx := l.glyph + 1
			if rtl {
				nextIdx = len(run.Glyphs) - 1 - nextIdx
			}
			endOfCluster = run.Glyphs[nextIdx].clusterIndex != g.clusterIndex
		}
		glyph := Glyph{
			ID:      g.id,
			Y:       int32(line.yOffset),
			Advance: g.xAdvance,
			Ascent:  line.ascent,
			Descent: line.descent,
			Offset: fixed.Point26_6{
				X: g.xOffset,
				Y: -g.yOffset,
			},
			Bounds: g.bounds,
		}
		if rtl {
			// The dot of an RTL glyph sits on the left edge of its advance
			// box, furthest from the run origin.
			glyph.X = align + run.X + run.Advance - l.advance - g.xAdvance
			glyph.Flags |= FlagTowardOrigin
		} else {
			glyph.X = align + run.X + l.advance
		}
		l.advance += g.xAdvance

		if endOfCluster {
			glyph.Flags |= FlagClusterBreak
			glyph.Runes = g.runeCount
		}
		if run.truncator {
			glyph.Flags |= FlagTruncator
		}
		if endOfRun {
			glyph.Flags |= FlagRunBreak
			if l.run == len(line.runs)-1 {
				glyph.Flags |= FlagLineBreak
			}
		}
		if g.glyphCount == 0 {
			// Glyphs are only synthesized for paragraph-terminating newlines.
			glyph.Flags |= FlagParagraphBreak
		}
		if l.brokeParagraph {
			glyph.Flags |= FlagParagraphStart
			l.brokeParagraph = false
		}
		if glyph.Flags&FlagParagraphBreak != 0 {
			l.brokeParagraph = true
			l.paragraphStart = Glyph{
				X:       l.txt.alignment.Align(line.direction, 0, l.txt.alignWidth),
				Y:       glyph.Y + int32((line.ascent + line.descent).Ceil()),
				Ascent:  line.ascent,
				Descent: line.descent,
				Flags:   FlagParagraphStart | FlagLineBreak | FlagRunBreak | FlagClusterBreak,
			}
		}

		l.glyph++
		if endOfRun {
			l.glyph = 0
			l.advance = 0
			l.run++
		}
		return glyph, true
	}
}
