// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"log"

	"golang.org/x/image/math/fixed"

	"github.com/tamewild/imtext/atlas"
	"github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/layout"
	"github.com/tamewild/imtext/render"
	"github.com/tamewild/imtext/text"
	"github.com/tamewild/imtext/unit"
)

// Label is a widget for laying out and drawing text.
type Label struct {
	// Alignment specifies the text alignment.
	Alignment text.Alignment
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int
	// Truncator is the text that will be shown at the end of the final
	// line if MaxLines is exceeded. Defaults to "…" if empty.
	Truncator string
	// WrapPolicy configures how displayed text will be broken into lines.
	WrapPolicy text.WrapPolicy
	// Spans optionally style sub-ranges of the text. Spans must be sorted
	// by Start.
	Spans []text.Span
}

// Layout shapes txt and appends its draw commands to list, caching glyph
// rasterizations in at. material colors glyphs not covered by a span.
func (l Label) Layout(gtx layout.Context, lt *text.Shaper, font font.Font, size unit.Sp, txt string, at *atlas.Atlas, list *render.List, material color.NRGBA) layout.Dimensions {
	cs := gtx.Constraints
	textSize := fixed.I(gtx.Sp(size))
	lt.LayoutString(text.Parameters{
		Font:       font,
		PxPerEm:    textSize,
		MaxLines:   l.MaxLines,
		Truncator:  l.Truncator,
		Alignment:  l.Alignment,
		WrapPolicy: l.WrapPolicy,
		MinWidth:   cs.Min.X,
		MaxWidth:   cs.Max.X,
		Locale:     gtx.Locale,
		Spans:      l.Spans,
	}, txt)
	viewport := image.Rectangle{Max: cs.Max}
	it := textIterator{
		shaper:   lt,
		atlas:    at,
		list:     list,
		viewport: viewport,
		maxLines: l.MaxLines,
		material: material,
		spans:    l.Spans,
	}
	for g, ok := lt.NextGlyph(); ok; g, ok = lt.NextGlyph() {
		if _, ok := it.paintGlyph(g, true); !ok {
			break
		}
	}
	dims := layout.Dimensions{Size: it.bounds.Size()}
	dims.Size = cs.Constrain(dims.Size)
	dims.Baseline = dims.Size.Y - it.baseline
	return dims
}

// subpixelBuckets is the number of horizontal subpixel phases a glyph may
// be rasterized at. More buckets improve positioning at small sizes at
// the cost of atlas space.
const subpixelBuckets = 4

// subpixelBucket quantizes the fractional part of x, returning the bucket
// index for cache keys and the offset the glyph should be rasterized at.
func subpixelBucket(x fixed.Int26_6) (uint8, fixed.Int26_6) {
	const step = 64 / subpixelBuckets
	bucket := uint8((x & 63) / step)
	return bucket, fixed.Int26_6(bucket) * step
}

// textIterator computes the used area of text from a glyph stream and,
// when given an atlas and a command list, appends draw commands for each
// visible glyph.
type textIterator struct {
	// shaper rasterizes glyphs during painting.
	shaper *text.Shaper
	// atlas caches glyph rasterizations as texture regions.
	atlas *atlas.Atlas
	// list receives the draw commands of painted glyphs.
	list *render.List
	// viewport is the rectangle of document coordinates that the iterator
	// is trying to fill with text.
	viewport image.Rectangle
	// maxLines is the maximum number of text lines that should be displayed.
	maxLines int
	// off is the translation from document coordinates to the coordinates
	// of emitted draw commands.
	off image.Point
	// material is the color of glyphs not covered by a span.
	material color.NRGBA
	// spans style sub-ranges of the text, sorted by Start.
	spans []text.Span

	// padding is the space needed outside of the bounds of the text in
	// order to display overhanging glyphs.
	padding image.Rectangle
	// bounds is the logical bounding box of the text.
	bounds image.Rectangle
	// visible tracks whether the most recently iterated glyph is visible
	// within the viewport.
	visible bool
	// first tracks whether the iterator has processed a glyph yet.
	first bool
	// baseline tracks the location of the first line of text's baseline.
	baseline int
	// runeOff tracks the rune offset of the current glyph cluster, used to
	// resolve span colors.
	runeOff int
	// linesSeen tracks the quantity of line endings this iterator has seen.
	linesSeen int
	// spanIdx is the index of the first span that may cover runeOff.
	spanIdx int
	// warnedExhausted limits atlas exhaustion logging to once per paint.
	warnedExhausted bool
}

// processGlyph checks whether the glyph is visible within the iterator's
// viewport and (if so) updates the iterator's text dimensions to include
// the glyph.
func (it *textIterator) processGlyph(g text.Glyph, ok bool) (text.Glyph, bool) {
	if it.maxLines > 0 {
		if g.Flags&text.FlagLineBreak != 0 {
			it.linesSeen++
		}
		// A trailing newline glyph doesn't need to be iterated, as it
		// only starts a line that the limit excludes.
		if it.linesSeen == it.maxLines && g.Flags&text.FlagParagraphBreak != 0 {
			return g, false
		}
	}
	// Compute the maximum extent to which glyphs overhang their logical
	// dimensions on each axis.
	if d := g.Bounds.Min.X.Floor(); d < it.padding.Min.X {
		it.padding.Min.X = d
	}
	if d := (g.Bounds.Max.X - g.Advance).Ceil(); d > it.padding.Max.X {
		it.padding.Max.X = d
	}
	if d := (g.Bounds.Min.Y + g.Ascent).Floor(); d < it.padding.Min.Y {
		it.padding.Min.Y = d
	}
	if d := (g.Bounds.Max.Y - g.Descent).Ceil(); d > it.padding.Max.Y {
		it.padding.Max.Y = d
	}
	// The glyph's logical dimensions in document coordinates. Visibility
	// and the text's bounding box are both tracked in logical space so
	// that ink overhang never changes the text's reported size.
	logicalBounds := image.Rectangle{
		Min: image.Pt(g.X.Floor(), int(g.Y)-g.Ascent.Ceil()),
		Max: image.Pt((g.X + g.Advance).Ceil(), int(g.Y)+g.Descent.Ceil()),
	}
	if !it.first {
		it.first = true
		it.baseline = int(g.Y)
		it.bounds = logicalBounds
	}

	above := logicalBounds.Max.Y < it.viewport.Min.Y
	below := logicalBounds.Min.Y > it.viewport.Max.Y
	left := logicalBounds.Max.X < it.viewport.Min.X
	right := logicalBounds.Min.X > it.viewport.Max.X
	it.visible = !above && !below && !left && !right
	if it.visible {
		it.bounds.Min.X = min(it.bounds.Min.X, logicalBounds.Min.X)
		it.bounds.Min.Y = min(it.bounds.Min.Y, logicalBounds.Min.Y)
		it.bounds.Max.X = max(it.bounds.Max.X, logicalBounds.Max.X)
		it.bounds.Max.Y = max(it.bounds.Max.Y, logicalBounds.Max.Y)
	}
	return g, ok && !below
}

// glyphMaterial resolves the color of the cluster starting at rune offset
// off, honoring span colors when one covers it.
func (it *textIterator) glyphMaterial(off int) color.NRGBA {
	for it.spanIdx < len(it.spans) && it.spans[it.spanIdx].End <= off {
		it.spanIdx++
	}
	if it.spanIdx < len(it.spans) {
		if s := it.spans[it.spanIdx]; s.Start <= off && s.Color.A > 0 {
			return s.Color
		}
	}
	return it.material
}

// paintGlyph buffers up and paints text glyphs. It should be invoked
// iteratively upon each glyph until it returns false. The returned glyph
// is the one being processed, to allow mixing this method with
// processGlyph.
func (it *textIterator) paintGlyph(glyph text.Glyph, ok bool) (text.Glyph, bool) {
	_, visibleOrBefore := it.processGlyph(glyph, ok)
	if it.visible {
		it.drawGlyph(glyph, it.glyphMaterial(it.runeOff))
	}
	it.runeOff += int(glyph.Runes)
	return glyph, visibleOrBefore
}

// drawGlyph appends the textured quad for g to the command list, clipped
// to the viewport. Glyphs the atlas cannot hold are drawn as placeholder
// boxes.
func (it *textIterator) drawGlyph(g text.Glyph, material color.NRGBA) {
	bucket, subpix := subpixelBucket(g.X)
	key := atlas.Key{
		ID:       uint64(g.ID),
		Subpixel: bucket,
		Color:    it.shaper.IsColorGlyph(g),
	}
	slot, err := it.atlas.GetOrInsert(key, func() (atlas.Image, error) {
		rg, err := it.shaper.Rasterize(g, subpix)
		if err != nil {
			return atlas.Image{}, err
		}
		return atlas.Image{Mask: rg.Mask, Color: rg.Color, Origin: rg.Origin}, nil
	})
	if err != nil {
		if err == atlas.ErrExhausted && !it.warnedExhausted {
			log.Printf("imtext: glyph atlas exhausted: %v", err)
			it.warnedExhausted = true
		}
		it.drawPlaceholder(g, material)
		return
	}
	it.drawSlot(g, slot, material)
}

// drawPlaceholder draws a tofu box approximating the glyph's advance and
// ascent in place of its real shape.
func (it *textIterator) drawPlaceholder(g text.Glyph, material color.NRGBA) {
	size := image.Pt(g.Advance.Ceil(), g.Ascent.Ceil())
	if size.X < 2 {
		size.X = 2
	}
	if size.Y < 2 {
		size.Y = 2
	}
	slot, err := it.atlas.Placeholder(size)
	if err != nil {
		return
	}
	it.drawSlot(g, slot, material)
}

func (it *textIterator) drawSlot(g text.Glyph, slot atlas.Slot, material color.NRGBA) {
	if slot.Empty() {
		return
	}
	dot := image.Pt(g.X.Floor(), int(g.Y))
	dst := image.Rectangle{Min: dot.Add(slot.Origin)}
	dst.Max = dst.Min.Add(slot.Rect.Size())
	dst = dst.Add(it.off)
	vis := dst.Intersect(it.viewport.Add(it.off))
	if vis.Empty() {
		return
	}
	// Shrink the source region in step with the clipped destination.
	src := slot.Rect
	src.Min = src.Min.Add(vis.Min.Sub(dst.Min))
	src.Max = src.Min.Add(vis.Size())
	if slot.Color {
		// Color glyphs carry their own colors and are passed through
		// premultiplied.
		material = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	it.list.Quad(vis, src, material)
}
