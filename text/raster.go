// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/go-text/typesetting/opentype/api"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// ErrUnsupportedGlyph is returned when a glyph's source data is in a format
// that cannot be rasterized.
var ErrUnsupportedGlyph = errors.New("unsupported glyph format")

// RasterGlyph is a rasterized glyph image. Exactly one of Mask and Color is
// set for a visible glyph: Mask for outline glyphs, which take on the text
// color at draw time, and Color for glyphs (such as emoji) that carry their
// own colors. Both are nil for glyphs with no visible shape.
type RasterGlyph struct {
	// Mask is the coverage mask of an outline glyph.
	Mask *image.Alpha
	// Color is the premultiplied image of a color bitmap glyph.
	Color *image.RGBA
	// Origin is the offset in pixels from the glyph dot to the top left
	// corner of the image.
	Origin image.Point
}

// IsColorGlyph reports whether g rasterizes to a color image rather than to
// a coverage mask.
func (l *Shaper) IsColorGlyph(g Glyph) bool {
	l.init()
	_, faceIdx, gid := splitGlyphID(g.ID)
	if faceIdx >= len(l.shaper.defaultOrderedFonts) {
		return false
	}
	switch l.shaper.faceFor(faceIdx).GlyphData(gid).(type) {
	case api.GlyphBitmap, api.GlyphSVG:
		return true
	}
	return false
}

// Rasterize renders the glyph at the size it was shaped with. subpixel is the
// fraction of a pixel (in the range [0,64) of a fixed.Int26_6) at which the
// glyph dot is positioned horizontally. Masks are rendered shifted by it so
// that glyphs drawn at fractional pixel positions stay sharp. subpixel is
// ignored for color glyphs, which are positioned at whole pixels.
func (l *Shaper) Rasterize(g Glyph, subpixel fixed.Int26_6) (RasterGlyph, error) {
	l.init()
	ppem, faceIdx, gid := splitGlyphID(g.ID)
	if faceIdx >= len(l.shaper.defaultOrderedFonts) {
		return RasterGlyph{}, fmt.Errorf("%w: unknown face %d", ErrUnsupportedGlyph, faceIdx)
	}
	face := l.shaper.faceFor(faceIdx)
	switch data := face.GlyphData(gid).(type) {
	case api.GlyphOutline:
		return l.rasterizeOutline(data, g, ppem, float32(face.Upem()), subpixel)
	case api.GlyphBitmap:
		return l.rasterizeBitmap(data, g)
	case api.GlyphSVG:
		return RasterGlyph{}, fmt.Errorf("%w: svg glyph %d", ErrUnsupportedGlyph, gid)
	default:
		return RasterGlyph{}, nil
	}
}

func (l *Shaper) rasterizeOutline(outline api.GlyphOutline, g Glyph, ppem fixed.Int26_6, upem float32, subpixel fixed.Int26_6) (RasterGlyph, error) {
	minX := (g.Bounds.Min.X + subpixel).Floor()
	maxX := (g.Bounds.Max.X + subpixel).Ceil()
	minY := g.Bounds.Min.Y.Floor()
	maxY := g.Bounds.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return RasterGlyph{}, nil
	}
	// Scale from font units to pixels, flipping to screen orientation and
	// translating the glyph box to the image origin.
	scale := fixedToFloat(ppem) / upem
	offX := fixedToFloat(subpixel) - float32(minX)
	offY := -float32(minY)
	r := vector.NewRasterizer(w, h)
	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case api.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			r.MoveTo(seg.Args[0].X*scale+offX, -seg.Args[0].Y*scale+offY)
			started = true
		case api.SegmentOpLineTo:
			r.LineTo(seg.Args[0].X*scale+offX, -seg.Args[0].Y*scale+offY)
		case api.SegmentOpQuadTo:
			r.QuadTo(
				seg.Args[0].X*scale+offX, -seg.Args[0].Y*scale+offY,
				seg.Args[1].X*scale+offX, -seg.Args[1].Y*scale+offY,
			)
		case api.SegmentOpCubeTo:
			r.CubeTo(
				seg.Args[0].X*scale+offX, -seg.Args[0].Y*scale+offY,
				seg.Args[1].X*scale+offX, -seg.Args[1].Y*scale+offY,
				seg.Args[2].X*scale+offX, -seg.Args[2].Y*scale+offY,
			)
		}
	}
	if !started {
		return RasterGlyph{}, nil
	}
	r.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.DrawOp = draw.Src
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return RasterGlyph{
		Mask:   mask,
		Origin: image.Pt(minX, minY),
	}, nil
}

func (l *Shaper) rasterizeBitmap(data api.GlyphBitmap, g Glyph) (RasterGlyph, error) {
	src, ok := l.shaper.bitmapGlyphCache.Get(g.ID)
	if !ok {
		var (
			img image.Image
			err error
		)
		switch data.Format {
		case api.PNG:
			img, err = png.Decode(bytes.NewReader(data.Data))
		case api.JPG:
			img, err = jpeg.Decode(bytes.NewReader(data.Data))
		case api.TIFF:
			img, err = tiff.Decode(bytes.NewReader(data.Data))
		default:
			return RasterGlyph{}, fmt.Errorf("%w: bitmap format %d", ErrUnsupportedGlyph, data.Format)
		}
		if err != nil {
			return RasterGlyph{}, fmt.Errorf("decoding bitmap glyph: %w", err)
		}
		src = bitmap{img: img, size: img.Bounds().Size()}
		l.shaper.bitmapGlyphCache.Put(g.ID, src)
	}
	size := image.Pt(
		(g.Bounds.Max.X - g.Bounds.Min.X).Ceil(),
		(g.Bounds.Max.Y - g.Bounds.Min.Y).Ceil(),
	)
	if size.X <= 0 || size.Y <= 0 {
		return RasterGlyph{}, nil
	}
	rgba := image.NewRGBA(image.Rectangle{Max: size})
	if size == src.size {
		draw.Draw(rgba, rgba.Bounds(), src.img, src.img.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src.img, src.img.Bounds(), draw.Src, nil)
	}
	return RasterGlyph{
		Color:  rgba,
		Origin: image.Pt(g.Bounds.Min.X.Floor(), g.Bounds.Min.Y.Floor()),
	}, nil
}
