// SPDX-License-Identifier: Unlicense OR MIT

/*
Package atlas caches rasterized glyphs in a shared texture.

An Atlas owns a CPU-side copy of the texture and the packing state for
it. Widgets insert glyphs with GetOrInsert and receive the texture
region to draw; the host owns the GPU texture itself and applies the
queued uploads when the Atlas is flushed at the end of the frame.

Entries referenced during the current frame are never evicted, so a
region handed out by GetOrInsert stays valid until Flush. One Atlas is
shared by all widgets in a process and passed to them explicitly; the
single-threaded frame loop serializes access.
*/
package atlas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
)

var (
	// ErrGlyphTooLarge is returned when a glyph cannot fit in the texture
	// even after eviction.
	ErrGlyphTooLarge = errors.New("atlas: glyph exceeds maximum texture size")
	// ErrExhausted is returned when the texture is full and every resident
	// entry has been referenced during the current frame.
	ErrExhausted = errors.New("atlas: no evictable space")
)

// Key identifies a cacheable rasterized glyph.
type Key struct {
	// ID is the shaper's glyph identity, covering face, glyph index and
	// pixel size.
	ID uint64
	// Subpixel is the quantized horizontal fraction of a pixel the glyph
	// was rasterized at.
	Subpixel uint8
	// Color distinguishes color bitmap glyphs from coverage masks.
	Color bool
}

// Image is the pixel data produced for a glyph on a cache miss. Exactly
// one of Mask and Color is set for a visible glyph; both nil means the
// glyph has no visible shape.
type Image struct {
	// Mask is the coverage mask of an outline glyph.
	Mask *image.Alpha
	// Color is the premultiplied image of a color bitmap glyph.
	Color *image.RGBA
	// Origin is the offset in pixels from the glyph dot to the top left
	// corner of the image.
	Origin image.Point
}

// RasterFunc rasterizes the glyph for a key on a cache miss.
type RasterFunc func() (Image, error)

// Slot is a glyph's region within the atlas texture.
type Slot struct {
	// Rect is the glyph pixels' location in the texture.
	Rect image.Rectangle
	// Origin is the offset in pixels from the glyph dot to Rect's top
	// left corner.
	Origin image.Point
	// Color reports whether the pixels carry their own color. Mask
	// content is stored as white and is expected to be tinted by the
	// text color when drawn.
	Color bool
}

// Empty reports whether the slot has no pixels to draw.
func (s Slot) Empty() bool {
	return s.Rect.Empty()
}

// Backend is the host's handle to the GPU texture backing the atlas.
// The atlas never draws; it only uploads pixel data.
type Backend interface {
	// Resize reallocates the texture to the given size, discarding its
	// contents.
	Resize(size image.Point)
	// Upload replaces the texture region r with pixels, a premultiplied
	// RGBA buffer whose rows are stride bytes apart.
	Upload(r image.Rectangle, pixels []byte, stride int)
}

// Options configures an Atlas. The zero value selects defaults.
type Options struct {
	// InitialSide is the starting width and height of the texture.
	// Defaults to 512.
	InitialSide int
	// MaxSide caps texture growth. Defaults to 4096.
	MaxSide int
}

// Stats counts atlas activity since creation.
type Stats struct {
	Lookups   uint64
	Hits      uint64
	Evictions uint64
	Grows     uint64
}

type entry struct {
	key Key
	// outer is the allocation including the gutter, returned to the
	// packer on eviction.
	outer image.Rectangle
	slot  Slot
	// gen orders entries for least-recently-used eviction.
	gen uint64
	// frame guards the entry against eviction while it is referenced by
	// the current frame's draws.
	frame uint64
}

// Atlas is a glyph texture cache with least-recently-used eviction.
type Atlas struct {
	maxSide int
	img     *image.RGBA
	packer  packer
	lookup  map[Key]*entry

	gen   uint64
	frame uint64

	// dirty accumulates regions to upload at the next Flush. resized
	// forces a texture reallocation and full upload instead.
	dirty   []image.Rectangle
	resized bool

	stats Stats
	// loggedFrame rate-limits exhaustion diagnostics to one per frame.
	loggedFrame uint64
}

// New constructs an Atlas with the given options.
func New(opts Options) *Atlas {
	if opts.InitialSide <= 0 {
		opts.InitialSide = 512
	}
	if opts.MaxSide <= 0 {
		opts.MaxSide = 4096
	}
	if opts.InitialSide > opts.MaxSide {
		opts.InitialSide = opts.MaxSide
	}
	side := opts.InitialSide
	a := &Atlas{
		maxSide: opts.MaxSide,
		img:     image.NewRGBA(image.Rect(0, 0, side, side)),
		lookup:  make(map[Key]*entry),
		frame:   1,
		resized: true,
	}
	a.packer.size = image.Pt(side, side)
	a.packer.maxDims = image.Pt(opts.MaxSide, opts.MaxSide)
	return a
}

// Size returns the current dimensions of the texture.
func (a *Atlas) Size() image.Point {
	return a.img.Bounds().Size()
}

// Stats returns a snapshot of the atlas counters.
func (a *Atlas) Stats() Stats {
	return a.stats
}

// Image exposes the CPU-side copy of the texture, for hosts that upload
// it wholesale and for tests.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// gutter separates entries to avoid sampling bleed between neighbours.
const gutter = 1

// GetOrInsert returns the slot for key, rasterizing and inserting the
// glyph on a miss. The returned slot is guaranteed to stay valid until
// the next Flush call.
//
// GetOrInsert fails with ErrGlyphTooLarge when the glyph cannot fit the
// texture at its maximum size, and with ErrExhausted when the texture is
// full of entries referenced this frame. Callers recover by substituting
// a placeholder glyph.
func (a *Atlas) GetOrInsert(key Key, raster RasterFunc) (Slot, error) {
	a.stats.Lookups++
	a.gen++
	if e, ok := a.lookup[key]; ok {
		a.stats.Hits++
		e.gen = a.gen
		e.frame = a.frame
		return e.slot, nil
	}
	img, err := raster()
	if err != nil {
		return Slot{}, err
	}
	var size image.Point
	switch {
	case img.Mask != nil:
		size = img.Mask.Bounds().Size()
	case img.Color != nil:
		size = img.Color.Bounds().Size()
	}
	e := &entry{
		key:   key,
		gen:   a.gen,
		frame: a.frame,
		slot: Slot{
			Origin: img.Origin,
			Color:  img.Color != nil,
		},
	}
	if size == (image.Point{}) {
		// Glyphs with no visible shape occupy no texture space, but the
		// negative result is cached to skip rasterizing them again.
		a.lookup[key] = e
		return e.slot, nil
	}
	outer, err := a.allocate(size.Add(image.Pt(2*gutter, 2*gutter)))
	if err != nil {
		if err == ErrExhausted && a.loggedFrame != a.frame {
			a.loggedFrame = a.frame
			log.Printf("atlas: exhausted at %v, all entries referenced this frame", a.Size())
		}
		return Slot{}, err
	}
	e.outer = outer
	e.slot.Rect = image.Rectangle{
		Min: outer.Min.Add(image.Pt(gutter, gutter)),
		Max: outer.Min.Add(image.Pt(gutter+size.X, gutter+size.Y)),
	}
	if img.Mask != nil {
		blitMask(a.img, e.slot.Rect, img.Mask)
	} else {
		draw.Draw(a.img, e.slot.Rect, img.Color, img.Color.Bounds().Min, draw.Src)
	}
	a.dirty = append(a.dirty, e.slot.Rect)
	a.lookup[key] = e
	return e.slot, nil
}

// placeholderBit marks key IDs reserved for placeholder entries. Shaper
// glyph IDs never set it.
const placeholderBit uint64 = 1 << 63

// Placeholder returns a tofu box of the given pixel size, sitting on the
// glyph baseline. It is an ordinary atlas entry, so drawing it exercises
// the same machinery as a real glyph. Callers substitute it for glyphs
// that fail GetOrInsert.
func (a *Atlas) Placeholder(size image.Point) (Slot, error) {
	if size.X < 2 {
		size.X = 2
	}
	if size.Y < 2 {
		size.Y = 2
	}
	key := Key{ID: placeholderBit | uint64(size.X)<<16 | uint64(size.Y)}
	return a.GetOrInsert(key, func() (Image, error) {
		mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
		bw := size.Y / 8
		if bw < 1 {
			bw = 1
		}
		on := color.Alpha{A: 0xff}
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				if x < bw || y < bw || x >= size.X-bw || y >= size.Y-bw {
					mask.SetAlpha(x, y, on)
				}
			}
		}
		return Image{Mask: mask, Origin: image.Pt(0, -size.Y)}, nil
	})
}

// blitMask writes a coverage mask into dst as premultiplied white, so
// that mask and color glyphs share one texture format and mask pixels
// can be tinted by the text color when drawn.
func blitMask(dst *image.RGBA, r image.Rectangle, mask *image.Alpha) {
	for y := 0; y < r.Dy(); y++ {
		srow := mask.Pix[y*mask.Stride : y*mask.Stride+r.Dx()]
		drow := dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y+y):]
		for x, cov := range srow {
			drow[x*4] = cov
			drow[x*4+1] = cov
			drow[x*4+2] = cov
			drow[x*4+3] = cov
		}
	}
}

// allocate finds space for an outer rectangle of the requested size,
// evicting stale entries and growing the texture as needed.
func (a *Atlas) allocate(req image.Point) (image.Rectangle, error) {
	if req.X > a.maxSide || req.Y > a.maxSide {
		return image.Rectangle{}, ErrGlyphTooLarge
	}
	for {
		if r, ok := a.packer.tryAdd(req); ok {
			return r, nil
		}
		if a.evictOne() {
			continue
		}
		if !a.grow() {
			return image.Rectangle{}, ErrExhausted
		}
	}
}

// evictOne removes the least-recently-used entry not referenced this
// frame. It reports whether an entry was evicted.
func (a *Atlas) evictOne() bool {
	var victim *entry
	for _, e := range a.lookup {
		if e.frame == a.frame {
			continue
		}
		if e.outer.Empty() {
			continue
		}
		if victim == nil || e.gen < victim.gen {
			victim = e
		}
	}
	if victim == nil {
		return false
	}
	a.packer.release(victim.outer)
	delete(a.lookup, victim.key)
	a.stats.Evictions++
	return true
}

// grow doubles the texture side, preserving resident placements. The
// enlarged texture is uploaded wholesale at the next Flush.
func (a *Atlas) grow() bool {
	side := a.Size().X
	if side >= a.maxSide {
		return false
	}
	side *= 2
	if side > a.maxSide {
		side = a.maxSide
	}
	next := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(next, a.img.Bounds(), a.img, image.Point{}, draw.Src)
	a.img = next
	a.packer.extend(image.Pt(side, side))
	a.resized = true
	a.dirty = a.dirty[:0]
	a.stats.Grows++
	return true
}

// Flush drains the upload queue into the backend and advances the frame
// epoch, making entries from the finished frame evictable again. The
// host calls it once per frame, after all widgets have drawn and before
// it submits the frame. A nil backend discards the uploads.
func (a *Atlas) Flush(b Backend) {
	if b != nil {
		if a.resized {
			b.Resize(a.Size())
			full := a.img.Bounds()
			b.Upload(full, a.img.Pix, a.img.Stride)
		} else {
			for _, r := range a.dirty {
				off := a.img.PixOffset(r.Min.X, r.Min.Y)
				b.Upload(r, a.img.Pix[off:], a.img.Stride)
			}
		}
	}
	a.resized = false
	a.dirty = a.dirty[:0]
	a.frame++
}
