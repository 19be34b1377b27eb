// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"encoding/binary"
	"hash/maphash"
	"image"

	"golang.org/x/image/math/fixed"

	imfont "github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/io/system"
)

type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
}

type bitmapCache struct {
	m          map[GlyphID]*bitmapElem
	head, tail *bitmapElem
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	layout     document
}

type bitmapElem struct {
	next, prev *bitmapElem
	key        GlyphID
	bitmap     bitmap
}

// bitmap is a decoded bitmap glyph source image, cached so that repeated
// rasterization does not decode the embedded image data every time.
type bitmap struct {
	img  image.Image
	size image.Point
}

type layoutKey struct {
	ppem               fixed.Int26_6
	maxWidth, minWidth int
	maxLines           int
	truncator          string
	locale             system.Locale
	font               imfont.Font
	forceTruncate      bool
	wrapPolicy         WrapPolicy
	str                string
	spans              spansKey
}

// spansKey is a fixed-size stand-in for a Span slice within a layoutKey.
type spansKey struct {
	count int
	hash  uint64
}

var spansSeed = maphash.MakeSeed()

// spansHash summarizes spans for use in cache keys. Distinct span slices with
// colliding hashes only cost a spurious relayout of one of them.
func spansHash(spans []Span) spansKey {
	if len(spans) == 0 {
		return spansKey{}
	}
	var h maphash.Hash
	h.SetSeed(spansSeed)
	var b [8]byte
	for _, s := range spans {
		binary.LittleEndian.PutUint32(b[:4], uint32(s.Start))
		binary.LittleEndian.PutUint32(b[4:], uint32(s.End))
		h.Write(b[:])
		h.WriteString(string(s.Font.Typeface))
		h.WriteByte(0)
		h.WriteString(string(s.Font.Variant))
		h.WriteByte(0)
		binary.LittleEndian.PutUint16(b[:2], uint16(s.Font.Style))
		binary.LittleEndian.PutUint16(b[2:4], uint16(int16(s.Font.Weight)))
		binary.LittleEndian.PutUint32(b[4:], uint32(s.PxPerEm))
		h.Write(b[:])
		h.Write([]byte{s.Color.R, s.Color.G, s.Color.B, s.Color.A})
	}
	return spansKey{count: len(spans), hash: h.Sum64()}
}

const maxSize = 1000

func (l *layoutCache) Get(k layoutKey) (document, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.layout, true
	}
	return document{}, false
}

func (l *layoutCache) Put(k layoutKey, lt document) {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &layoutElem{key: k, layout: lt}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}

func (c *bitmapCache) Get(k GlyphID) (bitmap, bool) {
	if v, ok := c.m[k]; ok {
		c.remove(v)
		c.insert(v)
		return v.bitmap, true
	}
	return bitmap{}, false
}

func (c *bitmapCache) Put(k GlyphID, b bitmap) {
	if c.m == nil {
		c.m = make(map[GlyphID]*bitmapElem)
		c.head = new(bitmapElem)
		c.tail = new(bitmapElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	val := &bitmapElem{key: k, bitmap: b}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *bitmapCache) remove(v *bitmapElem) {
	v.next.prev = v.prev
	v.prev.next = v.next
}

func (c *bitmapCache) insert(v *bitmapElem) {
	v.next = c.head
	v.prev = c.head.prev
	v.prev.next = v
	v.next.prev = v
}
