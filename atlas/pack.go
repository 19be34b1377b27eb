// SPDX-License-Identifier: Unlicense OR MIT

package atlas

import "image"

// packer packs rectangles onto horizontal shelves stacked from the top of
// the texture downwards. Each shelf has a fixed height chosen when the
// first rectangle is placed on it, quantized so that rectangles of similar
// heights share shelves.
type packer struct {
	size    image.Point
	maxDims image.Point
	shelves []shelf
}

type shelf struct {
	y, height int
	// x is the fill cursor of the shelf.
	x int
	// free holds slots returned to the shelf, reused before the cursor
	// advances.
	free []image.Rectangle
}

// shelfHeight quantizes h to a shelf height bucket. Small rectangles round
// up to a multiple of 8, larger ones to a multiple of 16, limiting the
// number of distinct shelves.
func shelfHeight(h int) int {
	quantum := 8
	if h > 64 {
		quantum = 16
	}
	return (h + quantum - 1) &^ (quantum - 1)
}

func (p *packer) clear() {
	p.shelves = p.shelves[:0]
}

// extend grows the packing area to size, keeping existing placements
// valid. size must not be smaller than the current size.
func (p *packer) extend(size image.Point) {
	p.size = size
}

// tryAdd allocates a rectangle of the requested size, returning false when
// no space is left.
func (p *packer) tryAdd(req image.Point) (image.Rectangle, bool) {
	if req.X > p.size.X || req.Y > p.size.Y {
		return image.Rectangle{}, false
	}
	height := shelfHeight(req.Y)
	// Reuse a free slot or shelf space of the matching height bucket.
	for i := range p.shelves {
		s := &p.shelves[i]
		if s.height != height {
			continue
		}
		for j, f := range s.free {
			if f.Dx() < req.X {
				continue
			}
			if rest := f.Dx() - req.X; rest > 0 {
				// Keep the unused remainder of the slot.
				s.free[j].Min.X += req.X
			} else {
				s.free = append(s.free[:j], s.free[j+1:]...)
			}
			return image.Rectangle{Min: f.Min, Max: f.Min.Add(req)}, true
		}
		if s.x+req.X <= p.size.X {
			r := image.Rectangle{
				Min: image.Pt(s.x, s.y),
				Max: image.Pt(s.x+req.X, s.y+req.Y),
			}
			s.x += req.X
			return r, true
		}
	}
	// Open a new shelf below the last one.
	y := 0
	if n := len(p.shelves); n > 0 {
		last := &p.shelves[n-1]
		y = last.y + last.height
	}
	if y+height > p.size.Y {
		return image.Rectangle{}, false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: height, x: req.X})
	return image.Rectangle{Min: image.Pt(0, y), Max: image.Pt(req.X, y+req.Y)}, true
}

// release returns a previously allocated rectangle to its shelf's free
// list. A trailing shelf whose space is entirely free is reclaimed.
func (p *packer) release(r image.Rectangle) {
	for i := range p.shelves {
		s := &p.shelves[i]
		if r.Min.Y < s.y || r.Min.Y >= s.y+s.height {
			continue
		}
		// Widen the freed slot to the full shelf height so differently
		// sized rectangles can reuse it.
		r.Max.Y = r.Min.Y + s.height
		s.free = append(s.free, r)
		p.reclaim()
		return
	}
}

// reclaim drops trailing shelves whose allocations have all been freed.
func (p *packer) reclaim() {
	for len(p.shelves) > 0 {
		s := &p.shelves[len(p.shelves)-1]
		used := s.x
		for _, f := range s.free {
			used -= f.Dx()
		}
		if used > 0 {
			return
		}
		p.shelves = p.shelves[:len(p.shelves)-1]
	}
}
