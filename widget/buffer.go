// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"io"
	"strings"
	"unicode/utf8"
)

// editBuffer implements a gap buffer for text editing.
type editBuffer struct {
	// caret is the caret position in bytes.
	caret int

	// The gap start and end in bytes.
	gapstart, gapend int
	text             []byte

	// changed tracks whether the buffer content has changed since the
	// last call to Changed.
	changed bool
	// generation counts logical mutations. Derived state such as shaped
	// text records the generation it was computed from and recomputes
	// when the buffer has moved on.
	generation uint
}

const minSpace = 5

func (e *editBuffer) Changed() bool {
	c := e.changed
	e.changed = false
	return c
}

func (e *editBuffer) Generation() uint {
	return e.generation
}

func (e *editBuffer) deleteRunes(caret, runes int) {
	e.moveGap(caret, 0)
	for ; runes < 0 && e.gapstart > 0; runes++ {
		_, s := utf8.DecodeLastRune(e.text[:e.gapstart])
		e.gapstart -= s
		e.caret -= s
		e.changed = e.changed || s > 0
	}
	for ; runes > 0 && e.gapend < len(e.text); runes-- {
		_, s := utf8.DecodeRune(e.text[e.gapend:])
		e.gapend += s
		e.changed = e.changed || s > 0
	}
}

// moveGap moves the gap to the caret position. After returning,
// the gap is guaranteed to be at least space bytes long.
func (e *editBuffer) moveGap(caret, space int) {
	e.caret = caret
	if e.gapLen() < space {
		if space < minSpace {
			space = minSpace
		}
		txt := make([]byte, e.len()+space)
		// Expand to capacity.
		txt = txt[:cap(txt)]
		gaplen := len(txt) - e.len()
		if e.caret > e.gapstart {
			copy(txt, e.text[:e.gapstart])
			copy(txt[e.caret+gaplen:], e.text[e.caret:])
			copy(txt[e.gapstart:], e.text[e.gapend:e.caret+e.gapLen()])
		} else {
			copy(txt, e.text[:e.caret])
			copy(txt[e.gapstart+gaplen:], e.text[e.gapend:])
			copy(txt[e.caret+gaplen:], e.text[e.caret:e.gapstart])
		}
		e.text = txt
		e.gapstart = e.caret
		e.gapend = e.gapstart + gaplen
	} else {
		if e.caret > e.gapstart {
			copy(e.text[e.gapstart:], e.text[e.gapend:e.caret+e.gapLen()])
		} else {
			copy(e.text[e.caret+e.gapLen():], e.text[e.caret:e.gapstart])
		}
		l := e.gapLen()
		e.gapstart = e.caret
		e.gapend = e.gapstart + l
	}
}

func (e *editBuffer) len() int {
	return len(e.text) - e.gapLen()
}

func (e *editBuffer) gapLen() int {
	return e.gapend - e.gapstart
}

// Size returns the total length of the buffer contents in bytes.
func (e *editBuffer) Size() int64 {
	return int64(e.len())
}

// ReadAt implements io.ReaderAt.
func (e *editBuffer) ReadAt(p []byte, offset int64) (total int, err error) {
	if offset < 0 {
		return 0, io.EOF
	}
	for len(p) > 0 {
		var data []byte
		switch {
		case offset < int64(e.gapstart):
			data = e.text[offset:e.gapstart]
		case offset < e.Size():
			data = e.text[int(offset)+e.gapLen():]
		default:
			return total, io.EOF
		}
		n := copy(p, data)
		p = p[n:]
		offset += int64(n)
		total += n
	}
	return total, nil
}

func (e *editBuffer) String() string {
	var b strings.Builder
	b.Grow(e.len())
	b.Write(e.text[:e.gapstart])
	b.Write(e.text[e.gapend:])
	return b.String()
}

// ReplaceRunes replaces runeCount runes starting at byteOffset with s.
// The generation advances exactly once, no matter how much text the
// replacement touches.
func (e *editBuffer) ReplaceRunes(byteOffset int64, runeCount int64, s string) {
	e.deleteRunes(int(byteOffset), int(runeCount))
	e.prepend(e.caret, s)
	e.generation++
}

func (e *editBuffer) prepend(caret int, s string) {
	e.moveGap(caret, len(s))
	copy(e.text[caret:], s)
	e.gapstart += len(s)
	e.changed = e.changed || len(s) > 0
}

func (e *editBuffer) runeBefore(idx int) (rune, int) {
	if idx > e.gapstart {
		idx += e.gapLen()
	}
	return utf8.DecodeLastRune(e.text[:idx])
}

func (e *editBuffer) runeAt(idx int) (rune, int) {
	if idx >= e.gapstart {
		idx += e.gapLen()
	}
	return utf8.DecodeRune(e.text[idx:])
}
