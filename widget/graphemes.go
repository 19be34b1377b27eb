// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"bufio"
	"io"

	"github.com/go-text/typesetting/segmenter"
)

// graphemeReader segments paragraphs of text into grapheme clusters.
type graphemeReader struct {
	segmenter.Segmenter
	graphemes  []int
	paragraph  []rune
	source     io.ReaderAt
	cursor     int64
	reader     *bufio.Reader
	runeOffset int
}

// SetSource configures the reader to pull from source, starting over at
// the first paragraph.
func (p *graphemeReader) SetSource(source io.ReaderAt) {
	p.source = source
	p.cursor = 0
	p.runeOffset = 0
	if p.reader == nil {
		p.reader = bufio.NewReader(p)
	} else {
		p.reader.Reset(p)
	}
}

// Read exists to satisfy io.Reader. It should not be directly invoked.
func (p *graphemeReader) Read(b []byte) (int, error) {
	n, err := p.source.ReadAt(b, p.cursor)
	p.cursor += int64(n)
	return n, err
}

// next returns the runes of the next paragraph, including its trailing
// newline. It reports false when the source is exhausted, in which case
// the returned runes (if any) form the final, unterminated paragraph.
func (p *graphemeReader) next() ([]rune, bool) {
	p.paragraph = p.paragraph[:0]
	var err error
	var r rune
	for err == nil {
		r, _, err = p.reader.ReadRune()
		if err != nil {
			break
		}
		p.paragraph = append(p.paragraph, r)
		if r == '\n' {
			break
		}
	}
	return p.paragraph, err == nil
}

// Graphemes returns the grapheme cluster boundaries of the next
// paragraph, if any. The boundaries are rune offsets into the source as a
// whole, and each paragraph's first boundary equals the previous
// paragraph's last. A nil return means there is no more text.
func (p *graphemeReader) Graphemes() []int {
	p.graphemes = p.graphemes[:0]
	p.paragraph, _ = p.next()
	if len(p.paragraph) == 0 {
		return nil
	}
	p.Segmenter.Init(p.paragraph)
	iter := p.Segmenter.GraphemeIterator()
	if iter.Next() {
		gr := iter.Grapheme()
		p.graphemes = append(p.graphemes,
			p.runeOffset+gr.Offset,
			p.runeOffset+gr.Offset+len(gr.Text),
		)
	}
	for iter.Next() {
		gr := iter.Grapheme()
		p.graphemes = append(p.graphemes, p.runeOffset+gr.Offset+len(gr.Text))
	}
	p.runeOffset += len(p.paragraph)
	return p.graphemes
}
