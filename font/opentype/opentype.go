// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType font files into faces
// usable by the text shaper.
package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/opentype/api/font"
	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/go-text/typesetting/opentype/loader"

	imfont "github.com/tamewild/imtext/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should construct a face for any given font file once, reusing
// it across different text shapers.
type Face struct {
	face    font.Font
	aspect  metadata.Aspect
	family  string
	variant string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	ld, err := loader.NewLoader(bytes.NewReader(src))
	if err != nil {
		return Face{}, err
	}
	ft, aspect, family, variant, err := parseLoader(ld)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return Face{
		face:    ft,
		aspect:  aspect,
		family:  family,
		variant: variant,
	}, nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice with
// length 1. Each returned font is wrapped in a FontFace with inferred
// font metadata. The only Variant inferred automatically is "Mono".
func ParseCollection(src []byte) ([]imfont.FontFace, error) {
	lds, err := loader.NewLoaders(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	out := make([]imfont.FontFace, len(lds))
	for i, ld := range lds {
		ft, aspect, family, variant, err := parseLoader(ld)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %s", i, err)
		}
		ff := Face{
			face:    ft,
			aspect:  aspect,
			family:  family,
			variant: variant,
		}
		out[i] = imfont.FontFace{
			Face: ff,
			Font: ff.Font(),
		}
	}

	return out, nil
}

// parseLoader parses the contents of the loader into a face and its
// metadata.
func parseLoader(ld *loader.Loader) (_ font.Font, _ metadata.Aspect, family, variant string, _ error) {
	ft, err := fontapi.NewFont(ld)
	if err != nil {
		return nil, metadata.Aspect{}, "", "", err
	}
	data := metadata.Metadata(ld)
	if data.IsMonospace {
		variant = "Mono"
	}
	return ft, data.Aspect, data.Family, variant, nil
}

// Face returns a thread-unsafe wrapper for this Face suitable for use by a
// single shaper. Face may be invoked any number of times and is safe so long
// as each return value is only used by one goroutine.
func (f Face) Face() font.Face {
	return &fontapi.Face{Font: f.face}
}

// Font returns the font metadata inferred from the parsed file.
func (f Face) Font() imfont.Font {
	return imfont.Font{
		Typeface: imfont.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
		Variant:  imfont.Variant(f.variant),
	}
}

func (f Face) style() imfont.Style {
	if f.aspect.Style == metadata.StyleItalic {
		return imfont.Italic
	}
	return imfont.Regular
}

func (f Face) weight() imfont.Weight {
	switch f.aspect.Weight {
	case metadata.WeightThin:
		return imfont.Thin
	case metadata.WeightExtraLight:
		return imfont.ExtraLight
	case metadata.WeightLight:
		return imfont.Light
	case metadata.WeightNormal:
		return imfont.Normal
	case metadata.WeightMedium:
		return imfont.Medium
	case metadata.WeightSemibold:
		return imfont.SemiBold
	case metadata.WeightBold:
		return imfont.Bold
	case metadata.WeightExtraBold:
		return imfont.ExtraBold
	case metadata.WeightBlack:
		return imfont.Black
	default:
		return imfont.Normal
	}
}
