package widget

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sort"
	"testing"

	colEmoji "eliasnaur.com/font/noto/emoji/color"
	"golang.org/x/exp/maps"

	"github.com/tamewild/imtext/atlas"
	"github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/font/gofont"
	"github.com/tamewild/imtext/font/opentype"
	"github.com/tamewild/imtext/io/system"
	"github.com/tamewild/imtext/layout"
	"github.com/tamewild/imtext/render"
	"github.com/tamewild/imtext/text"
	"github.com/tamewild/imtext/unit"
)

var (
	documents = map[string]string{
		"latin":   latinDocument,
		"arabic":  arabicDocument,
		"complex": complexDocument,
		"emoji":   emojiDocument,
	}
	emojiFace = func() opentype.Face {
		face, _ := opentype.Parse(colEmoji.TTF)
		return face
	}()
	sizes      = []int{10, 100, 1000}
	locales    = []system.Locale{arabic, english}
	benchFonts = func() []font.FontFace {
		collection := gofont.Collection()
		collection = append(collection, arabicCollection...)
		collection = append(collection, font.FontFace{
			Font: font.Font{
				Typeface: "Noto Color Emoji",
			},
			Face: emojiFace,
		})
		return collection
	}()
)

func runBenchmarkPermutations(b *testing.B, benchmark func(b *testing.B, runes int, locale system.Locale, document string)) {
	docKeys := maps.Keys(documents)
	sort.Strings(docKeys)
	for _, locale := range locales {
		for _, runes := range sizes {
			for _, textType := range docKeys {
				txt := documents[textType]
				b.Run(fmt.Sprintf("%drunes-%s-%s", runes, locale.Direction, textType), func(b *testing.B) {
					benchmark(b, runes, locale, txt)
				})
			}
		}
	}
}

func benchGtx(locale system.Locale, size image.Point) layout.Context {
	return layout.Context{
		Constraints: layout.Constraints{
			Max: size,
		},
		Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Locale: locale,
	}
}

func BenchmarkLabelStatic(b *testing.B) {
	runBenchmarkPermutations(b, func(b *testing.B, runeCount int, locale system.Locale, txt string) {
		gtx := benchGtx(locale, image.Pt(200, 1000))
		cache := text.NewShaper(text.WithCollection(benchFonts))
		at := atlas.New(atlas.Options{})
		list := new(render.List)
		fontSize := unit.Sp(10)
		font := font.Font{}
		material := color.NRGBA{A: 0xFF}
		runes := []rune(txt)[:runeCount]
		runesStr := string(runes)
		l := Label{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Layout(gtx, cache, font, fontSize, runesStr, at, list, material)
			at.Flush(nil)
			list.Reset()
		}
	})
}

func BenchmarkLabelDynamic(b *testing.B) {
	runBenchmarkPermutations(b, func(b *testing.B, runeCount int, locale system.Locale, txt string) {
		gtx := benchGtx(locale, image.Pt(200, 1000))
		cache := text.NewShaper(text.WithCollection(benchFonts))
		at := atlas.New(atlas.Options{})
		list := new(render.List)
		fontSize := unit.Sp(10)
		font := font.Font{}
		material := color.NRGBA{A: 0xFF}
		runes := []rune(txt)[:runeCount]
		l := Label{}
		r := rand.New(rand.NewSource(42))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// simulate a constantly changing string
			a := r.Intn(len(runes))
			b := r.Intn(len(runes))
			runes[a], runes[b] = runes[b], runes[a]
			l.Layout(gtx, cache, font, fontSize, string(runes), at, list, material)
			at.Flush(nil)
			list.Reset()
		}
	})
}

func BenchmarkEditorStatic(b *testing.B) {
	runBenchmarkPermutations(b, func(b *testing.B, runeCount int, locale system.Locale, txt string) {
		gtx := benchGtx(locale, image.Pt(200, 1000))
		cache := text.NewShaper(text.WithCollection(benchFonts))
		at := atlas.New(atlas.Options{})
		list := new(render.List)
		fontSize := unit.Sp(10)
		font := font.Font{}
		runes := []rune(txt)[:runeCount]
		runesStr := string(runes)
		e := Editor{}
		e.SetText(runesStr)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e.Layout(gtx, cache, font, fontSize, at, list)
			at.Flush(nil)
			list.Reset()
		}
	})
}

func BenchmarkEditorDynamic(b *testing.B) {
	runBenchmarkPermutations(b, func(b *testing.B, runeCount int, locale system.Locale, txt string) {
		gtx := benchGtx(locale, image.Pt(200, 1000))
		cache := text.NewShaper(text.WithCollection(benchFonts))
		at := atlas.New(atlas.Options{})
		list := new(render.List)
		fontSize := unit.Sp(10)
		font := font.Font{}
		runes := []rune(txt)[:runeCount]
		e := Editor{}
		e.SetText(string(runes))
		r := rand.New(rand.NewSource(42))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			// simulate a constantly changing string
			a := r.Intn(e.Len())
			b := r.Intn(e.Len())
			e.SetCaret(a, a+1)
			takeStr := e.SelectedText()
			e.Insert("")
			e.SetCaret(b, b)
			e.Insert(takeStr)
			e.Layout(gtx, cache, font, fontSize, at, list)
			at.Flush(nil)
			list.Reset()
		}
	})
}

func FuzzEditorEditing(f *testing.F) {
	f.Add(complexDocument, int16(0), int16(len([]rune(complexDocument))))
	gtx := benchGtx(arabic, image.Pt(200, 1000))
	cache := text.NewShaper(text.WithCollection(benchFonts))
	at := atlas.New(atlas.Options{})
	list := new(render.List)
	fontSize := unit.Sp(10)
	font := font.Font{}
	e := Editor{}
	f.Fuzz(func(t *testing.T, txt string, replaceFrom, replaceTo int16) {
		e.SetText(txt)
		e.Layout(gtx, cache, font, fontSize, at, list)
		// simulate a constantly changing string
		if e.Len() > 0 {
			a := int(replaceFrom) % e.Len()
			b := int(replaceTo) % e.Len()
			e.SetCaret(a, a+1)
			takeStr := e.SelectedText()
			e.Insert("")
			e.SetCaret(b, b)
			e.Insert(takeStr)
		}
		e.Layout(gtx, cache, font, fontSize, at, list)
		at.Flush(nil)
		list.Reset()
	})
}

const (
	latinDocument = `Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.
Porttitor eget dolor morbi non arcu risus quis.
Nibh sit amet commodo nulla.
Posuere ac ut consequat semper viverra nam libero justo.
Risus in hendrerit gravida rutrum quisque.
Natoque penatibus et magnis dis parturient montes nascetur.
In metus vulputate eu scelerisque felis imperdiet proin fermentum.
Mattis rhoncus urna neque viverra.
Elit pellentesque habitant morbi tristique.
Nisl nunc mi ipsum faucibus vitae aliquet nec.
Sed augue lacus viverra vitae congue eu consequat.
At quis risus sed vulputate odio ut.
Sit amet volutpat consequat mauris nunc congue nisi.
Dignissim cras tincidunt lobortis feugiat.
Faucibus turpis in eu mi bibendum.
Odio aenean sed adipiscing diam donec adipiscing tristique.
Fermentum leo vel orci porta non pulvinar.
Ut venenatis tellus in metus vulputate eu scelerisque felis imperdiet.
Et netus et malesuada fames ac turpis.
Venenatis urna cursus eget nunc scelerisque viverra mauris in.
Risus ultricies tristique nulla aliquet enim tortor.
Risus pretium quam vulputate dignissim suspendisse in.
Interdum velit euismod in pellentesque massa placerat duis ultricies lacus.
Proin gravida hendrerit lectus a.
Auctor augue mauris augue neque gravida in fermentum et.
Laoreet sit amet cursus sit amet dictum.
In fermentum et sollicitudin ac orci phasellus egestas tellus rutrum.
Tempus imperdiet nulla malesuada pellentesque elit eget gravida.
Consequat id porta nibh venenatis cras sed.
Vulputate ut pharetra sit amet aliquam.
Congue mauris rhoncus aenean vel elit.
Risus quis varius quam quisque id diam vel quam elementum.
Pretium lectus quam id leo in vitae.
Sed sed risus pretium quam vulputate dignissim suspendisse in est.
Velit laoreet id donec ultrices.
Nunc sed velit dignissim sodales ut.
Nunc scelerisque viverra mauris in aliquam sem fringilla ut.
Sed enim ut sem viverra aliquet eget sit.
Convallis posuere morbi leo urna molestie at.
Aliquam id diam maecenas ultricies mi eget mauris.
Ipsum dolor sit amet consectetur adipiscing elit ut aliquam.
Accumsan tortor posuere ac ut consequat semper.
Viverra vitae congue eu consequat ac felis donec et odio.
Scelerisque in dictum non consectetur a.
Consequat nisl vel pretium lectus quam id leo in vitae.
Morbi tristique senectus et netus et malesuada fames ac turpis.
Ac orci phasellus egestas tellus.
Tempus egestas sed sed risus.
Ullamcorper morbi tincidunt ornare massa eget egestas purus.
Nibh venenatis cras sed felis eget velit.`
	arabicDocument = `Ùˆ Ø³Ø£Ø¹Ø±Ø¶ Ù…Ø«Ø§Ù„ Ø­ÙŠ Ù„Ù‡Ø°Ø§ØŒ Ù…Ù† Ù…Ù†Ø§ Ù„Ù… ÙŠØªØ­Ù…Ù„ Ø¬Ù‡Ø¯ Ø¨Ø¯Ù†ÙŠ Ø´Ø§Ù‚ Ø¥Ù„Ø§ Ù…Ù† Ø£Ø¬Ù„ Ø§Ù„Ø­ØµÙˆÙ„ Ø¹Ù„Ù‰ Ù…ÙŠØ²Ø© Ø£Ùˆ ÙØ§Ø¦Ø¯Ø©ØŸ ÙˆÙ„ÙƒÙ† Ù…Ù† Ù„Ø¯ÙŠÙ‡ Ø§Ù„Ø­Ù‚ Ø£Ù† ÙŠÙ†ØªÙ‚Ø¯ Ø´Ø®Øµ Ù…Ø§ Ø£Ø±Ø§Ø¯ Ø£Ù† ÙŠØ´Ø¹Ø± Ø¨Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ø§Ù„ØªÙŠ Ù„Ø§ ØªØ´ÙˆØ¨Ù‡Ø§ Ø¹ÙˆØ§Ù‚Ø¨ Ø£Ù„ÙŠÙ…Ø© Ø£Ùˆ Ø¢Ø®Ø± Ø£Ø±Ø§Ø¯ Ø£Ù† ÙŠØªØ¬Ù†Ø¨ Ø§Ù„Ø£Ù„Ù… Ø§Ù„Ø°ÙŠ Ø±Ø¨Ù…Ø§ ØªÙ†Ø¬Ù… Ø¹Ù†Ù‡ Ø¨Ø¹Ø¶ Ø§Ù„Ù…ØªØ¹Ø© ØŸ Ø¹Ù„ÙŠ Ø§Ù„Ø¬Ø§Ù†Ø¨ Ø§Ù„Ø¢Ø®Ø± Ù†Ø´Ø¬Ø¨ ÙˆÙ†Ø³ØªÙ†ÙƒØ± Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø±Ø¬Ø§Ù„ Ø§Ù„Ù…ÙØªÙˆÙ†ÙˆÙ† Ø¨Ù†Ø´ÙˆØ© Ø§Ù„Ù„Ø­Ø¸Ø© Ø§Ù„Ù‡Ø§Ø¦Ù…ÙˆÙ† ÙÙŠ Ø±ØºØ¨Ø§ØªÙ‡Ù… ÙÙ„Ø§ ÙŠØ¯Ø±ÙƒÙˆÙ† Ù…Ø§ ÙŠØ¹Ù‚Ø¨Ù‡Ø§ Ù…Ù† Ø§Ù„Ø£Ù„Ù… ÙˆØ§Ù„Ø£Ø³ÙŠ Ø§Ù„Ù…Ø­ØªÙ…ØŒ ÙˆØ§Ù„Ù„ÙˆÙ… ÙƒØ°Ù„Ùƒ ÙŠØ´Ù…Ù„ Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø°ÙŠÙ† Ø£Ø®ÙÙ‚ÙˆØ§ ÙÙŠ ÙˆØ§Ø¬Ø¨Ø§ØªÙ‡Ù… Ù†ØªÙŠØ¬Ø© Ù„Ø¶Ø¹Ù Ø¥Ø±Ø§Ø¯ØªÙ‡Ù… ÙÙŠØªØ³Ø§ÙˆÙŠ Ù…Ø¹ Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø°ÙŠÙ† ÙŠØªØ¬Ù†Ø¨ÙˆÙ† ÙˆÙŠÙ†Ø£ÙˆÙ† Ø¹Ù† ØªØ­Ù…Ù„ Ø§Ù„ÙƒØ¯Ø­ ÙˆØ§Ù„Ø£Ù„Ù… .
Ù…Ù† Ø§Ù„Ù…ÙØªØ±Ø¶ Ø£Ù† Ù†ÙØ±Ù‚ Ø¨ÙŠÙ† Ù‡Ø°Ù‡ Ø§Ù„Ø­Ø§Ù„Ø§Øª Ø¨ÙƒÙ„ Ø³Ù‡ÙˆÙ„Ø© ÙˆÙ…Ø±ÙˆÙ†Ø©.
ÙÙŠ Ø°Ø§Ùƒ Ø§Ù„ÙˆÙ‚Øª Ø¹Ù†Ø¯Ù…Ø§ ØªÙƒÙˆÙ† Ù‚Ø¯Ø±ØªÙ†Ø§ Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· ÙˆØ¹Ù†Ø¯Ù…Ø§ Ù„Ø§ Ù†Ø¬Ø¯ Ù…Ø§ ÙŠÙ…Ù†Ø¹Ù†Ø§ Ø£Ù† Ù†ÙØ¹Ù„ Ø§Ù„Ø£ÙØ¶Ù„ ÙÙ‡Ø§ Ù†Ø­Ù† Ù†Ø±Ø­Ø¨ Ø¨Ø§Ù„Ø³Ø±ÙˆØ± ÙˆØ§Ù„Ø³Ø¹Ø§Ø¯Ø© ÙˆÙ†ØªØ¬Ù†Ø¨ ÙƒÙ„ Ù…Ø§ ÙŠØ¨Ø¹Ø« Ø¥Ù„ÙŠÙ†Ø§ Ø§Ù„Ø£Ù„Ù….
ÙÙŠ Ø¨Ø¹Ø¶ Ø§Ù„Ø£Ø­ÙŠØ§Ù† ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ ÙŠÙØ±Ø¶Ù‡Ø§ Ø¹Ù„ÙŠÙ†Ø§ Ø§Ù„ÙˆØ§Ø¬Ø¨ ÙˆØ§Ù„Ø¹Ù…Ù„ Ø³Ù†ØªÙ†Ø§Ø²Ù„ ØºØ§Ù„Ø¨Ø§Ù‹ ÙˆÙ†Ø±ÙØ¶ Ø§Ù„Ø´Ø¹ÙˆØ± Ø¨Ø§Ù„Ø³Ø±ÙˆØ± ÙˆÙ†Ù‚Ø¨Ù„ Ù…Ø§ ÙŠØ¬Ù„Ø¨Ù‡ Ø¥Ù„ÙŠÙ†Ø§ Ø§Ù„Ø£Ø³Ù‰.
Ø§Ù„Ø¥Ù†Ø³Ø§Ù† Ø§Ù„Ø­ÙƒÙŠÙ… Ø¹Ù„ÙŠÙ‡ Ø£Ù† ÙŠÙ…Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ Ø£Ù† ÙŠØ±ÙØ¶ Ù…ØµØ§Ø¯Ø± Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ù…Ù† Ø£Ø¬Ù„ Ù…Ø§ Ù‡Ùˆ Ø£ÙƒØ«Ø± Ø£Ù‡Ù…ÙŠØ© Ø£Ùˆ ÙŠØªØ­Ù…Ù„ Ø§Ù„Ø£Ù„Ù… Ù…Ù† Ø£Ø¬Ù„ Ø£Ù„Ø§ ÙŠØªØ­Ù…Ù„ Ù…Ø§ Ù‡Ùˆ Ø£Ø³ÙˆØ£.
Ùˆ Ø³Ø£Ø¹Ø±Ø¶ Ù…Ø«Ø§Ù„ Ø­ÙŠ Ù„Ù‡Ø°Ø§ØŒ Ù…Ù† Ù…Ù†Ø§ Ù„Ù… ÙŠØªØ­Ù…Ù„ Ø¬Ù‡Ø¯ Ø¨Ø¯Ù†ÙŠ Ø´Ø§Ù‚ Ø¥Ù„Ø§ Ù…Ù† Ø£Ø¬Ù„ Ø§Ù„Ø­ØµÙˆÙ„ Ø¹Ù„Ù‰ Ù…ÙŠØ²Ø© Ø£Ùˆ ÙØ§Ø¦Ø¯Ø©ØŸ ÙˆÙ„ÙƒÙ† Ù…Ù† Ù„Ø¯ÙŠÙ‡ Ø§Ù„Ø­Ù‚ Ø£Ù† ÙŠÙ†ØªÙ‚Ø¯ Ø´Ø®Øµ Ù…Ø§ Ø£Ø±Ø§Ø¯ Ø£Ù† ÙŠØ´Ø¹Ø± Ø¨Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ø§Ù„ØªÙŠ Ù„Ø§ ØªØ´ÙˆØ¨Ù‡Ø§ Ø¹ÙˆØ§Ù‚Ø¨ Ø£Ù„ÙŠÙ…Ø© Ø£Ùˆ Ø¢Ø®Ø± Ø£Ø±Ø§Ø¯ Ø£Ù† ÙŠØªØ¬Ù†Ø¨ Ø§Ù„Ø£Ù„Ù… Ø§Ù„Ø°ÙŠ Ø±Ø¨Ù…Ø§ ØªÙ†Ø¬Ù… Ø¹Ù†Ù‡ Ø¨Ø¹Ø¶ Ø§Ù„Ù…ØªØ¹Ø© ØŸ Ø¹Ù„ÙŠ Ø§Ù„Ø¬Ø§Ù†Ø¨ Ø§Ù„Ø¢Ø®Ø± Ù†Ø´Ø¬Ø¨ ÙˆÙ†Ø³ØªÙ†ÙƒØ± Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø±Ø¬Ø§Ù„ Ø§Ù„Ù…ÙØªÙˆÙ†ÙˆÙ† Ø¨Ù†Ø´ÙˆØ© Ø§Ù„Ù„Ø­Ø¸Ø© Ø§Ù„Ù‡Ø§Ø¦Ù…ÙˆÙ† ÙÙŠ Ø±ØºØ¨Ø§ØªÙ‡Ù… ÙÙ„Ø§ ÙŠØ¯Ø±ÙƒÙˆÙ† Ù…Ø§ ÙŠØ¹Ù‚Ø¨Ù‡Ø§ Ù…Ù† Ø§Ù„Ø£Ù„Ù… ÙˆØ§Ù„Ø£Ø³ÙŠ Ø§Ù„Ù…Ø­ØªÙ…ØŒ ÙˆØ§Ù„Ù„ÙˆÙ… ÙƒØ°Ù„Ùƒ ÙŠØ´Ù…Ù„ Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø°ÙŠÙ† Ø£Ø®ÙÙ‚ÙˆØ§ ÙÙŠ ÙˆØ§Ø¬Ø¨Ø§ØªÙ‡Ù… Ù†ØªÙŠØ¬Ø© Ù„Ø¶Ø¹Ù Ø¥Ø±Ø§Ø¯ØªÙ‡Ù… ÙÙŠØªØ³Ø§ÙˆÙŠ Ù…Ø¹ Ù‡Ø¤Ù„Ø§Ø¡ Ø§Ù„Ø°ÙŠÙ† ÙŠØªØ¬Ù†Ø¨ÙˆÙ† ÙˆÙŠÙ†Ø£ÙˆÙ† Ø¹Ù† ØªØ­Ù…Ù„ Ø§Ù„ÙƒØ¯Ø­ ÙˆØ§Ù„Ø£Ù„Ù… .
Ù…Ù† Ø§Ù„Ù…ÙØªØ±Ø¶ Ø£Ù† Ù†ÙØ±Ù‚ Ø¨ÙŠÙ† Ù‡Ø°Ù‡ Ø§Ù„Ø­Ø§Ù„Ø§Øª Ø¨ÙƒÙ„ Ø³Ù‡ÙˆÙ„Ø© ÙˆÙ…Ø±ÙˆÙ†Ø©.
ÙÙŠ Ø°Ø§Ùƒ Ø§Ù„ÙˆÙ‚Øª Ø¹Ù†Ø¯Ù…Ø§ ØªÙƒÙˆÙ† Ù‚Ø¯Ø±ØªÙ†Ø§ Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· ÙˆØ¹Ù†Ø¯Ù…Ø§ Ù„Ø§ Ù†Ø¬Ø¯ Ù…Ø§ ÙŠÙ…Ù†Ø¹Ù†Ø§ Ø£Ù† Ù†ÙØ¹Ù„ Ø§Ù„Ø£ÙØ¶Ù„ ÙÙ‡Ø§ Ù†Ø­Ù† Ù†Ø±Ø­Ø¨ Ø¨Ø§Ù„Ø³Ø±ÙˆØ± ÙˆØ§Ù„Ø³Ø¹Ø§Ø¯Ø© ÙˆÙ†ØªØ¬Ù†Ø¨ ÙƒÙ„ Ù…Ø§ ÙŠØ¨Ø¹Ø« Ø¥Ù„ÙŠÙ†Ø§ Ø§Ù„Ø£Ù„Ù….
ÙÙŠ Ø¨Ø¹Ø¶ Ø§Ù„Ø£Ø­ÙŠØ§Ù† ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ ÙŠÙØ±Ø¶Ù‡Ø§ Ø¹Ù„ÙŠÙ†Ø§ Ø§Ù„ÙˆØ§Ø¬Ø¨ ÙˆØ§Ù„Ø¹Ù…Ù„ Ø³Ù†ØªÙ†Ø§Ø²Ù„ ØºØ§Ù„Ø¨Ø§Ù‹ ÙˆÙ†Ø±ÙØ¶ Ø§Ù„Ø´Ø¹ÙˆØ± Ø¨Ø§Ù„Ø³Ø±ÙˆØ± ÙˆÙ†Ù‚Ø¨Ù„ Ù…Ø§ ÙŠØ¬Ù„Ø¨Ù‡ Ø¥Ù„ÙŠÙ†Ø§ Ø§Ù„Ø£Ø³Ù‰.
Ø§Ù„Ø¥Ù†Ø³Ø§Ù† Ø§Ù„Ø­ÙƒÙŠÙ… Ø¹Ù„ÙŠÙ‡ Ø£Ù† ÙŠÙ…Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ Ø£Ù† ÙŠØ±ÙØ¶ Ù…ØµØ§Ø¯Ø± Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ù…Ù† Ø£Ø¬Ù„ Ù…Ø§ Ù‡Ùˆ Ø£ÙƒØ«Ø± Ø£Ù‡Ù…ÙŠØ© Ø£Ùˆ ÙŠØªØ­Ù…Ù„ Ø§Ù„Ø£Ù„Ù… Ù…Ù† Ø£Ø¬Ù„ Ø£Ù„Ø§ ÙŠØªØ­Ù…Ù„ Ù…Ø§ Ù‡Ùˆ Ø£Ø³ÙˆØ£.`
	complexDocument = `Ùˆ Ø³Ø£Ø¹Ø±Ø¶ Ù…Ø«Ø§Ù„ dolor sit amet, Ù„Ù… ÙŠØªØ­Ù…Ù„ Ø¬Ù‡Ø¯ adipiscing elit, sed do Ø§Ù„Ø­ØµÙˆÙ„ Ø¹Ù„Ù‰ Ù…ÙŠØ²Ø© incididunt ut labore Ø£Ù† ÙŠÙ†ØªÙ‚Ø¯ magna aliqua.
Porttitor Ø¥Ø±Ø§Ø¯ØªÙ‡Ù… ÙÙŠØªØ³Ø§ÙˆÙŠ morbi non arcu ÙŠØ¯Ø±ÙƒÙˆÙ† Ù…Ø§ ÙŠØ¹Ù‚Ø¨Ù‡Ø§ .
Nibh Ù†Ø´Ø¬Ø¨ ÙˆÙ†Ø³ØªÙ†ÙƒØ± commodo nulla.
Ø¨ÙƒÙ„ Ø³Ù‡ÙˆÙ„Ø© ÙˆÙ…Ø±ÙˆÙ†Ø© ut consequat  Ù„Ù‡Ø°Ø§ØŒ Ù…Ù† Ù…Ù†Ø§  nam libero justo.
Risus in hendrerit Ø¹Ù„ÙŠÙ†Ø§ Ø§Ù„ÙˆØ§Ø¬Ø¨ ÙˆØ§Ù„Ø¹Ù…Ù„.
Natoque ØªÙƒÙˆÙ† Ù‚Ø¯Ø±ØªÙ†Ø§ Ø¹Ù„ÙŠ magnis dis parturient  ÙŠÙ…Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø±.
In Ù†Ø¬Ø¯ Ù…Ø§ ÙŠÙ…Ù†Ø¹Ù†Ø§ eu scelerisque ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ fermentum.
Mattis Ø© Ø¨Ø´Ø±Ø· ÙˆØ¹Ù†Ø¯Ù…Ø§ Ù„Ø§  neque viverra.
ÙŠÙ…Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ±  habitant Ù„Ù‡Ø°Ø§ØŒ Ù…Ù†.
Nisl ØªÙŠ ÙŠÙØ±Ø¶Ù‡Ø§ Ø¹Ù„ÙŠÙ†Ø§ faucibus ØŒÙ…Ù† Ù…Ù†Ø§ Ù„Ù… nec.
Sed augue Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± vitae congue eu consequat.
At quis risus Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø±.
Sit amet volutpat consequat mauris Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ nisi.
Dignissim Ù„ÙˆØ§Ø¬Ø¨ ÙˆØ§Ù„Ø¹Ù…Ù„ tincidunt Ø³Ù†ØªÙ†Ø§Ø²Ù„ feugiat.
Faucibus Ø§Ù„ØªØ²Ø§Ù…Ø§Øª in eu mi bibendum.
Odio ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ Ø£Ù† ÙŠØ±ÙØ¶ Ù…ØµØ§Ø¯Ø± Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© sed adipiscing Ø°Ø§ØŒ Ù…Ù† Ù…Ù†Ø§ Ù„Ù…  tristique.
Fermentum leo vel ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§  pulvinar.
Ut Ø± Ø¥Ù…Ø§ Ø£Ù† ÙŠØ±ÙØ¶ Ù…ØµØ§Ø¯Ø± Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ù…Ù† in metus  ØªÙƒÙˆÙ† Ù‚Ø¯Ø±ØªÙ†Ø§ Ø¹Ù„ÙŠ  felis imperdiet.
ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· et malesuada fames ac turpis.
Venenatis Ø¹Ù„Ù‰ Ù…ÙŠØ²Ø© Ø£Ùˆ ÙØ§Ø¦Ø¯Ø©ØŸ ÙˆÙ„ÙƒÙ†  eget nunc scelerisque Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ in.
Ø±ØªÙ†Ø§ ultricies tristique ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· enim tortor.
Risus Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· ÙˆØ¹Ù†Ø¯Ù…Ø§  quam Ø³Ø§Ù† Ø§Ù„Ø­ÙƒÙŠÙ… Ø¹Ù„ÙŠÙ‡ Ø£Ù†  suspendisse in.
Interdum velit  ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ  pellentesque massa placerat Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø± Ø¥Ù…Ø§ Ø£Ù† ÙŠØ±ÙØ¶  lacus.
Proin Ø¯Ù…Ø§ ØªÙƒÙˆÙ† Ù‚Ø¯Ø±ØªÙ†Ø§ Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø±  lectus a.
Auctor  Ø§Ù„ÙˆÙ‚Øª Ø¹Ù†Ø¯Ù…Ø§ ØªÙƒÙˆÙ† augue neque Ø¶ Ù…Ø«Ø§Ù„ Ø­ÙŠ  fermentum et.
Laoreet Ù…Ø³Ùƒ Ø²Ù…Ø§Ù… Ø§Ù„Ø£Ù…ÙˆØ± ÙˆÙŠØ®ØªØ§Ø±  amet cursus  Ù„Ù… ÙŠØªØ­Ù…Ù„ Ø¬Ù‡Ø¯  dictum.
In fermentum et sollicitudin ac orci phasellus  Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ±  rutrum.
Tempus imperdiet  Ø§Ù„Ù…ÙØªØ±Ø¶ Ø£Ù† Ù†ÙØ±Ù‚  pellentesque Øª Ø¨ÙƒÙ„ Ø³Ù‡ÙˆÙ„Ø© eget gravida.
Consequat id portaÙ…ØµØ§Ø¯Ø± Ø§Ù„Ø³Ø¹Ø§Ø¯Ø©  cras sed.
Vulputate Ø¹Ù„ÙŠ Ø§Ù„Ø§Ø®ØªÙŠØ§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© sit amet aliquam.
Congue mauris Ø­ÙŠØ§Ù† ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ vel elit.
Risus quis varius quam quisque id Ø§Ø± ØºÙŠØ± Ù…Ù‚ÙŠØ¯Ø© Ø¨Ø´Ø±Ø· elementum.
Pretium ØªÙŠ ÙŠÙØ±Ø¶Ù‡Ø§ Ø¹Ù„ÙŠÙ†Ø§ Ø§Ù„ÙˆØ§Ø¬Ø¨ leo in vitae.
 Ø´Ø§Ù‚ Ø¥Ù„Ø§ Ù…Ù† Ø£Ø¬Ù„ pretium quam Ø§Ù„Ø­ÙƒÙŠÙ… Ø¹Ù„ÙŠÙ‡ Ø£Ù† ÙŠÙ…Ø³Ùƒ  suspendisse in est.
Velit ÙˆÙ†Ø¸Ø±Ø§Ù‹ Ù„Ù„Ø§Ù„ØªØ²Ø§Ù…Ø§Øª Ø§Ù„ØªÙŠ ÙŠÙØ±Ø¶Ù‡Ø§ ultrices.
 Ø§Ù„ÙˆÙ‚Øª Ø¹Ù†Ø¯Ù…Ø§ ØªÙƒÙˆÙ†  velit dignissim ÙŠÙ‡ Ø£Ù† ÙŠÙ…Ø³Ùƒ .
Nunc scelerisque viverra mauris in aliquam sem Ø± Ø¥Ù…Ø§ Ø£Ù†  ut.
Ø§Ù„Ø³Ø¹Ø§Ø¯Ø© Ù…Ù† Ø£Ø¬Ù„ Ù…Ø§ Ù‡Ùˆ Ø£ÙƒØ«Ø± Ø£Ù‡Ù…ÙŠØ© Ø£Ùˆ ÙŠØªØ­Ù…Ù„ Ø§Ù„Ø£Ù„Ù…
Convallis posuere morbi leo urna molestie at.`
	emojiDocument = `ğŸ“šğŸ¶ğŸ°ğŸŒ·ğŸ‘¹ğŸŒŸ ğŸ”°ğŸ²ğŸ“‘ğŸ¢ğŸ” ğŸ‘¢ğŸ’®ğŸ‘·ğŸ‘§ğŸ’‘ğŸª ğŸ“™ğŸ“œğŸğŸ ğŸ  ğŸ‘§ğŸŒ¼ğŸ’›ğŸ‰ğŸ’œğŸ ğŸ”œğŸ’·ğŸ‰ğŸ‘˜ğŸ•ŸğŸ“—ğŸŸ ğŸ†ğŸšğŸ“¹ğŸ’„ ğŸ¾ğŸ©ğŸ’½ğŸ‘˜ ğŸ“’ğŸ’•ğŸ‘…ğŸ’½ğŸ© ğŸ“·ğŸŒŒğŸŒšğŸ£ğŸ“Œ. ğŸˆğŸ…ğŸ”–ğŸ„ ğŸğŸ”ˆğŸ¤ğŸ½ ğŸ¹ğŸ’˜ğŸšğŸ‘©ğŸ“¡ ğŸ¸ğŸ ğŸ”³ğŸ©ğŸŒ³ğŸ’£ ğŸ”¡ğŸ” ğŸ•¤ğŸ””ğŸ´ğŸ“• ğŸ“¼ğŸ‘ğŸ“ğŸ•—ğŸ’¸ ğŸ““ğŸŒ½ğŸŸğŸ’µğŸ•—ğŸŒ’ğŸ‰ğŸ“¨ ğŸ”€ğŸ‰ğŸ´ğŸ’˜ğŸ£ğŸ’¸ ğŸ”ªğŸ”»ğŸ•–ğŸ° ğŸ²ğŸ‘®ğŸ”™ğŸŒ‡ğŸ’ğŸ‡ ğŸğŸŒšğŸ«ğŸ”€ğŸ‘ ğŸ‘¾ğŸ§ğŸ‹ğŸ”ğŸ‘§ ğŸ’£ğŸ’ğŸ´ğŸ‘†ğŸ¢ğŸŠğŸ“€ ğŸ•¤ğŸŒƒğŸŒğŸ•›ğŸ”¬. ğŸƒğŸœğŸ”ğŸ½ğŸğŸ©ğŸ° ğŸ“®ğŸ„ğŸ–ğŸ’•ğŸ‘ˆ ğŸ” ğŸ•¡ğŸŠğŸ’ğŸ¬ğŸ“³ ğŸ¤ğŸŒ†ğŸŒ›ğŸğŸ”³ ğŸ„ğŸ”‡ğŸ”±ğŸŒ‡ğŸ“ºğŸ‘ ğŸ’ŒğŸ‘ğŸ“³ğŸ¤ğŸ‚ ğŸ‘ğŸ‰ğŸ¶ğŸ“ŠğŸ”¶ğŸŒ…ğŸ­ğŸ•™ ğŸœğŸ“ ğŸ´ğŸ’’ğŸ”¶ ğŸ“€ğŸ’‚ğŸŒ·ğŸ‘ºğŸ‘™.

ğŸ“¥ğŸ•ğŸğŸ»ğŸ’˜ğŸ‡ğŸ”¤ ğŸ’ ğŸ‡ğŸ“¦ğŸ‘©ğŸ ğŸ‘œğŸğŸ”ğŸ‘ ğŸ”ŸğŸŒ¹ğŸŒ—ğŸ¬ğŸ”™ ğŸğŸ“›ğŸğŸğŸ£ ğŸ”ƒğŸ—»ğŸ”ğŸŒºğŸ‘€ ğŸ“°ğŸ“®ğŸ©ğŸ‘¯ğŸ³ğŸ€ğŸ‡ ğŸ¨ğŸ“µğŸŒ‚ğŸ“Œ ğŸ‘ŒğŸ“ğŸ¨ğŸ‰ ğŸğŸ˜ğŸ”ŸğŸ£ğŸ”ğŸ“  ğŸ‘¤ğŸ“­ğŸ±ğŸ“£. ğŸ•“ğŸ‘¶ğŸ³ğŸ“­ğŸ”ŒğŸ“ƒğŸ”§ ğŸ“ŸğŸ”°ğŸŒ‚ğŸˆğŸ”£ ğŸ”¤ğŸ‘ğŸ¤ğŸ‘”ğŸª ğŸ”¨ğŸ¼ğŸŠğŸªğŸ•ğŸ¬ ğŸ“´ğŸ¶ğŸ”ˆğŸ”ğŸ”˜ ğŸ¬ğŸ¯ğŸ•œğŸğŸ‘´ğŸƒ ğŸ‘ğŸ¾ğŸ‘ğŸ‘‡ğŸ”­ ğŸ¥ğŸ”™ğŸ’¦ğŸ”©ğŸ”® ğŸ‘ŠğŸ¶ğŸ‘—ğŸ“• ğŸğŸ“¹ğŸ‘ ğŸ¤ ğŸ”¢ğŸ’˜ğŸ“·ğŸ·ğŸ‚ ğŸ«ğŸ’•ğŸ••ğŸ–ğŸ”†ğŸ½ ğŸ‘¼ğŸ¶ğŸŒ¸ğŸ‘»ğŸ”·ğŸŒ° ğŸ””ğŸ’‰ğŸ’±ğŸ”‚ğŸ‘µğŸ”‘. ğŸŒğŸªğŸŒğŸ˜ğŸ ğŸŒ›ğŸ‚ğŸ”ğŸ•ƒğŸ“§ğŸ‘» ğŸğŸŒ”ğŸ¦ğŸ» ğŸ”‰ğŸŒğŸŒ˜ğŸ’‰ğŸ‘’ ğŸ“™ğŸ’ ğŸ”™ğŸ“° ğŸŒ’ğŸ‘ğŸ’ªğŸŒ‡ğŸ’ˆ ğŸŒŒğŸ“¯ğŸ“‚ğŸŒ€ğŸ” ğŸ§ğŸ’·ğŸ€ğŸğŸˆ ğŸ“¢ğŸŒğŸ”·ğŸ’­ ğŸ‘‹ğŸ•“ğŸŒ“ğŸ•›ğŸ¢ğŸ‘¡ğŸ‘‹ ğŸ¶ğŸ‚ğŸ ğŸ”Ÿ ğŸ‘µğŸ‡ğŸ”¶ğŸ•œğŸ‘. ğŸ‘¹ğŸ’‰ğŸ”ŒğŸ³ğŸ•— ğŸ«ğŸŒˆğŸ” ğŸ€ğŸ©ğŸ½ ğŸ‘ºğŸ”£ğŸ”‚ğŸ‘ªğŸ‘´ğŸšğŸ•™ ğŸ‘€ğŸ•“ğŸ”±ğŸŒ‡ ğŸ»ğŸ˜ğŸ”ğŸ•• ğŸŒ‰ğŸ”¡ğŸŠğŸ® ğŸ’«ğŸ†ğŸ¹ğŸğŸ¯ ğŸ‘ğŸ±ğŸ ğŸ•‘ğŸ’.

ğŸ³ğŸğŸ”¹ğŸ¾ğŸ¹ğŸ“– ğŸ“˜ğŸ’ğŸ“·ğŸ•§ğŸ”› ğŸ¾ğŸ“ºğŸ¿ğŸ–ğŸ’‚ğŸ•¥ ğŸœğŸ·ğŸ£ğŸ‘³ ğŸ•›ğŸ“§ğŸ’¶ğŸŒ‘ ğŸŒ€ğŸ’£ğŸğŸ›ğŸªğŸ’ ğŸ‡ğŸŒ¹ğŸ‘ºğŸ†ğŸ’„ğŸ“š ğŸ”“ğŸ—ğŸ““ğŸ‚ğŸŒğŸŒ˜ğŸ“¢ ğŸ©ğŸ’ğŸ‚ğŸ’¥ğŸ”¹ğŸ“‡ğŸ’´ ğŸ‡ğŸ•ğŸ’¹ğŸ£ğŸ’”ğŸ« ğŸ‘ğŸ¼ğŸ°ğŸ„ğŸ¨ğŸ‘š ğŸ‘‘ğŸ”—ğŸ…ğŸˆ ğŸ°ğŸ™ğŸŒ»ğŸ‘¹ğŸ‘† ğŸ‘¬ğŸ§ğŸ¬ğŸ•¡ğŸ½ğŸ’‰ ğŸŒ…ğŸ”‰ğŸ¤ğŸ”ğŸ“¨ğŸ”§ğŸ”€ğŸ ğŸ¼ğŸ”›ğŸ“‰ğŸŒº. ğŸ‘–ğŸŒ”ğŸ¢ğŸ‚ğŸ’¯ ğŸğŸ°ğŸ‰ğŸ“¬ğŸ– ğŸ“¨ğŸ’œğŸ“®ğŸ”•ğŸ£ğŸ”© ğŸ”ğŸ•€ğŸ«ğŸ³ğŸ“µğŸ‘­ğŸ‘Ÿ ğŸ’¨ğŸ’ƒğŸ“¶ğŸƒ ğŸ“šğŸ”‡ğŸ›ğŸ‘½ğŸğŸ„ ğŸ”¼ğŸ‘»ğŸ®ğŸ”ğŸ¨ğŸªğŸº ğŸ“©ğŸ“œğŸ¨ğŸ“– ğŸ¢ğŸ‰ğŸ”¢ğŸŒšğŸŒ€ğŸ”ŠğŸ’ ğŸŸğŸ•šğŸ”´ğŸ¿ğŸ ğŸŒˆğŸ“¤ğŸ‘²ğŸŒ¿ğŸŒ…ğŸ²ğŸ“›ğŸ’ ğŸ¦ğŸ”°ğŸ—ğŸ†ğŸ» ğŸ‘‘ğŸ•ğŸ“”ğŸğŸ™ğŸ”ªğŸ”­. ğŸğŸµğŸ¼ğŸŒ’ğŸ°ğŸ³ğŸ½ ğŸ»ğŸ”‰ğŸ’ºğŸ•ğŸ· ğŸ›ğŸ¬ğŸ’¦ğŸ“¶ğŸ”– ğŸ”•ğŸŒ³ğŸ’ƒğŸŒºğŸ”¢ ğŸ’’ğŸ“’ğŸ”˜ğŸ¸ğŸ‘© ğŸŒºğŸˆğŸŒ€ğŸğŸ¢ğŸ”– ğŸ“ˆğŸ¸ğŸ–ğŸ‘ª ğŸ…ğŸğŸ”¹ğŸ¬ğŸ–ğŸ“ŠğŸ—¼ ğŸ¬ğŸ“…ğŸ’ğŸ“€ğŸ. ğŸŒ—ğŸ“ğŸ‘‡ğŸ  ğŸŒ¸ğŸ¸ğŸğŸ•ğŸ‹ ğŸ’ˆğŸŒŒğŸ¶ğŸ’¤ğŸŒ»ğŸ ğŸ¯ğŸŒ³ğŸ“ŒğŸ®ğŸ»ğŸ ğŸ•¦ğŸ“¯ğŸ”±ğŸ‘’ ğŸ’–ğŸŒ±ğŸ¨ğŸ°ğŸ­ğŸˆ ğŸ”³ğŸ©ğŸŒŸğŸ”­ğŸ“¢ğŸ“’ ğŸ”…ğŸ’¬ğŸ’“ğŸ’»ğŸ’ğŸ’‚ ğŸ”—ğŸ‚ğŸ‡ğŸŒ’ğŸŒ‚ğŸ’©ğŸ•¢ ğŸ”™ğŸŒ†ğŸ’ğŸ“œğŸ”˜ğŸ‘‡ ğŸğŸŒƒğŸ”¢ğŸŒµğŸ¬ ğŸ”„ğŸ’¢ğŸ¨ğŸ“‹ğŸ’‡ğŸŒ„ ğŸğŸ§ğŸ’‚ğŸ®ğŸ. ğŸ¬ğŸ½ğŸ”‡ğŸ£ğŸŒœğŸ”£ ğŸŒğŸ”’ğŸ‘¿ğŸ†ğŸŒğŸ‡ğŸ¸ ğŸ‘–ğŸ˜ğŸ¡ğŸ•£ ğŸ“ğŸ–ğŸ’†ğŸˆ ğŸ‘™ğŸ”³ğŸ‘™ğŸ”©ğŸ‘€ğŸ”‚ ğŸ¤ğŸ“ˆğŸ’ƒğŸ‘—ğŸ”ŒğŸ¾ğŸ”­ğŸ´ ğŸŒºğŸ‘›ğŸŒµğŸŒ•ğŸº ğŸ†ğŸ’¼ğŸ‘ŒğŸ‘˜ğŸˆğŸ‘› ğŸ³ğŸªğŸ•§ğŸ„ ğŸ’¯ğŸŸğŸ’‚ğŸ‘–ğŸ ğŸ•€ğŸ’ŸğŸŒ·ğŸ’•ğŸ‰ğŸ²ğŸ·. ğŸğŸ‘‚ğŸ““ğŸŒ½ ğŸ‰ğŸ••ğŸ¤ğŸŒ²ğŸ“ŸğŸ”‚ğŸ’· ğŸ‘ğŸ“›ğŸ• ğŸ”¹ğŸš ğŸ†ğŸ“¹ğŸšğŸµğŸ‡ğŸ¢ ğŸ ğŸ’±ğŸ•¦ğŸ’™ğŸ¢ğŸŒğŸ ğŸ„ğŸ¨ğŸ“„ğŸŒ¾ğŸ»ğŸˆ ğŸ‡ğŸªğŸ’¸ğŸ”†ğŸ’ğŸ“¢ğŸ‘¢ ğŸ’‡ğŸŒ‹ğŸ‘ğŸ•œğŸŒğŸ¶ğŸ“ ğŸªğŸ“„ğŸ¤ğŸƒğŸ’– ğŸ”²ğŸ•’ğŸ§ğŸŒğŸªğŸŒ¶ ğŸ“ğŸ‘²ğŸ”­ğŸ¯ğŸŒ”ğŸ‘Œ ğŸ”¼ğŸ—ğŸ—¼ğŸ‚ ğŸ”¶ğŸ¯ğŸ¶ğŸ…ğŸ‚ğŸ’—ğŸ´ğŸ¶ ğŸ“­ğŸ“°ğŸ“”ğŸ‘¬ğŸ¯ğŸ•ŸğŸ„ğŸŠ ğŸ’†ğŸ‘ğŸ“†ğŸ¶ğŸŒ–ğŸğŸ‘º ğŸƒğŸ’ºğŸ‘ŠğŸŒ¿ğŸŒ.

ğŸ§ğŸ•”ğŸ‘†ğŸ”­ğŸ•›ğŸ‘‡ ğŸ†ğŸ”–ğŸ‚ğŸ­ğŸ“—ğŸ—¼ğŸ ğŸŒğŸ¢ğŸŒğŸ’›ğŸš ğŸŒ¿ğŸ¶ğŸ’ğŸ’¬ğŸ”© ğŸ’¾ğŸ”ğŸ·ğŸ™ğŸ¬ğŸ• ğŸŒğŸ„ğŸ¾ğŸğŸŒ½ğŸ“ğŸ³ ğŸ’¥ğŸğŸ‘³ğŸ“«ğŸ¤ğŸ“¼ğŸ¾ ğŸ‘¨ğŸ•ƒğŸ•ğŸ¯ğŸ². ğŸ’¥ğŸğŸ”‰ğŸˆğŸ‘»ğŸ”µğŸ¬ğŸ”¸ ğŸ”¼ğŸ¹ğŸ”±ğŸ”®ğŸ•” ğŸŒˆğŸ’ğŸ‘œğŸ“  ğŸ‘¢ğŸ»ğŸ¢ğŸƒğŸ‘ºğŸŒğŸ‘° ğŸµğŸ‘ƒğŸ• ğŸğŸ‘ ğŸ“œğŸ’¥ğŸ“˜ğŸ“Œ ğŸ”¹ğŸ”µğŸ·ğŸ‘…ğŸ’ ğŸ’®ğŸ’˜ğŸœğŸ“ ğŸ‘¬ğŸ“– ğŸŒ…ğŸºğŸ”‡ğŸŒˆğŸ‘’ğŸ”€ ğŸ¢ğŸŒ†ğŸ’ŒğŸ¬ğŸ“±ğŸ° ğŸŒºğŸ†ğŸ”°ğŸğŸğŸ  ğŸ”‡ğŸ”ğŸŒ¹ğŸ”ğŸ€ğŸ¬ğŸ­ğŸŒ¹ ğŸ¬ğŸ“«ğŸ—¾ğŸ»ğŸ“Œ. ğŸ ğŸ£ğŸ‘‹ğŸ‘ŠğŸŸ ğŸ‘²ğŸ”£ğŸ’»ğŸ‘…ğŸ ğŸ‡ğŸŒ²ğŸ•‘ğŸ¨ğŸ“¯ ğŸœğŸ“µğŸ’™ğŸ“·ğŸ’ğŸ•” ğŸ‡ğŸ€ğŸ”´ğŸ‘ğŸŒ— ğŸ§ğŸ”¡ğŸ‘…ğŸ•ğŸ‰ğŸ‘›ğŸ¬ ğŸ•§ğŸğŸ©ğŸ““ğŸ†ğŸ“ª ğŸ¼ğŸ“»ğŸ‘¼ğŸŒ„ ğŸŒŸğŸŒºğŸ¦ğŸ§ğŸ•ğŸ¯ ğŸ••ğŸ•¦ğŸ¤ğŸ’†ğŸ§ğŸ’© ğŸ‘ğŸ“œğŸ‘ğŸ‘ğŸ§ğŸğŸ‘µ ğŸ‘ğŸŒ²ğŸ¼ğŸ” ğŸŒ›ğŸ”ğŸŒ„ğŸ¸ğŸ¯.`
)
