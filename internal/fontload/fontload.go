/*
Package fontload loads scalable fonts and answers the metric questions a
drawing surface asks: glyph indices and advance widths, used to anchor text
at its right edge or centre.

All metrics are returned in glyph space, i.e. in thousandths of an em.
*/
package fontload

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'quranexam.font'
func tracer() tracing.Trace {
	return tracing.Select("quranexam.font")
}

// FallbackName is the name the built-in fallback font is registered with.
const FallbackName = "GoRegular"

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
//
// A ScalableFont is not safe for concurrent use, as it re-uses a scratch
// buffer for SFNT queries.
type ScalableFont struct {
	Fontname string
	Filepath string // empty for fonts which did not come from a file
	Binary   []byte
	SFNT     *sfnt.Font
	buf      sfnt.Buffer
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	tracer().Infof("loaded font %q from %s", f.Fontname, fontfile)
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(&f.buf, sfnt.NameIDFull); err != nil {
		f.Fontname = ""
	}
	return f, nil
}

// Fallback returns the font compiled into the binary. It is always available
// but has no glyphs for Arabic script.
func Fallback() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("built-in fallback font is broken: %v", err))
	}
	return f
}

// IsTrueType reports whether the font carries TrueType outlines, as opposed to
// CFF outlines.
func (f *ScalableFont) IsTrueType() bool {
	return len(f.Binary) >= 4 && string(f.Binary[:4]) != "OTTO"
}

// PostScriptName returns a name usable as a PDF font name. It falls back to the
// full name with blanks removed.
func (f *ScalableFont) PostScriptName() string {
	name, err := f.SFNT.Name(&f.buf, sfnt.NameIDPostScript)
	if err != nil || name == "" {
		name = f.Fontname
	}
	name = strings.Map(func(r rune) rune {
		if r <= ' ' || r > '~' || strings.ContainsRune("()<>[]{}/%#", r) {
			return -1
		}
		return r
	}, name)
	if name == "" {
		return "Unnamed"
	}
	return name
}

// UnitsPerEm returns the design units per em of the font.
func (f *ScalableFont) UnitsPerEm() int {
	return int(f.SFNT.UnitsPerEm())
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) if the font has none.
func (f *ScalableFont) GlyphIndex(r rune) sfnt.GlyphIndex {
	gid, err := f.SFNT.GlyphIndex(&f.buf, r)
	if err != nil {
		tracer().Debugf("no glyph for %U: %v", r, err)
		return 0
	}
	return gid
}

// Advance returns the advance width of a glyph in thousandths of an em.
func (f *ScalableFont) Advance(gid sfnt.GlyphIndex) float64 {
	adv, err := f.SFNT.GlyphAdvance(&f.buf, gid, f.ppem(), font.HintingNone)
	if err != nil {
		tracer().Debugf("no advance for glyph %d: %v", gid, err)
		return 0
	}
	return f.toGlyphSpace(adv)
}

// StringWidth returns the sum of the advances of the glyphs for s in
// thousandths of an em. Kerning is not applied.
func (f *ScalableFont) StringWidth(s string) float64 {
	w := 0.0
	for _, r := range s {
		w += f.Advance(f.GlyphIndex(r))
	}
	return w
}

// ppem requests metrics at one pixel per design unit, which makes sfnt
// report values in design units.
func (f *ScalableFont) ppem() fixed.Int26_6 {
	return fixed.I(f.UnitsPerEm())
}

func (f *ScalableFont) toGlyphSpace(v fixed.Int26_6) float64 {
	return float64(v) / 64 * 1000 / float64(f.UnitsPerEm())
}
