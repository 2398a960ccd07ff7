/*
Package arshape prepares Arabic text for drawing routines which are only able
to place glyphs from left to right.

Preparation is a composition of two transforms:

▪︎ Reshaping replaces Arabic letters by their Unicode presentation forms
(isolated, final, initial or medial), depending on the joining behaviour of
the neighbouring letters, and builds the mandatory lam-alef ligatures.

▪︎ Visual reordering resolves bidi embedding levels for the paragraph and
reorders runs so that the resulting string, placed glyph by glyph from left to
right, reads correctly from right to left.

Strings without right-to-left characters pass through unchanged. Neither
transform reports errors; malformed input is handled by the transforms'
defaults.

Clients who need glyph-level shaping with GSUB/GPOS features of a concrete
font should use a full OpenType shaper instead; presentation forms are
sufficient for fonts which carry glyphs for the Arabic Presentation Forms
blocks, such as DejaVu Sans.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arshape

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quranexam.shape'
func tracer() tracing.Trace {
	return tracing.Select("quranexam.shape")
}

// HasArabic reports whether s contains at least one character of Arabic script.
// Combining marks of inherited script do not count.
func HasArabic(s string) bool {
	for _, r := range s {
		if language.LookupScript(r) == language.Arabic {
			return true
		}
	}
	return false
}

// Display reshapes s and reorders it for left-to-right glyph placement, using
// the default options.
func Display(s string) string {
	return defaultShaper.Display(s)
}

var defaultShaper = New(DefaultOptions())
