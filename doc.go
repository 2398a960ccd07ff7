/*
Package quranexam generates the Quran exam sheet of the fifth primary grade as
a one-page A4 PDF document.

The content of the sheet is fixed. What can be configured is where things
come from and go to: the font file used for Arabic text, the output directory
and file name, and an optional PNG preview of the page.

If the Arabic font cannot be loaded, a built-in font is used instead. It has
no Arabic glyphs, so the document is still produced but its text is not
legible. Generating twice with the same configuration yields byte-identical
files.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package quranexam

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quranexam'
func tracer() tracing.Trace {
	return tracing.Select("quranexam")
}
