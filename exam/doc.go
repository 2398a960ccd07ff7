/*
Package exam lays out the exam sheet.

A page is described as a fixed sequence of items, each either a line of text
or a horizontal separator. The renderer walks the sequence once, top to bottom,
with a single layout cursor: every item is drawn at the cursor's current
vertical position, then the cursor moves down by the item's spacing. There is
no flow, wrapping or pagination; all positions derive from literal spacings.

Arabic text is shaped and reordered to visual order before it is handed to the
drawing surface, which places glyphs left to right.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package exam

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quranexam'
func tracer() tracing.Trace {
	return tracing.Select("quranexam")
}

// CM is one centimetre in points.
const CM = 72 / 2.54

func assertPositive(name string, v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("assertion [%s] failed: %g is not positive", name, v))
	}
}
