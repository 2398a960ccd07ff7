package exam

import (
	"fmt"

	"github.com/npillmayer/quranexam/internal/fontload"
)

// Surface is a page to draw on. Coordinates are in points, with the origin in
// the lower left corner. Drawing operations do not return errors; a surface
// keeps the first error and reports it when the page is finalized.
type Surface interface {
	PageSize() (width, height float64)
	RegisterFont(name string, f *fontload.ScalableFont) error
	SetFont(name string, size float64) error
	DrawString(x, y float64, text string)
	DrawCentredString(x, y float64, text string)
	DrawRightString(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
}

// RegisterFont loads the font file at path and registers it with s under
// name. If the font cannot be loaded or registered, the built-in fallback font
// is registered instead. It returns the name to select the registered font by.
//
// The fallback font has no Arabic glyphs: text set with it is not legible as
// Arabic, but the document is still produced.
func RegisterFont(s Surface, path, name string) string {
	f, err := fontload.LoadOpenTypeFont(path)
	if err == nil {
		if err = s.RegisterFont(name, f); err == nil {
			return name
		}
	}
	tracer().Errorf("Arabic font not usable, falling back to %s: %v", fontload.FallbackName, err)
	if err := s.RegisterFont(fontload.FallbackName, fontload.Fallback()); err != nil {
		panic(fmt.Sprintf("cannot register built-in fallback font: %v", err))
	}
	return fontload.FallbackName
}
