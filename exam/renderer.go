package exam

import (
	"github.com/npillmayer/quranexam/arshape"
)

// Renderer draws a sequence of items onto a surface.
type Renderer struct {
	surface Surface
	font    string
	layout  Layout
	shaper  *arshape.Shaper
}

// NewRenderer creates a renderer drawing text in the registered font. If
// shaper is nil, Arabic text is shaped with default options.
func NewRenderer(s Surface, font string, layout Layout, shaper *arshape.Shaper) *Renderer {
	if shaper == nil {
		shaper = arshape.New(arshape.DefaultOptions())
	}
	return &Renderer{
		surface: s,
		font:    font,
		layout:  layout,
		shaper:  shaper,
	}
}

// Result summarizes a rendering pass.
type Result struct {
	FinalY     float64   // cursor position after the last item
	Separators []float64 // vertical positions of the separators drawn
	Lines      int       // number of text lines drawn
}

// Render draws items top to bottom, starting one margin below the top edge.
func (r *Renderer) Render(items []Item) Result {
	width, height := r.surface.PageSize()
	cursor := NewCursor(height - r.layout.Margin)
	var result Result
	for i, item := range items {
		y := cursor.Y()
		if y < r.layout.Margin {
			tracer().Errorf("item %d drawn at %.1f, below the bottom margin", i, y)
		}
		switch item.Kind {
		case TextItem:
			r.text(item, width, y)
			result.Lines++
		case SeparatorItem:
			r.surface.Line(r.layout.Margin, y, width-r.layout.Margin, y)
			result.Separators = append(result.Separators, y)
		}
		if item.Spacing != 0 {
			cursor.Advance(item.Spacing)
		}
	}
	result.FinalY = cursor.Y()
	tracer().Infof("rendered %d lines and %d separators, cursor ends at %.1f",
		result.Lines, len(result.Separators), result.FinalY)
	return result
}

func (r *Renderer) text(item Item, width, y float64) {
	if err := r.surface.SetFont(r.font, item.Size); err != nil {
		tracer().Errorf("cannot select font %q: %v", r.font, err)
	}
	text := item.Text
	if arshape.HasArabic(text) {
		text = r.shaper.Display(text)
	}
	x := r.layout.anchor(item.Align, width)
	tracer().Debugf("%s text at (%.1f, %.1f), size %g", item.Align, x, y, item.Size)
	switch item.Align {
	case Centered:
		r.surface.DrawCentredString(x, y, text)
	default:
		r.surface.DrawRightString(x, y, text)
	}
}
