/*
Package pdfcanvas implements a single-page drawing surface which serializes
to PDF.

Coordinates are in PDF points with the origin in the lower left corner of the
page. Text is placed left to right, glyph by glyph, with no shaping applied:
callers hand in text which is already in visual order.

Drawing operations are recorded and replayed into a pdfkit document builder
whenever the page is serialized. TrueType fonts are embedded as composite
fonts with Identity-H encoding and a ToUnicode map, so text can be extracted
again. The writer runs in deterministic mode: drawing the same content twice
yields identical bytes, including the file identifier.

Errors of drawing operations are sticky: the first one is kept and reported by
WriteTo, Bytes and Save, and later operations are ignored.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package pdfcanvas

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/quranexam/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/wudi/pdfkit/builder"
	"github.com/wudi/pdfkit/ir/semantic"
	"github.com/wudi/pdfkit/writer"
	"golang.org/x/text/language"
)

// tracer traces with key 'quranexam.pdf'
func tracer() tracing.Trace {
	return tracing.Select("quranexam.pdf")
}

// ErrUnknownFont is flagged when selecting a font which has not been registered.
var ErrUnknownFont = errors.New("font not registered")

// ErrNoFont is flagged when drawing text before a font has been selected.
var ErrNoFont = errors.New("no font selected")

const mm = 72 / 25.4

// PageSize is the size of a page in points.
type PageSize struct {
	Width, Height float64
}

// A4 is ISO 216 A4, 210 × 297 mm.
var A4 = PageSize{Width: 210 * mm, Height: 297 * mm}

// Canvas is a drawing surface for one page.
type Canvas struct {
	size      PageSize
	fonts     map[string]*fontload.ScalableFont
	order     []string // registration order
	font      string
	fontSize  float64
	lineWidth float64
	ops       []drawOp
	title     string
	lang      language.Tag
	err       error
}

// New creates an empty page of the given size. The line width is 1 point.
func New(size PageSize) *Canvas {
	return &Canvas{
		size:      size,
		fonts:     make(map[string]*fontload.ScalableFont),
		lineWidth: 1,
		lang:      language.Und,
	}
}

// PageSize returns the width and height of the page.
func (c *Canvas) PageSize() (float64, float64) {
	return c.size.Width, c.size.Height
}

// Err returns the first error which occurred while drawing.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) flag(err error) {
	if c.err == nil {
		tracer().Errorf("%v", err)
		c.err = err
	}
}

// RegisterFont makes a font available under name. Registering a name twice
// replaces the font. Only fonts with TrueType outlines can be embedded.
func (c *Canvas) RegisterFont(name string, f *fontload.ScalableFont) error {
	if f == nil || f.SFNT == nil || len(f.Binary) == 0 {
		return fmt.Errorf("cannot register font %q: no font data", name)
	}
	if !f.IsTrueType() {
		return fmt.Errorf("cannot register font %q: CFF outlines cannot be embedded", name)
	}
	if _, ok := c.fonts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.fonts[name] = f
	tracer().Debugf("registered font %q (%s)", name, f.PostScriptName())
	return nil
}

// SetFont selects a registered font and a size in points for subsequent text.
func (c *Canvas) SetFont(name string, size float64) error {
	if _, ok := c.fonts[name]; !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownFont, name)
		c.flag(err)
		return err
	}
	c.font, c.fontSize = name, size
	return nil
}

// StringWidth returns the width of text set in a registered font, in points.
// It returns 0 for unknown fonts.
func (c *Canvas) StringWidth(text, name string, size float64) float64 {
	f, ok := c.fonts[name]
	if !ok {
		return 0
	}
	return f.StringWidth(text) * size / 1000
}

// SetLineWidth sets the stroke width for subsequent lines.
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// DrawString draws text with its left edge at x and its baseline at y.
func (c *Canvas) DrawString(x, y float64, text string) {
	if c.err != nil {
		return
	}
	if c.font == "" {
		c.flag(ErrNoFont)
		return
	}
	if text == "" {
		return
	}
	c.ops = append(c.ops, textOp{x: x, y: y, text: text, font: c.font, size: c.fontSize})
}

// DrawCentredString draws text horizontally centred at x.
func (c *Canvas) DrawCentredString(x, y float64, text string) {
	c.DrawString(x-c.StringWidth(text, c.font, c.fontSize)/2, y, text)
}

// DrawRightString draws text with its right edge at x.
func (c *Canvas) DrawRightString(x, y float64, text string) {
	c.DrawString(x-c.StringWidth(text, c.font, c.fontSize), y, text)
}

// Line strokes a straight line.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	if c.err != nil {
		return
	}
	c.ops = append(c.ops, lineOp{x1: x1, y1: y1, x2: x2, y2: y2, width: c.lineWidth})
}

// SetTitle sets the document title.
func (c *Canvas) SetTitle(title string) {
	c.title = title
}

// SetLanguage sets the natural language of the document.
func (c *Canvas) SetLanguage(tag language.Tag) {
	c.lang = tag
}

// document replays the recorded page into a fresh builder.
func (c *Canvas) document() (*semantic.Document, error) {
	b := builder.NewBuilder()
	for _, name := range c.order {
		b.RegisterTrueTypeFont(name, c.fonts[name].Binary)
	}
	if c.title != "" {
		b.SetInfo(&semantic.DocumentInfo{Title: c.title})
	}
	if c.lang != language.Und {
		b.SetLanguage(c.lang.String())
	}
	page := b.NewPage(c.size.Width, c.size.Height)
	for _, op := range c.ops {
		op.draw(page)
	}
	page.Finish()
	doc, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building PDF document: %w", err)
	}
	return doc, nil
}

// WriteTo serializes the page as a complete PDF file.
func (c *Canvas) WriteTo(out io.Writer) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	doc, err := c.document()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	cfg := writer.Config{Deterministic: true}
	if err := writer.NewWriter().Write(context.Background(), doc, &buf, cfg); err != nil {
		return 0, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.WriteTo(out)
}

// Bytes returns the serialized PDF file.
func (c *Canvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the PDF file to path.
func (c *Canvas) Save(path string) error {
	data, err := c.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving PDF: %w", err)
	}
	tracer().Infof("wrote %d bytes to %s", len(data), path)
	return nil
}

// --- Recorded operations ---------------------------------------------------

type drawOp interface {
	draw(page builder.PageBuilder)
}

type textOp struct {
	x, y       float64
	text, font string
	size       float64
}

func (op textOp) draw(page builder.PageBuilder) {
	page.DrawText(op.text, op.x, op.y, builder.TextOptions{
		Font:     op.font,
		FontSize: op.size,
	})
}

type lineOp struct {
	x1, y1, x2, y2 float64
	width          float64
}

func (op lineOp) draw(page builder.PageBuilder) {
	page.DrawLine(op.x1, op.y1, op.x2, op.y2, builder.LineOptions{
		LineWidth: op.width,
	})
}
