/*
Package preview implements a raster drawing surface. It accepts the same
drawing operations as a PDF canvas and writes the page as a PNG image, for a
quick visual inspection of a layout without a PDF viewer.

Coordinates are given in PDF points with the origin in the lower left corner
and are converted to pixels at the resolution the preview has been created
with. Only fonts with TrueType outlines can be rasterized.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/quranexam/internal/fontload"
	"github.com/npillmayer/quranexam/pdfcanvas"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// tracer traces with key 'quranexam.preview'
func tracer() tracing.Trace {
	return tracing.Select("quranexam.preview")
}

// ErrNoFont is flagged when drawing text before a font has been selected.
var ErrNoFont = errors.New("no font selected")

// Preview is a raster page.
type Preview struct {
	size      pdfcanvas.PageSize
	dpi       float64
	img       *image.RGBA
	ctx       *freetype.Context
	fonts     map[string]*truetype.Font
	font      *truetype.Font
	face      font.Face
	fontSize  float64
	lineWidth float64
	err       error
}

// New creates a white page of the given size, rasterized at dpi pixels per inch.
func New(size pdfcanvas.PageSize, dpi float64) *Preview {
	w := int(math.Ceil(size.Width * dpi / 72))
	h := int(math.Ceil(size.Height * dpi / 72))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingNone)
	return &Preview{
		size:      size,
		dpi:       dpi,
		img:       img,
		ctx:       ctx,
		fonts:     make(map[string]*truetype.Font),
		lineWidth: 1,
	}
}

// PageSize returns the width and height of the page in points.
func (p *Preview) PageSize() (float64, float64) {
	return p.size.Width, p.size.Height
}

// Image returns the raster image drawn so far.
func (p *Preview) Image() *image.RGBA {
	return p.img
}

// Err returns the first error which occurred while drawing.
func (p *Preview) Err() error {
	return p.err
}

func (p *Preview) flag(err error) {
	if p.err == nil {
		tracer().Errorf("%v", err)
		p.err = err
	}
}

// RegisterFont makes a font available under name.
func (p *Preview) RegisterFont(name string, f *fontload.ScalableFont) error {
	if f == nil {
		return fmt.Errorf("cannot register font %q: no font data", name)
	}
	tt, err := truetype.Parse(f.Binary)
	if err != nil {
		return fmt.Errorf("cannot rasterize font %q: %w", name, err)
	}
	p.fonts[name] = tt
	return nil
}

// SetFont selects a registered font and a size in points.
func (p *Preview) SetFont(name string, size float64) error {
	tt, ok := p.fonts[name]
	if !ok {
		err := fmt.Errorf("font not registered: %q", name)
		p.flag(err)
		return err
	}
	if p.face != nil {
		p.face.Close()
	}
	p.font, p.fontSize = tt, size
	p.face = truetype.NewFace(tt, &truetype.Options{Size: size, DPI: p.dpi})
	p.ctx.SetFont(tt)
	p.ctx.SetFontSize(size)
	return nil
}

// SetLineWidth sets the stroke width in points for subsequent lines.
func (p *Preview) SetLineWidth(w float64) {
	p.lineWidth = w
}

// DrawString draws text with its left edge at x and its baseline at y.
func (p *Preview) DrawString(x, y float64, text string) {
	if p.err != nil {
		return
	}
	if p.font == nil {
		p.flag(ErrNoFont)
		return
	}
	px, py := p.pixel(x, y)
	pt := fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)}
	if _, err := p.ctx.DrawString(text, pt); err != nil {
		p.flag(fmt.Errorf("rasterizing text: %w", err))
	}
}

// DrawCentredString draws text horizontally centred at x.
func (p *Preview) DrawCentredString(x, y float64, text string) {
	p.DrawString(x-p.width(text)/2, y, text)
}

// DrawRightString draws text with its right edge at x.
func (p *Preview) DrawRightString(x, y float64, text string) {
	p.DrawString(x-p.width(text), y, text)
}

// width measures text in points.
func (p *Preview) width(text string) float64 {
	if p.face == nil {
		return 0
	}
	adv := font.MeasureString(p.face, text)
	return float64(adv) / 64 * 72 / p.dpi
}

// Line strokes a straight line of the current line width.
func (p *Preview) Line(x1, y1, x2, y2 float64) {
	if p.err != nil {
		return
	}
	ax, ay := p.pixel(x1, y1)
	bx, by := p.pixel(x2, y2)
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := math.Max(p.lineWidth*p.dpi/72, 1) / 2
	nx, ny := -dy/length*half, dx/length*half // normal of the half stroke width
	b := p.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(float32(ax+nx), float32(ay+ny))
	r.LineTo(float32(bx+nx), float32(by+ny))
	r.LineTo(float32(bx-nx), float32(by-ny))
	r.LineTo(float32(ax-nx), float32(ay-ny))
	r.ClosePath()
	r.Draw(p.img, b, image.NewUniform(color.Black), image.Point{})
}

// Save writes the page to path as a PNG image.
func (p *Preview) Save(path string) error {
	if p.err != nil {
		return p.err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	if err := png.Encode(f, p.img); err != nil {
		f.Close()
		return fmt.Errorf("saving preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	tracer().Infof("wrote preview to %s", path)
	return nil
}

// pixel converts page coordinates to image coordinates.
func (p *Preview) pixel(x, y float64) (float64, float64) {
	scale := p.dpi / 72
	return x * scale, (p.size.Height - y) * scale
}
