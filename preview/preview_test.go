package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/quranexam/internal/fontload"
	"github.com/npillmayer/quranexam/pdfcanvas"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreview(t *testing.T) *Preview {
	p := New(pdfcanvas.A4, 72)
	require.NoError(t, p.RegisterFont("Go", fontload.Fallback()))
	return p
}

func TestPageGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.preview")
	defer teardown()

	p := New(pdfcanvas.A4, 72)
	b := p.Image().Bounds()
	assert.Equal(t, 596, b.Dx())
	assert.Equal(t, 842, b.Dy())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, p.Image().RGBAAt(10, 10))

	hires := New(pdfcanvas.A4, 144)
	assert.Equal(t, 1684, hires.Image().Bounds().Dy())
}

func TestLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.preview")
	defer teardown()

	p := New(pdfcanvas.A4, 72)
	p.SetLineWidth(2)
	p.Line(100, 400, 500, 400) // row 441.9 from the top
	assert.True(t, dark(p.Image().RGBAAt(300, 441)))
	assert.False(t, dark(p.Image().RGBAAt(300, 400)))
	assert.False(t, dark(p.Image().RGBAAt(50, 441)), "line must not extend beyond its ends")
}

func TestText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.preview")
	defer teardown()

	p := newPreview(t)
	require.NoError(t, p.SetFont("Go", 24))
	p.DrawRightString(300, 400, "HHH")
	require.NoError(t, p.Err())
	assert.True(t, anyDark(p.Image(), image.Rect(200, 420, 300, 442)))
	assert.False(t, anyDark(p.Image(), image.Rect(301, 420, 400, 442)), "right aligned text ends at its anchor")

	p.DrawCentredString(300, 200, "HHH")
	w := p.width("HHH")
	assert.Greater(t, w, 0.0)
	assert.True(t, anyDark(p.Image(), image.Rect(300-int(w/2), 620, 300, 642)))
}

func TestStickyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.preview")
	defer teardown()

	p := newPreview(t)
	p.DrawString(10, 10, "x")
	assert.True(t, errors.Is(p.Err(), ErrNoFont))
	assert.Error(t, p.Save(filepath.Join(t.TempDir(), "x.png")))

	p = newPreview(t)
	assert.Error(t, p.SetFont("Helvetica", 12))
	assert.Error(t, p.RegisterFont("none", nil))
}

func TestSave(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.preview")
	defer teardown()

	p := newPreview(t)
	require.NoError(t, p.SetFont("Go", 12))
	p.DrawString(56, 780, "Preview")
	path := filepath.Join(t.TempDir(), "page.png")
	require.NoError(t, p.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 596, cfg.Width)
	assert.Equal(t, 842, cfg.Height)
}

func dark(c color.RGBA) bool {
	return c.R < 128 && c.G < 128 && c.B < 128
}

func anyDark(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if dark(img.RGBAAt(x, y)) {
				return true
			}
		}
	}
	return false
}
