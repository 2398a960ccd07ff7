package pdfcanvas

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/npillmayer/quranexam/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

// --- Test Suite Preparation ------------------------------------------------

type CanvasTestEnviron struct {
	suite.Suite
	font *fontload.ScalableFont
}

// listen for 'go test' command --> run test methods
func TestCanvasFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.pdf")
	defer teardown()
	suite.Run(t, new(CanvasTestEnviron))
}

// run once, before test suite methods
func (env *CanvasTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("quranexam.pdf").SetTraceLevel(tracing.LevelInfo)
	env.font = fontload.Fallback()
}

func (env *CanvasTestEnviron) canvas() *Canvas {
	c := New(A4)
	env.Require().NoError(c.RegisterFont("Go", env.font))
	return c
}

func (env *CanvasTestEnviron) draw(c *Canvas) {
	env.Require().NoError(c.SetFont("Go", 12))
	c.DrawCentredString(300, 800, "Exam")
	c.DrawRightString(500, 700, "right")
	c.DrawString(100, 600, "left")
	c.Line(56.7, 500, 538.6, 500)
	c.SetTitle("Quran exam")
	c.SetLanguage(language.Arabic)
}

// --- Tests -----------------------------------------------------------------

func (env *CanvasTestEnviron) TestPageSize() {
	w, h := New(A4).PageSize()
	env.InDelta(595.2756, w, 1e-4)
	env.InDelta(841.8898, h, 1e-4)
}

func (env *CanvasTestEnviron) TestFileStructure() {
	c := env.canvas()
	env.draw(c)
	data, err := c.Bytes()
	env.Require().NoError(err)
	env.True(bytes.HasPrefix(data, []byte("%PDF-")))
	env.True(bytes.Contains(data, []byte("%%EOF")))

	s := string(data)
	env.Regexp(`/Type\s*/Catalog`, s)
	env.Regexp(`/Subtype\s*/Type0`, s)
	env.Regexp(`/Encoding\s*/Identity-H`, s)
	env.Contains(s, "/Title")
	env.Contains(s, "/Lang")
}

func (env *CanvasTestEnviron) TestDeterministicOutput() {
	first, second := env.canvas(), env.canvas()
	env.draw(first)
	env.draw(second)
	a, err := first.Bytes()
	env.Require().NoError(err)
	b, err := second.Bytes()
	env.Require().NoError(err)
	env.True(bytes.Equal(a, b))
	again, err := first.Bytes()
	env.Require().NoError(err)
	env.True(bytes.Equal(a, again), "serializing twice must not change output")

	// the file identifier is derived from content, both halves match
	m := regexp.MustCompile(`/ID\s*\[\s*[(<]\s*([0-9A-Fa-f]+)\s*[)>]\s*[(<]\s*([0-9A-Fa-f]+)\s*[)>]\s*\]`).
		FindStringSubmatch(string(a))
	env.Require().Len(m, 3)
	env.Equal(m[1], m[2])
}

func (env *CanvasTestEnviron) TestAnchoredText() {
	c := env.canvas()
	env.Require().NoError(c.SetFont("Go", 10))
	width := c.StringWidth("right", "Go", 10)
	env.Greater(width, 0.0)
	env.InDelta(env.font.StringWidth("right")/100, width, 1e-9)
	c.DrawRightString(500, 700, "right")
	c.DrawCentredString(300, 650, "right")
	c.DrawString(20, 600, "")
	c.SetLineWidth(2)
	c.Line(10, 20, 30, 20)

	env.Require().Len(c.ops, 3, "empty text is not recorded")
	right, ok := c.ops[0].(textOp)
	env.Require().True(ok)
	env.InDelta(500-width, right.x, 1e-9)
	env.Equal(700.0, right.y)
	env.Equal("Go", right.font)
	env.Equal(10.0, right.size)
	centred := c.ops[1].(textOp)
	env.InDelta(300-width/2, centred.x, 1e-9)
	env.Equal(lineOp{x1: 10, y1: 20, x2: 30, y2: 20, width: 2}, c.ops[2])
}

func (env *CanvasTestEnviron) TestContentChangesOutput() {
	plain, lined := env.canvas(), env.canvas()
	env.draw(plain)
	env.draw(lined)
	lined.Line(10, 10, 30, 10)
	a, err := plain.Bytes()
	env.Require().NoError(err)
	b, err := lined.Bytes()
	env.Require().NoError(err)
	env.False(bytes.Equal(a, b))
}

func (env *CanvasTestEnviron) TestStickyErrors() {
	c := env.canvas()
	c.DrawString(10, 10, "no font")
	env.True(errors.Is(c.Err(), ErrNoFont))

	c = env.canvas()
	err := c.SetFont("Helvetica", 12)
	env.True(errors.Is(err, ErrUnknownFont))
	c.Line(0, 0, 10, 10)
	env.Empty(c.ops, "operations after an error are ignored")
	_, err = c.Bytes()
	env.True(errors.Is(err, ErrUnknownFont))
	env.Error(c.Save(filepath.Join(env.T().TempDir(), "x.pdf")))
}

func (env *CanvasTestEnviron) TestRegisterFont() {
	c := New(A4)
	env.Error(c.RegisterFont("empty", nil))
	env.Error(c.RegisterFont("empty", &fontload.ScalableFont{}))
	cff := *env.font
	cff.Binary = append([]byte("OTTO"), env.font.Binary[4:]...)
	env.Error(c.RegisterFont("cff", &cff))
	env.NoError(c.RegisterFont("Go", env.font))
	env.NoError(c.RegisterFont("Go", env.font))
	env.Equal([]string{"Go"}, c.order)
	env.Zero(c.StringWidth("x", "unknown", 12))
}

func (env *CanvasTestEnviron) TestSave() {
	c := env.canvas()
	env.draw(c)
	path := filepath.Join(env.T().TempDir(), "page.pdf")
	env.Require().NoError(c.Save(path))
	data, err := os.ReadFile(path)
	env.Require().NoError(err)
	want, err := c.Bytes()
	env.Require().NoError(err)
	env.True(bytes.Equal(want, data))

	err = c.Save(filepath.Join(env.T().TempDir(), "missing", "page.pdf"))
	env.Require().Error(err)
	env.Contains(err.Error(), "saving PDF")
}
