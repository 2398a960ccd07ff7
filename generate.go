package quranexam

import (
	"fmt"
	"path/filepath"

	"github.com/npillmayer/quranexam/arshape"
	"github.com/npillmayer/quranexam/exam"
	"github.com/npillmayer/quranexam/pdfcanvas"
	"github.com/npillmayer/quranexam/preview"
)

// Generate renders the exam sheet and writes it as a PDF file. It returns the
// path of the file written. A missing or unusable font is not an error, as a
// built-in font is substituted; failing to write output is.
func Generate(cfg Config) (string, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, cfg.Filename)
	shaper := arshape.New(cfg.Shaping)

	canvas := pdfcanvas.New(pdfcanvas.A4)
	canvas.SetTitle(exam.Title)
	canvas.SetLanguage(cfg.Language)
	render(canvas, cfg, shaper)
	if err := canvas.Save(path); err != nil {
		return "", fmt.Errorf("generating exam: %w", err)
	}
	tracer().Infof("exam written to %s", path)

	if cfg.PreviewPath != "" {
		dpi := cfg.PreviewDPI
		if dpi <= 0 {
			dpi = DefaultConfig().PreviewDPI
		}
		page := preview.New(pdfcanvas.A4, dpi)
		render(page, cfg, shaper)
		if err := page.Save(cfg.PreviewPath); err != nil {
			return path, fmt.Errorf("generating preview: %w", err)
		}
	}
	return path, nil
}

func render(s exam.Surface, cfg Config, shaper *arshape.Shaper) {
	font := exam.RegisterFont(s, cfg.FontPath, cfg.FontName)
	result := exam.NewRenderer(s, font, exam.DefaultLayout(), shaper).Render(exam.QuranExam())
	if result.FinalY <= 0 {
		tracer().Errorf("content runs off the page, cursor ends at %.1f", result.FinalY)
	}
}
