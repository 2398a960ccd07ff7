package quranexam

import (
	"github.com/npillmayer/quranexam/arshape"
	"golang.org/x/text/language"
)

// Config collects the settings of a generator run.
type Config struct {
	FontPath    string          // TrueType or OpenType font with Arabic glyphs
	FontName    string          // name to register the font under
	OutputDir   string          // directory to write the PDF to
	Filename    string          // name of the PDF file
	PreviewPath string          // if set, a PNG preview is written here
	PreviewDPI  float64         // resolution of the preview
	Shaping     arshape.Options // options for shaping Arabic text
	Language    language.Tag    // natural language recorded in the document
}

// DefaultConfig writes the exam to the current directory, using DejaVu Sans
// from its usual system location.
func DefaultConfig() Config {
	return Config{
		FontPath:   "/usr/share/fonts/dejavu/DejaVuSans.ttf",
		FontName:   "Arabic",
		OutputDir:  ".",
		Filename:   "امتحان_قرآن_الصف_الخامس_الابتدائي.pdf",
		PreviewDPI: 96,
		Shaping:    arshape.DefaultOptions(),
		Language:   language.Arabic,
	}
}

// Settings is a source of configuration values, such as a schuko
// configuration. Empty values are treated as unset.
type Settings interface {
	GetString(key string) string
}

// Configuration keys read by ConfigFrom.
const (
	KeyFont    = "exam.font"
	KeyOutput  = "exam.output"
	KeyDir     = "exam.dir"
	KeyPreview = "exam.preview"
)

// ConfigFrom overlays the default configuration with values from conf.
func ConfigFrom(conf Settings) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	overlay := func(key string, target *string) {
		if v := conf.GetString(key); v != "" {
			tracer().Debugf("config %s = %q", key, v)
			*target = v
		}
	}
	overlay(KeyFont, &cfg.FontPath)
	overlay(KeyOutput, &cfg.Filename)
	overlay(KeyDir, &cfg.OutputDir)
	overlay(KeyPreview, &cfg.PreviewPath)
	return cfg
}
