package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/quranexam"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'quranexam'
func tracer() tracing.Trace {
	return tracing.Select("quranexam")
}

var traceKeys = []string{
	"quranexam",
	"quranexam.shape",
	"quranexam.pdf",
	"quranexam.font",
	"quranexam.preview",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	commando.
		SetExecutableName("examcli").
		SetVersion("v1.0.0").
		SetDescription("Generate the Quran exam sheet of the fifth primary grade as an A4 PDF.")

	defaults := flagDefaults()
	commando.
		Register(nil).
		AddFlag("font,f", "Arabic font file (TrueType or OpenType)", commando.String, defaults["font"]).
		AddFlag("output,o", "name of the PDF file", commando.String, defaults["output"]).
		AddFlag("dir,d", "output directory", commando.String, defaults["dir"]).
		AddFlag("preview,p", "also write a PNG preview to this file", commando.String, defaults["preview"]).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(generate)

	commando.Parse(nil)
}

func generate(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	level, _ := flags["trace"].GetString()
	if err := setTraceLevel(level); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	values := make(map[string]string, len(flagKeys))
	for flag := range flagKeys {
		if v, err := flags[flag].GetString(); err == nil {
			values[flag] = v
		}
	}
	path, err := quranexam.Generate(quranexam.ConfigFrom(settings(values)))
	if err != nil {
		tracer().Errorf("%v", err)
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	pterm.Info.Println("تم إنشاء ملف PDF بنجاح: " + path)
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"font":    quranexam.KeyFont,
	"output":  quranexam.KeyOutput,
	"dir":     quranexam.KeyDir,
	"preview": quranexam.KeyPreview,
}

// noPreview is the default of the preview flag, meaning no PNG is written.
const noPreview = "-"

// flagDefaults returns the values flags take when not given.
func flagDefaults() map[string]string {
	cfg := quranexam.DefaultConfig()
	return map[string]string{
		"font":    cfg.FontPath,
		"output":  cfg.Filename,
		"dir":     cfg.OutputDir,
		"preview": noPreview,
	}
}

// settings turns flag values into configuration settings. Missing flags and
// the no-preview marker are left empty, keeping the defaults.
func settings(values map[string]string) testconfig.Conf {
	conf := testconfig.Conf{}
	for flag, key := range flagKeys {
		v := values[flag]
		if v == noPreview {
			v = ""
		}
		conf[key] = v
	}
	return conf
}

func setTraceLevel(level string) error {
	l := tracing.LevelError
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " ✓  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
