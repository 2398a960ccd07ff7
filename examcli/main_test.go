package main

import (
	"testing"

	"github.com/npillmayer/quranexam"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNoArgumentsYieldDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam")
	defer teardown()

	conf := settings(flagDefaults())
	assert.Equal(t, "", conf[quranexam.KeyPreview], "no-preview marker must not reach the configuration")
	assert.Equal(t, quranexam.DefaultConfig(), quranexam.ConfigFrom(conf))
	assert.Equal(t, quranexam.DefaultConfig(), quranexam.ConfigFrom(settings(nil)))
}

func TestFlagsOverrideDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam")
	defer teardown()

	values := flagDefaults()
	values["dir"] = "/tmp/out"
	values["preview"] = "exam.png"
	cfg := quranexam.ConfigFrom(settings(values))
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "exam.png", cfg.PreviewPath)
	assert.Equal(t, quranexam.DefaultConfig().FontPath, cfg.FontPath)
}
