package arshape

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ShaperTestEnviron struct {
	suite.Suite
	shaper *Shaper
	marks  *Shaper
}

// listen for 'go test' command --> run test methods
func TestShaperFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quranexam.shape")
	defer teardown()
	suite.Run(t, new(ShaperTestEnviron))
}

// run once, before test suite methods
func (env *ShaperTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("quranexam.shape").SetTraceLevel(tracing.LevelInfo)
	env.shaper = New(DefaultOptions())
	env.marks = New(Options{Ligatures: true})
}

// --- Tests -----------------------------------------------------------------

func (env *ShaperTestEnviron) TestJoiningForms() {
	// beh initial, seen medial, meem final
	env.Equal("ﺑﺴﻢ", env.shaper.Reshape("بسم"))
	// right-joining waw breaks the word: seen initial, waw final, reh and
	// teh marbuta isolated
	env.Equal("ﺳﻮﺭﺓ", env.shaper.Reshape("سورة"))
	// hamza never joins
	env.Equal("ﺀ", env.shaper.Reshape("ء"))
}

func (env *ShaperTestEnviron) TestLamAlef() {
	env.Equal("ﻻ", env.shaper.Reshape("لا"))
	env.Equal("ﺳﻼﻡ", env.shaper.Reshape("سلام"))
	env.Equal("ﻷ", env.shaper.Reshape("لأ"))
	noLig := New(Options{DeleteHarakat: true})
	env.Equal("ﻟﺎ", noLig.Reshape("لا"))
}

func (env *ShaperTestEnviron) TestHarakat() {
	env.Equal(env.shaper.Reshape("بسم"), env.shaper.Reshape("بِسْمِ"))
	env.Equal("ﺑِﺴْﻢِ", env.marks.Reshape("بِسْمِ"))
	// marks between lam and alef travel behind the ligature
	env.Equal("ﻻَ", env.marks.Reshape("لَا"))
}

func (env *ShaperTestEnviron) TestDisplayOrder() {
	env.Equal("ﻢﺴﺑ", env.shaper.Display("بسم"))
	env.Equal("ﻢِﺴْﺑِ", env.marks.Display("بِسْمِ"))
	env.Equal("ﻡﻼﺳ ﻢﺴﺑ", env.shaper.Display("بسم سلام"))
}

func (env *ShaperTestEnviron) TestNumbersAndBrackets() {
	env.Equal("12 ﺓﺭﻮﺳ", env.shaper.Display("سورة 12"))
	env.Equal("(ﻢﺴﺑ)", env.shaper.Display("(بسم)"))
}

func (env *ShaperTestEnviron) TestLeftToRightParagraph() {
	env.Equal("abc ﻢﺴﺑ", env.shaper.Display("abc بسم"))
	env.Equal("abc 12 ﻢﺴﺑ def", env.shaper.Display("abc بسم 12 def"))
}

func (env *ShaperTestEnviron) TestPassThrough() {
	for _, s := range []string{"", "Hello, World 42", "(a+b)*c", "   "} {
		env.Equal(s, env.shaper.Display(s))
	}
}

func (env *ShaperTestEnviron) TestMultipleLines() {
	env.Equal("ﻢﺴﺑ\nﻻ", env.shaper.Display("بسم\nلا"))
}

func (env *ShaperTestEnviron) TestDeterminism() {
	inputs := []string{
		"الأزهر الشريف معهد طلخا النموذجي",
		"قَالَ أَفَرَأَيْتُم مَّا كُنتُمْ تَعْبُدُونَ ....",
		"أ- أكتب من قوله تعالى:",
		"سورة 12 (الجاثية)",
	}
	for _, in := range inputs {
		first := env.shaper.Display(in)
		for i := 0; i < 5; i++ {
			env.Equal(first, env.shaper.Display(in))
		}
		env.Equal(first, Display(in))
	}
}

// --- Plain tests -----------------------------------------------------------

func TestHasArabic(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Helvetica", false},
		{"َِ", false}, // harakat alone are of inherited script
		{"السؤال الأول:", true},
		{"ﻻ", true},
		{"Sura الصف", true},
	}
	for _, c := range cases {
		if got := HasArabic(c.in); got != c.want {
			t.Errorf("HasArabic(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNumberPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12 def", 2},
		{"1,000 x", 5},
		{"12, x", 2},
		{"abc", 0},
		{",12", 0},
	}
	for _, c := range cases {
		if got := numberPrefix(c.in); got != c.want {
			t.Errorf("numberPrefix(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReorderLevels(t *testing.T) {
	segs := []segment{
		{text: "ab", level: 0},
		{text: "CD", level: 1},
		{text: "12", level: 2},
		{text: "EF", level: 1},
		{text: "gh", level: 0},
	}
	if got, want := reorder(segs), "abFE12DCgh"; got != want {
		t.Errorf("reorder = %q, want %q", got, want)
	}
}
