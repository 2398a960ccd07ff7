package arshape

import (
	"golang.org/x/text/unicode/norm"
)

// Options control the reshaping step.
type Options struct {
	DeleteHarakat bool // drop vowel signs and Quranic annotation marks
	Ligatures     bool // build lam-alef ligatures
}

// DefaultOptions deletes harakat and builds lam-alef ligatures.
//
// Harakat are deleted by default because a left-to-right placement routine
// without mark positioning would draw them next to, not above or below, their
// base letters.
func DefaultOptions() Options {
	return Options{
		DeleteHarakat: true,
		Ligatures:     true,
	}
}

// Shaper prepares Arabic text for left-to-right glyph placement.
// A Shaper holds no mutable state and may be shared between goroutines.
type Shaper struct {
	opts Options
}

// New creates a shaper with the given options.
func New(opts Options) *Shaper {
	return &Shaper{opts: opts}
}

// Options returns the options sh has been created with.
func (sh *Shaper) Options() Options {
	return sh.opts
}

// Display reshapes s and reorders the result visually.
func (sh *Shaper) Display(s string) string {
	return sh.Visual(sh.Reshape(s))
}

// Reshape replaces Arabic letters of s by their contextual presentation forms.
// The result is still in logical order.
func (sh *Shaper) Reshape(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(norm.NFC.String(s))
	if sh.opts.DeleteHarakat {
		runes = deleteHarakat(runes)
	}
	actions := joiningActions(runes)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if sh.opts.Ligatures && r == lam {
			if lig, next, ok := ligate(runes, actions, i); ok {
				out = append(out, lig)
				out = append(out, runes[i+1:next]...) // marks between lam and alef
				i = next
				continue
			}
		}
		out = append(out, presentationForm(r, actions[i]))
	}
	tracer().Debugf("reshaped %d runes to %d", len(runes), len(out))
	return string(out)
}

// ligate checks if the lam at position i is followed by an alef variant,
// skipping transparent marks. It returns the ligature form and the position
// of the alef.
func ligate(runes []rune, actions []uint8, i int) (rune, int, bool) {
	j := i + 1
	for j < len(runes) && joiningType(runes[j]) == joiningTypeT {
		j++
	}
	if j == len(runes) {
		return 0, 0, false
	}
	forms, ok := lamAlef[runes[j]]
	if !ok {
		return 0, 0, false
	}
	switch actions[i] {
	case formInit:
		return forms[0], j, true
	case formMedi:
		return forms[1], j, true
	}
	return 0, 0, false
}

func presentationForm(r rune, action uint8) rune {
	forms, ok := arabicShaping[r]
	if !ok {
		return r
	}
	if action == formNone {
		action = formIsol
	}
	if f := forms[action]; f != 0 {
		return f
	}
	return r
}

func deleteHarakat(runes []rune) []rune {
	out := runes[:0]
	for _, r := range runes {
		if !isHaraka(r) {
			out = append(out, r)
		}
	}
	return out
}
