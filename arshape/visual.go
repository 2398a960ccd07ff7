package arshape

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// segment is a piece of a paragraph at a single resolved embedding level.
type segment struct {
	text  string
	level int
}

// Visual reorders a logical-order string for drawing from left to right.
//
// Every line of s is handled as a paragraph of its own. Paragraph direction
// follows the first strong character; a line without right-to-left characters
// is returned unchanged.
func (sh *Shaper) Visual(s string) string {
	if !strings.ContainsRune(s, '\n') {
		return visualLine(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = visualLine(line)
	}
	return strings.Join(lines, "\n")
}

func visualLine(s string) string {
	if s == "" || !hasRightToLeft(s) {
		return s
	}
	rtl := paragraphIsRightToLeft(s)
	var opts []bidi.Option
	if rtl {
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s, opts...); err != nil {
		tracer().Errorf("bidi: %v", err)
		return s
	}
	ordering, err := p.Order()
	if err != nil {
		tracer().Errorf("bidi: %v", err)
		return s
	}
	segments := levelSegments(&ordering, rtl)
	return reorder(segments)
}

// levelSegments recovers embedding levels from the directional runs of an
// ordering. Without explicit embeddings, a right-to-left paragraph has levels
// 1 and 2 only. A left-to-right paragraph has levels 0 and 1, plus level 2 for
// numbers following right-to-left text; those are split off the front of the
// left-to-right run they have been merged into.
func levelSegments(ordering *bidi.Ordering, rtl bool) []segment {
	segments := make([]segment, 0, ordering.NumRuns()+1)
	prevRTL := false
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			segments = append(segments, segment{text: text, level: 1})
			prevRTL = true
			continue
		}
		if rtl {
			segments = append(segments, segment{text: text, level: 2})
		} else {
			if prevRTL {
				if n := numberPrefix(text); n > 0 {
					segments = append(segments, segment{text: text[:n], level: 2})
					text = text[n:]
				}
			}
			if text != "" {
				segments = append(segments, segment{text: text, level: 0})
			}
		}
		prevRTL = false
	}
	return segments
}

// reorder applies rule L2 of the bidi algorithm to a sequence of segments:
// from the highest level down to the lowest odd level, reverse every maximal
// sequence of segments at that level or higher. Characters of segments at odd
// levels end up reversed.
func reorder(segments []segment) string {
	maxLevel := 0
	order := make([]int, len(segments))
	for i, seg := range segments {
		order[i] = i
		if seg.level > maxLevel {
			maxLevel = seg.level
		}
	}
	for lvl := maxLevel; lvl >= 1; lvl-- {
		for i := 0; i < len(order); {
			if segments[order[i]].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && segments[order[j]].level >= lvl {
				j++
			}
			reverseInts(order[i:j])
			i = j
		}
	}
	var sb strings.Builder
	for _, k := range order {
		seg := segments[k]
		if seg.level%2 == 1 {
			sb.WriteString(reverseKeepingMarks(seg.text))
		} else {
			sb.WriteString(seg.text)
		}
	}
	return sb.String()
}

// reverseKeepingMarks reverses s, mirroring brackets, and moves combining
// marks back behind the base character they belong to.
func reverseKeepingMarks(s string) string {
	reversed := []rune(bidi.ReverseString(s))
	out := make([]rune, 0, len(reversed))
	var marks []rune
	for _, r := range reversed {
		if isMark(r) {
			marks = append(marks, r)
			continue
		}
		out = append(out, r)
		for k := len(marks) - 1; k >= 0; k-- {
			out = append(out, marks[k])
		}
		marks = marks[:0]
	}
	return string(append(out, marks...))
}

// paragraphIsRightToLeft finds the first strong character of s (rules P2 and
// P3). A string without strong characters is left-to-right.
func paragraphIsRightToLeft(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

func hasRightToLeft(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

// numberPrefix returns the byte length of the leading number of s. Separators
// and terminators belong to the number only if more digits follow.
func numberPrefix(s string) int {
	n := 0
	for i, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.EN, bidi.AN:
			n = i + utf8.RuneLen(r)
		case bidi.ES, bidi.CS, bidi.ET, bidi.NSM:
			if n == 0 && props.Class() != bidi.ET {
				return 0
			}
		default:
			return n
		}
	}
	return n
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
