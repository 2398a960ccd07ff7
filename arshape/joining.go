package arshape

import "unicode"

const (
	joiningTypeU = iota
	joiningTypeL
	joiningTypeR
	joiningTypeD
	numStateMachineCols
	joiningTypeT
	joiningTypeC = joiningTypeD
)

const (
	zwnj    = 0x200C
	zwj     = 0x200D
	tatweel = 0x0640
)

// joiningStateTable drives the joining of a sequence of letters. Each entry
// tells which form the previous (non-transparent) letter has to take, which
// form the current letter takes for now, and the state to continue with.
var joiningStateTable = [...][numStateMachineCols]struct {
	prevAction uint8
	currAction uint8
	nextState  uint8
}{
	/*   jt_U,                  jt_L,                  jt_R,                  jt_D */

	/* State 0: prev was U, not willing to join. */
	{{formNone, formNone, 0}, {formNone, formIsol, 2}, {formNone, formIsol, 1}, {formNone, formIsol, 2}},

	/* State 1: prev was R or ISOL, not willing to join. */
	{{formNone, formNone, 0}, {formNone, formIsol, 2}, {formNone, formIsol, 1}, {formNone, formIsol, 2}},

	/* State 2: prev was D/L in ISOL form, willing to join. */
	{{formNone, formNone, 0}, {formNone, formIsol, 2}, {formInit, formFina, 1}, {formInit, formFina, 3}},

	/* State 3: prev was D in FINA form, willing to join. */
	{{formNone, formNone, 0}, {formNone, formIsol, 2}, {formMedi, formFina, 1}, {formMedi, formFina, 3}},
}

func joiningType(r rune) uint8 {
	switch r {
	case zwj, tatweel:
		return joiningTypeC
	case zwnj:
		return joiningTypeU
	}
	if forms, ok := arabicShaping[r]; ok {
		switch {
		case forms[formInit] != 0 && forms[formMedi] != 0:
			return joiningTypeD
		case forms[formFina] != 0:
			return joiningTypeR
		}
		return joiningTypeU
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return joiningTypeT
	}
	return joiningTypeU
}

// joiningActions computes the presentation form slot for every rune of a
// logical-order sequence. Transparent runes get formNone and do not interrupt
// joining of their neighbours.
func joiningActions(runes []rune) []uint8 {
	actions := make([]uint8, len(runes))
	prev, state := -1, uint8(0)
	for i, r := range runes {
		thisType := joiningType(r)
		if thisType == joiningTypeT {
			actions[i] = formNone
			continue
		}
		entry := &joiningStateTable[state][thisType]
		if entry.prevAction != formNone && prev != -1 {
			actions[prev] = entry.prevAction
		}
		actions[i] = entry.currAction
		prev = i
		state = entry.nextState
	}
	return actions
}
