package exam

// Cursor is the vertical drawing position on a page. It only ever moves down.
type Cursor struct {
	y float64
}

// NewCursor places a cursor at y.
func NewCursor(y float64) *Cursor {
	return &Cursor{y: y}
}

// Y returns the current position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Advance moves the cursor down by d points. d must be positive.
func (c *Cursor) Advance(d float64) {
	assertPositive("cursor advance", d)
	c.y -= d
}

// Alignment is the horizontal placement of a line of text.
type Alignment int8

const (
	Centered      Alignment = iota // centred on the page
	Right                          // right edge at the right margin
	RightIndented                  // right edge an indent inside the right margin
)

func (a Alignment) String() string {
	switch a {
	case Centered:
		return "centered"
	case Right:
		return "right"
	case RightIndented:
		return "right-indented"
	}
	return "unknown"
}

// Layout holds the page geometry shared by all items.
type Layout struct {
	Margin float64 // left, right, top and bottom
	Indent float64 // additional right indent for verses
}

// DefaultLayout has margins of 2 cm and an indent of 0.5 cm.
func DefaultLayout() Layout {
	return Layout{
		Margin: 2 * CM,
		Indent: 0.5 * CM,
	}
}

// anchor returns the x position text of the given alignment is drawn at.
func (l Layout) anchor(a Alignment, width float64) float64 {
	switch a {
	case Right:
		return width - l.Margin
	case RightIndented:
		return width - l.Margin - l.Indent
	}
	return width / 2
}

// Kind discriminates items.
type Kind int8

const (
	TextItem Kind = iota
	SeparatorItem
)

// Item is an element of a page, drawn at the cursor. Spacing is the distance
// the cursor moves down after the item; zero leaves the cursor where it is
// and is meant for the last item of a page.
type Item struct {
	Kind    Kind
	Text    string
	Size    float64 // font size in points
	Align   Alignment
	Spacing float64
}

// Text creates a text item. Spacing is given in centimetres.
func Text(text string, size float64, align Alignment, spacing float64) Item {
	return Item{Kind: TextItem, Text: text, Size: size, Align: align, Spacing: spacing * CM}
}

// Separator creates a horizontal rule across the content width. Spacing is
// given in centimetres.
func Separator(spacing float64) Item {
	return Item{Kind: SeparatorItem, Spacing: spacing * CM}
}
