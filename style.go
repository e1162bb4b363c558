package prompter

import (
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ColorMode selects how a Color's fields are interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default, no color set
	Color16                      // basic 16-color palette (0-15)
	Color256                     // 256-color palette
	ColorRGB                     // 24-bit true color
)

// Color is a terminal color in one of four modes.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color { return Color{Mode: ColorDefault} }

// BasicColor returns one of the 16 basic ANSI colors.
func BasicColor(index uint8) Color { return Color{Mode: Color16, Index: index} }

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color { return Color{Mode: Color256, Index: index} }

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// Standard basic colors.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Attribute is a bitset of text attributes, combinable with Has/With/Without.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrInverse
)

func (a Attribute) Has(attr Attribute) bool     { return a&attr != 0 }
func (a Attribute) With(attr Attribute) Attribute    { return a | attr }
func (a Attribute) Without(attr Attribute) Attribute { return a &^ attr }

// Style combines foreground/background color and text attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle is the zero style: terminal default colors, no attributes.
func DefaultStyle() Style { return Style{} }

func (s Style) Bold() Style          { s.Attr = s.Attr.With(AttrBold); return s }
func (s Style) Dim() Style           { s.Attr = s.Attr.With(AttrDim); return s }
func (s Style) Italic() Style        { s.Attr = s.Attr.With(AttrItalic); return s }
func (s Style) Underline() Style     { s.Attr = s.Attr.With(AttrUnderline); return s }
func (s Style) Inverse() Style       { s.Attr = s.Attr.With(AttrInverse); return s }
func (s Style) Foreground(c Color) Style { s.FG = c; return s }
func (s Style) Background(c Color) Style { s.BG = c; return s }

func (s Style) Equal(other Style) bool { return s == other }

// Cell is a single character cell: a rune plus the style it is painted with.
// A Rune of 0 marks the trailing placeholder half of a wide (double-width)
// character occupying the previous column.
type Cell struct {
	Rune  rune
	Style Style
}

func EmptyCell() Cell { return Cell{Rune: ' '} }

func (c Cell) Equal(other Cell) bool { return c == other }

// Segment is a run of text sharing one Style.
type Segment struct {
	Text  string
	Style Style
}

// AttributedString is ordered styled segments, the unit the renderer and
// layout code operate on. Width calculations are wide-character aware.
type AttributedString struct {
	segments []Segment
}

// NewAttributedString builds an AttributedString from one styled run.
func NewAttributedString(text string, style Style) AttributedString {
	if text == "" {
		return AttributedString{}
	}
	return AttributedString{segments: []Segment{{Text: text, Style: style}}}
}

// Plain builds an unstyled AttributedString.
func Plain(text string) AttributedString { return NewAttributedString(text, DefaultStyle()) }

// Append returns a new AttributedString with segment appended.
func (a AttributedString) Append(text string, style Style) AttributedString {
	if text == "" {
		return a
	}
	out := make([]Segment, len(a.segments), len(a.segments)+1)
	copy(out, a.segments)
	out = append(out, Segment{Text: text, Style: style})
	return AttributedString{segments: out}
}

// AppendString concatenates another AttributedString's segments.
func (a AttributedString) AppendString(other AttributedString) AttributedString {
	out := make([]Segment, 0, len(a.segments)+len(other.segments))
	out = append(out, a.segments...)
	out = append(out, other.segments...)
	return AttributedString{segments: out}
}

// ColumnLength returns the total displayed cell width (wide-char aware).
func (a AttributedString) ColumnLength() int {
	w := 0
	for _, seg := range a.segments {
		w += runewidth.StringWidth(seg.Text)
	}
	return w
}

// Cells flattens the string to its styled runes, one Cell per rune, with an
// extra zero-rune placeholder cell following every double-width rune so grid
// layout can treat every visible column as exactly one Cell slot.
func (a AttributedString) Cells() []Cell {
	var cells []Cell
	for _, seg := range a.segments {
		for _, r := range seg.Text {
			cells = append(cells, Cell{Rune: r, Style: seg.Style})
			if runewidth.RuneWidth(r) == 2 {
				cells = append(cells, Cell{Rune: 0, Style: seg.Style})
			}
		}
	}
	return cells
}

// String renders the AttributedString to a terminal-ready ANSI string using
// the process-wide resolved color profile (see ResolveColorProfile).
func (a AttributedString) String() string {
	var b strings.Builder
	for _, seg := range a.segments {
		b.WriteString(renderSegment(seg))
	}
	return b.String()
}

var activeProfile = colorprofile.Detect(nil, nil)

// ResolveColorProfile detects the terminal's color capability once (ascii,
// ANSI, 256-color, or true color) so styles degrade gracefully on terminals
// that can't render 24-bit color. Called once by Config's DefaultConfig.
func ResolveColorProfile(environ []string) colorprofile.Profile {
	p := colorprofile.Detect(nil, environ)
	activeProfile = p
	return p
}

func renderSegment(seg Segment) string {
	ls := lipgloss.NewStyle()
	if seg.Style.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if seg.Style.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if seg.Style.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if seg.Style.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if seg.Style.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if c, ok := lipglossColor(seg.Style.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipglossColor(seg.Style.BG); ok {
		ls = ls.Background(c)
	}
	out := ls.Render(seg.Text)
	if activeProfile <= colorprofile.Ascii {
		return seg.Text
	}
	return out
}

func lipglossColor(c Color) (lipgloss.TerminalColor, bool) {
	switch c.Mode {
	case ColorDefault:
		return nil, false
	case Color16:
		return lipgloss.ANSIColor(c.Index), true
	case Color256:
		return lipgloss.ANSIColor(c.Index), true
	case ColorRGB:
		return lipgloss.Color(rgbHex(c.R, c.G, c.B)), true
	}
	return nil, false
}

func rgbHex(r, g, b uint8) string {
	const hex = "0123456789abcdef"
	buf := [7]byte{'#'}
	buf[1], buf[2] = hex[r>>4], hex[r&0xf]
	buf[3], buf[4] = hex[g>>4], hex[g&0xf]
	buf[5], buf[6] = hex[b>>4], hex[b&0xf]
	return string(buf[:])
}
