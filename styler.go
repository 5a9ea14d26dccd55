package procedure

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Tag is the semantic color of a rendered span.
type Tag int

// Tags understood by every Styler.
const (
	TagPending Tag = iota
	TagSuccess
	TagFailure
	TagWarning
	TagInfo
)

// String returns the lowercase name of the tag.
func (t Tag) String() string {
	switch t {
	case TagPending:
		return "pending"
	case TagSuccess:
		return "success"
	case TagFailure:
		return "failure"
	case TagWarning:
		return "warning"
	case TagInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Styler maps a span of text and a semantic tag to a displayable string.
type Styler interface {
	Paint(tag Tag, text string) string
}

// PlainStyler returns text unchanged. Used when color is disabled.
type PlainStyler struct{}

// Paint implements Styler.
func (PlainStyler) Paint(_ Tag, text string) string {
	return text
}

// ColorStyler paints tags with ANSI colors.
type ColorStyler struct {
	colors map[Tag]*color.Color
}

// NewColorStyler returns a styler that always emits escape sequences,
// regardless of the global color.NoColor setting.
func NewColorStyler() *ColorStyler {
	colors := map[Tag]*color.Color{
		TagPending: color.New(color.FgYellow),
		TagSuccess: color.New(color.FgGreen),
		TagFailure: color.New(color.FgRed),
		TagWarning: color.New(color.FgYellow),
		TagInfo:    color.New(color.FgCyan),
	}
	for _, c := range colors {
		c.EnableColor()
	}
	return &ColorStyler{colors: colors}
}

// Paint implements Styler.
func (s *ColorStyler) Paint(tag Tag, text string) string {
	c, ok := s.colors[tag]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// DetectStyler picks a ColorStyler when w is a terminal and color has not
// been disabled (NO_COLOR, dumb terminal), and a PlainStyler otherwise.
func DetectStyler(w io.Writer) Styler {
	if color.NoColor || !isTerminal(w) {
		return PlainStyler{}
	}
	return NewColorStyler()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
