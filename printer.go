package procedure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"
)

// DefaultPadding is the width of the action column when none is given.
const DefaultPadding = 12

// Printer renders status lines to an output sink.
type Printer struct {
	mu      sync.Mutex
	out     *bufio.Writer
	styler  Styler
	padding int
}

// Option configures a Printer.
type Option func(*Printer)

// WithStyler sets the styler used for action labels.
func WithStyler(s Styler) Option {
	return func(p *Printer) {
		if s != nil {
			p.styler = s
		}
	}
}

// WithPadding sets the padding used by the non-padded entry points.
func WithPadding(padding int) Option {
	return func(p *Printer) {
		p.padding = padding
	}
}

// NewPrinter creates a printer writing to w. Without WithStyler the styler
// is picked by DetectStyler.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:     bufio.NewWriter(w),
		padding: DefaultPadding,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.styler == nil {
		p.styler = DetectStyler(w)
	}
	return p
}

var (
	defaultMu      sync.Mutex
	defaultPrinter *Printer
)

// Default returns the process-wide printer writing to standard output.
func Default() *Printer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPrinter == nil {
		defaultPrinter = NewPrinter(os.Stdout)
	}
	return defaultPrinter
}

// SetDefault replaces the process-wide printer and returns the previous one.
func SetDefault(p *Printer) *Printer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultPrinter
	defaultPrinter = p
	return prev
}

// Padding returns the padding used by the non-padded entry points.
func (p *Printer) Padding() int {
	return p.padding
}

// Success prints a one-shot success line.
func (p *Printer) Success(action, description string) {
	p.SuccessPadded(action, description, p.padding)
}

// SuccessPadded prints a one-shot success line with the given padding.
func (p *Printer) SuccessPadded(action, description string, padding int) {
	p.status(TagSuccess, action, description, padding)
}

// Error prints a one-shot error line.
func (p *Printer) Error(action, description string) {
	p.ErrorPadded(action, description, p.padding)
}

// ErrorPadded prints a one-shot error line with the given padding.
func (p *Printer) ErrorPadded(action, description string, padding int) {
	p.status(TagFailure, action, description, padding)
}

// Warning prints a one-shot warning line.
func (p *Printer) Warning(action, description string) {
	p.WarningPadded(action, description, p.padding)
}

// WarningPadded prints a one-shot warning line with the given padding.
func (p *Printer) WarningPadded(action, description string, padding int) {
	p.status(TagWarning, action, description, padding)
}

// Info prints a one-shot info line.
func (p *Printer) Info(action, description string) {
	p.InfoPadded(action, description, p.padding)
}

// InfoPadded prints a one-shot info line with the given padding.
func (p *Printer) InfoPadded(action, description string, padding int) {
	p.status(TagInfo, action, description, padding)
}

func (p *Printer) status(tag Tag, action, description string, padding int) {
	p.write(fmt.Sprintf("\r%s %s\n", p.label(tag, action, padding), description))
}

// line renders the progress layout. The text column is left-aligned to the
// rune length of the description so a shorter result still overwrites it.
func (p *Printer) line(tag Tag, pr *Progress, text string, newline bool) {
	s := fmt.Sprintf("\r%s [%3d%%] %-*s",
		p.label(tag, pr.action, pr.padding),
		pr.value,
		utf8.RuneCountInString(pr.description),
		text,
	)
	if newline {
		s += "\n"
	}
	p.write(s)
}

// label right-aligns the action before styling so escape sequences do not
// count toward the width.
func (p *Printer) label(tag Tag, action string, padding int) string {
	if padding < 0 {
		padding = 0
	}
	return p.styler.Paint(tag, fmt.Sprintf("%*s", padding, action))
}

func (p *Printer) write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = p.out.WriteString(s)
	_ = p.out.Flush()
}

// Success prints a one-shot success line to the default printer.
func Success(action, description string) {
	Default().Success(action, description)
}

// SuccessPadded prints a one-shot success line to the default printer.
func SuccessPadded(action, description string, padding int) {
	Default().SuccessPadded(action, description, padding)
}

// Error prints a one-shot error line to the default printer.
func Error(action, description string) {
	Default().Error(action, description)
}

// ErrorPadded prints a one-shot error line to the default printer.
func ErrorPadded(action, description string, padding int) {
	Default().ErrorPadded(action, description, padding)
}

// Warning prints a one-shot warning line to the default printer.
func Warning(action, description string) {
	Default().Warning(action, description)
}

// WarningPadded prints a one-shot warning line to the default printer.
func WarningPadded(action, description string, padding int) {
	Default().WarningPadded(action, description, padding)
}

// Info prints a one-shot info line to the default printer.
func Info(action, description string) {
	Default().Info(action, description)
}

// InfoPadded prints a one-shot info line to the default printer.
func InfoPadded(action, description string, padding int) {
	Default().InfoPadded(action, description, padding)
}
