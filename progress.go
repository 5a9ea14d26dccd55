package procedure

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidRange is returned by the set operations when the inputs do not
// satisfy min < max and min <= value <= max.
var ErrInvalidRange = errors.New("invalid range")

// Progress is the state of one in-flight operation. Only the percentage
// changes after construction.
type Progress struct {
	printer     *Printer
	action      string
	description string
	padding     int
	value       int
}

// New creates a progress at 0% rendering to the default printer.
// Nothing is written until a set operation is called.
func New(action, description string, padding int) *Progress {
	return Default().NewProgress(action, description, padding)
}

// NewProgress creates a progress at 0% rendering to p.
func (p *Printer) NewProgress(action, description string, padding int) *Progress {
	return &Progress{
		printer:     p,
		action:      action,
		description: description,
		padding:     padding,
	}
}

// Action returns the action label.
func (pr *Progress) Action() string { return pr.action }

// Description returns the in-progress description.
func (pr *Progress) Description() string { return pr.description }

// Padding returns the width of the action column.
func (pr *Progress) Padding() int { return pr.padding }

// Percent returns the current percentage.
func (pr *Progress) Percent() int { return pr.value }

// Initialize sets the progress to 0% and renders it.
func (pr *Progress) Initialize() {
	// 0 within [0, 100] cannot fail.
	_ = pr.SetFrom(0, 100, 0)
}

// Set sets the percentage directly.
func (pr *Progress) Set(value int) error {
	return pr.SetFrom(0, 100, int64(value))
}

// Increment moves the percentage forward by offset.
func (pr *Progress) Increment(offset int) error {
	return pr.Set(pr.value + offset)
}

// SetFrom sets the percentage from value's position within [min, max],
// rounding down, and redraws the line. On ErrInvalidRange the state is
// left untouched and nothing is written.
func (pr *Progress) SetFrom(min, max, value int64) error {
	if max <= min {
		return fmt.Errorf("%w: max %d must be greater than min %d", ErrInvalidRange, max, min)
	}
	if value < min || value > max {
		return fmt.Errorf("%w: value %d outside [%d, %d]", ErrInvalidRange, value, min, max)
	}

	pr.value = percentage(min, max, value)
	pr.printer.line(TagPending, pr, pr.description, false)
	return nil
}

// ok finishes the progress at 100% with result in place of the description.
func (pr *Progress) ok(result any) {
	pr.value = 100
	pr.printer.line(TagSuccess, pr, fmt.Sprint(result), true)
}

// err finishes the progress at its current percentage with the error in
// place of the description.
func (pr *Progress) err(e error) {
	pr.printer.line(TagFailure, pr, e.Error(), true)
}

// percentage computes floor((value-min)*100 / (max-min)) in 128 bits so
// byte-sized ranges do not overflow. Callers guarantee min <= value <= max.
func percentage(min, max, value int64) int {
	hi, lo := bits.Mul64(uint64(value-min), 100)
	q, _ := bits.Div64(hi, lo, uint64(max-min))
	return int(q)
}
