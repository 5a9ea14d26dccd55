package procedure

// Outcome is what a successful work function hands back to the wrapper.
// Value is returned to the caller; Display is only rendered on the final
// line, formatted with %v.
type Outcome[R any] struct {
	Value   R
	Display any
}

// Work is a function run under a progress line.
type Work[R any] func(p *Progress) (Outcome[R], error)

// Proceed runs work under a progress line on the default printer using
// the default printer's padding.
func Proceed[R any](action, description string, work Work[R]) (R, error) {
	return Run(Default(), action, description, work)
}

// ProceedPadded runs work under a progress line on the default printer.
func ProceedPadded[R any](action, description string, work Work[R], padding int) (R, error) {
	return RunPadded(Default(), action, description, work, padding)
}

// Run runs work under a progress line on p using p's padding.
func Run[R any](p *Printer, action, description string, work Work[R]) (R, error) {
	return RunPadded(p, action, description, work, p.padding)
}

// RunPadded renders a 0% line, calls work, and finishes the line as
// success (100%, Outcome.Display) or failure (last percentage, the error).
// The error returned by work is passed back unchanged.
func RunPadded[R any](p *Printer, action, description string, work Work[R], padding int) (R, error) {
	progress := p.NewProgress(action, description, padding)
	progress.Initialize()

	outcome, err := work(progress)
	if err != nil {
		progress.err(err)
		var zero R
		return zero, err
	}

	progress.ok(outcome.Display)
	return outcome.Value, nil
}
