package epub2md

import "errors"

// Error kinds. Every error returned by Service.Convert matches exactly one
// of them with errors.Is.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrExternalTool          = errors.New("external tool failed")
	ErrIO                    = errors.New("I/O error")
	ErrTransform             = errors.New("markdown transformation failed")
	ErrUsage                 = errors.New("usage error")
)

// kinds lists the error kinds in the order KindOf checks them.
var kinds = []error{
	ErrInvalidInput,
	ErrDependencyUnavailable,
	ErrExternalTool,
	ErrIO,
	ErrTransform,
	ErrUsage,
}

// StepError records the pipeline stage at which a conversion stopped.
type StepError struct {
	Stage Stage
	Err   error

	// Paths holds the resolved file locations. It is zero when the run
	// stopped before paths were resolved.
	Paths Paths
}

func (e *StepError) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// OutputWritten reports whether the Markdown file had already been written
// when the conversion failed. Only a cleanup failure leaves complete output.
func (e *StepError) OutputWritten() bool {
	return e.Stage == StageCleanup
}

// KindOf returns the error kind err matches, or nil if it matches none.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// StageOf returns the stage recorded in err, if err wraps a StepError.
func StageOf(err error) (Stage, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Stage, true
	}
	return 0, false
}
