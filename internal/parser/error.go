package parser

import "fmt"

type Reason int

const (
	ReasonRead Reason = iota
	ReasonSyntax
	ReasonField
)

func (r Reason) String() string {
	switch r {
	case ReasonRead:
		return "unreadable"
	case ReasonSyntax:
		return "malformed"
	case ReasonField:
		return "invalid field"
	}
	return "unknown"
}

// LoadError is returned when a chart cannot be loaded. No partial chart
// is ever returned alongside it.
type LoadError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load chart %v (%v): %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
