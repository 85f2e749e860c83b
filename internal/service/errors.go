package service

import "errors"

// Kind classifies facade failures so the HTTP layer can map each one to a
// precise status code instead of collapsing everything into 500.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks malformed user input.
	KindValidation
	// KindNotFound marks a stock code the provider cannot resolve.
	KindNotFound
	// KindNoData marks a range with no trading days.
	KindNoData
	// KindUpstream marks a failed provider call.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindNoData:
		return "no_data"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error is a classified facade failure. The message always carries the
// operation name in front of the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the classification from an error chain, KindUnknown when
// the error did not originate in the facade.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
