package wareki

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a conversion was rejected.
type ErrorKind string

const (
	InvalidLength     ErrorKind = "invalid_length"
	InvalidYear       ErrorKind = "invalid_year"
	YearTooLow        ErrorKind = "year_too_low"
	UnknownEra        ErrorKind = "unknown_era"
	EraYearOutOfRange ErrorKind = "era_year_out_of_range"
	// YearOutOfRange is only returned by the Gregorian-to-era direction.
	YearOutOfRange ErrorKind = "year_out_of_range"
)

// Error message strings. The first four keep their historical wording;
// existing callers match on them.
const (
	ErrMsgInvalidLength        = "`wareki` must have 3 characters."
	ErrMsgInvalidYear          = "Year must be two decimal digits."
	ErrMsgYearTooLow           = "Year is more than 1."
	ErrMsgUnknownEra           = "Unknown era."
	ErrMsgEraYearOutOfRangeFmt = "%s until %d."
	ErrMsgYearOutOfRangeFmt    = "Year %d has no era code."
)

// Error is returned for every rejected input.
type Error struct {
	Kind ErrorKind
	// Input is the code (or, for YearOutOfRange, the year) that was rejected.
	Input string
	// Era and Max are set for EraYearOutOfRange.
	Era string
	Max int
	// Year is set for YearOutOfRange.
	Year int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidLength:
		return ErrMsgInvalidLength
	case InvalidYear:
		return ErrMsgInvalidYear
	case YearTooLow:
		return ErrMsgYearTooLow
	case UnknownEra:
		return ErrMsgUnknownEra
	case EraYearOutOfRange:
		return fmt.Sprintf(ErrMsgEraYearOutOfRangeFmt, e.Era, e.Max)
	case YearOutOfRange:
		return fmt.Sprintf(ErrMsgYearOutOfRangeFmt, e.Year)
	default:
		return string(e.Kind)
	}
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of the input that failed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidLength     = &Error{Kind: InvalidLength}
	ErrInvalidYear       = &Error{Kind: InvalidYear}
	ErrYearTooLow        = &Error{Kind: YearTooLow}
	ErrUnknownEra        = &Error{Kind: UnknownEra}
	ErrEraYearOutOfRange = &Error{Kind: EraYearOutOfRange}
	ErrYearOutOfRange    = &Error{Kind: YearOutOfRange}
)

// KindOf returns the ErrorKind wrapped in err, or "" if err is not a
// conversion error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
