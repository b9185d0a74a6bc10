package wareki

import (
	"fmt"
	"unicode/utf8"
)

// codeLength is counted in runes, not bytes.
const codeLength = 3

// Date is a validated era date.
type Date struct {
	Era  Era
	Year int
}

// GregorianYear returns Era.Offset + Year.
func (d Date) GregorianYear() int {
	return d.Era.Offset + d.Year
}

// Code renders the date back into a three-character era code.
func (d Date) Code(style PrefixStyle) string {
	return fmt.Sprintf("%c%02d", d.Era.Prefix(style), d.Year)
}

func (d Date) String() string {
	return d.Code(LetterPrefix)
}

// Parse validates an era code and returns its era and era year.
//
// Checks run in a fixed order: length, year digits, year lower bound, era
// prefix, era upper bound. "A00" therefore fails with YearTooLow rather
// than UnknownEra.
func Parse(code string) (Date, error) {
	if utf8.RuneCountInString(code) != codeLength {
		return Date{}, &Error{Kind: InvalidLength, Input: code}
	}

	runes := []rune(code)
	year, ok := parseYear(runes[1], runes[2])
	if !ok {
		return Date{}, &Error{Kind: InvalidYear, Input: code}
	}
	if year < 1 {
		return Date{}, &Error{Kind: YearTooLow, Input: code}
	}

	era, ok := LookupEra(runes[0])
	if !ok {
		return Date{}, &Error{Kind: UnknownEra, Input: code}
	}
	if era.Bounded() && year > era.MaxYear {
		return Date{}, &Error{Kind: EraYearOutOfRange, Input: code, Era: era.Name, Max: era.MaxYear}
	}

	return Date{Era: era, Year: year}, nil
}

// parseYear accepts ASCII digits only; signs and other Unicode digits fail.
func parseYear(tens, ones rune) (int, bool) {
	if !isDigit(tens) || !isDigit(ones) {
		return 0, false
	}
	return int(tens-'0')*10 + int(ones-'0'), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ToGregorianYear converts an era code such as "M45" or "145" into the
// Gregorian year it names.
func ToGregorianYear(code string) (int, error) {
	d, err := Parse(code)
	if err != nil {
		return 0, err
	}
	return d.GregorianYear(), nil
}

// JpEra converts an era code into a Gregorian year.
//
// Deprecated: use ToGregorianYear.
func JpEra(wareki string) (int, error) {
	return ToGregorianYear(wareki)
}

// ToGregorianCalendar converts an era code into a Gregorian year.
//
// Deprecated: use ToGregorianYear.
func ToGregorianCalendar(wareki string) (int, error) {
	return ToGregorianYear(wareki)
}
