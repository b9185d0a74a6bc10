package wareki

import "strconv"

// maxCodeYear is the largest era year a two-digit code can carry.
const maxCodeYear = 99

// Gregorian years that have a three-character era code.
const (
	MinCodeYear = 1868
	MaxCodeYear = 2117
)

// FromGregorianYear returns the era date for a Gregorian year. A year shared
// by two eras (1912, 1926, 1989, 2019) resolves to the newer era, matching
// the era-year-1 code a converter would accept for it.
func FromGregorianYear(year int) (Date, error) {
	for i := len(eraTable) - 1; i >= 0; i-- {
		era := eraTable[i]
		if year < era.FirstYear() {
			continue
		}
		eraYear := year - era.Offset
		if eraYear > maxCodeYear {
			break
		}
		return Date{Era: era, Year: eraYear}, nil
	}
	return Date{}, &Error{Kind: YearOutOfRange, Input: strconv.Itoa(year), Year: year}
}

// ToEraCode is the inverse of ToGregorianYear for years MinCodeYear through
// MaxCodeYear.
func ToEraCode(year int, style PrefixStyle) (string, error) {
	d, err := FromGregorianYear(year)
	if err != nil {
		return "", err
	}
	return d.Code(style), nil
}
