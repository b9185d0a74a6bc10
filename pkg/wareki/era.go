package wareki

// Era is one row of the compiled-in era table.
type Era struct {
	Name   string
	Letter rune
	Digit  rune
	// Offset is added to the 1-based era year to get the Gregorian year.
	Offset int
	// MaxYear is the last valid era year, 0 when the era is still open.
	MaxYear int
}

// Bounded reports whether the era has a known last year.
func (e Era) Bounded() bool {
	return e.MaxYear > 0
}

// FirstYear is the Gregorian year of era year 1.
func (e Era) FirstYear() int {
	return e.Offset + 1
}

// LastYear is the Gregorian year of the era's last year. ok is false for an
// open era.
func (e Era) LastYear() (year int, ok bool) {
	if !e.Bounded() {
		return 0, false
	}
	return e.Offset + e.MaxYear, true
}

// Prefix returns the era's code prefix in the requested style.
func (e Era) Prefix(style PrefixStyle) rune {
	if style == DigitPrefix {
		return e.Digit
	}
	return e.Letter
}

func (e Era) String() string {
	return e.Name
}

// PrefixStyle selects how an era prefix is rendered.
type PrefixStyle int

const (
	LetterPrefix PrefixStyle = iota // M, T, S, H, R
	DigitPrefix                     // 1, 2, 3, 4, 5
)

// Chronological order; ToEraCode walks it backwards.
var eraTable = [...]Era{
	{Name: "Meiji", Letter: 'M', Digit: '1', Offset: 1867, MaxYear: 45},
	{Name: "Taisho", Letter: 'T', Digit: '2', Offset: 1911, MaxYear: 15},
	{Name: "Showa", Letter: 'S', Digit: '3', Offset: 1925, MaxYear: 64},
	{Name: "Heisei", Letter: 'H', Digit: '4', Offset: 1988, MaxYear: 31},
	{Name: "Reiwa", Letter: 'R', Digit: '5', Offset: 2018},
}

// Eras returns a copy of the era table, oldest first.
func Eras() []Era {
	out := make([]Era, len(eraTable))
	copy(out, eraTable[:])
	return out
}

// LookupEra resolves a letter or digit prefix. Letters are case-sensitive.
func LookupEra(prefix rune) (Era, bool) {
	for _, e := range eraTable {
		if e.Letter == prefix || e.Digit == prefix {
			return e, true
		}
	}
	return Era{}, false
}
