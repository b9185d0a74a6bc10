package wareki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "H31", "H31"},
		{"full-width letters and digits", "Ｈ３１", "H31"},
		{"full-width digit prefix", "４３１", "431"},
		{"lower case", "r05", "R05"},
		{"surrounding spaces", "  s64\t", "S64"},
		{"ideographic space", "　Ｍ４５　", "M45"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_ThenConvert(t *testing.T) {
	year, err := ToGregorianYear(Normalize("ｒ０１"))
	assert.NoError(t, err)
	assert.Equal(t, 2019, year)

	// Strict conversion rejects the raw input.
	_, err = ToGregorianYear("ｒ０１")
	assert.ErrorIs(t, err, ErrInvalidYear)
}
