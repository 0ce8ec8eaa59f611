package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogue(t *testing.T) {
	cases := []struct {
		iv        Interval
		semitones int
		folded    int
		symbol    string
	}{
		{Minor3, 3, 3, "3m"},
		{Perfect5, 7, 7, "5"},
		{Minor7, 10, 10, "7"},
		{Major7, 11, 11, "maj7"},
		{Major9, 14, 2, "9"},
		{Augmented9, 15, 3, "9+"},
		{Perfect11, 17, 5, "11"},
		{Augmented11, 18, 6, "11+"},
	}
	for _, c := range cases {
		t.Run(c.iv.String(), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.semitones, c.iv.Semitones())
			assert.Equal(c.folded, c.iv.Folded())
			assert.Equal(c.symbol, c.iv.Symbol())
			assert.True(c.iv.Valid())
		})
	}
}

func TestAugmentedFifthSharesMinorSixth(t *testing.T) {
	assert.Equal(t, Minor6.Semitones(), Augmented5.Semitones())
	assert.NotEqual(t, Minor6.Symbol(), Augmented5.Symbol())
}

func TestNoneIsInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.False(None.Valid())
	assert.Equal("", None.Symbol())
	assert.Equal("interval(0)", None.String())
}
