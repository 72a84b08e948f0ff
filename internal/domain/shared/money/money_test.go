package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGroupsThousandsWithDots(t *testing.T) {
	cases := []struct {
		in   Amount
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1.000"},
		{40000, "$40.000"},
		{1234567, "$1.234.567"},
		{-150000, "-$150.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Format())
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Amount(150), Amount(100).Add(50))
	assert.Equal(t, Amount(-50), Amount(100).Sub(150))
	assert.Equal(t, Amount(-100), Amount(100).Neg())
	assert.Equal(t, Amount(300), Amount(100).Multiply(3))
	assert.True(t, Amount(0).IsZero())
	assert.False(t, Amount(1).IsZero())
}
