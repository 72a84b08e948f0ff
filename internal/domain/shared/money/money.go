package money

import "strconv"

// Amount is a number of Colombian pesos. The property prices everything in
// whole COP, so amounts carry no fractional units and no currency tag.
type Amount int64

func (a Amount) Add(other Amount) Amount {
	return a + other
}

func (a Amount) Sub(other Amount) Amount {
	return a - other
}

func (a Amount) Neg() Amount {
	return -a
}

func (a Amount) Multiply(times int64) Amount {
	return a * Amount(times)
}

func (a Amount) IsZero() bool {
	return a == 0
}

// Format renders the amount the way the house paperwork does: "$1.234.567",
// dot-grouped, no decimals, minus sign before the currency symbol.
func (a Amount) Format() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + "$" + string(out)
}
