package dial

import "strconv"

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral converts a positive integer to its Roman numeral form
// using standard subtractive notation. Values outside [1, 3999] fall back
// to the decimal representation, matching how numeral labels degrade for
// values Roman notation cannot express.
func romanNumeral(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	var b []byte
	for _, rv := range romanValues {
		for n >= rv.value {
			b = append(b, rv.symbol...)
			n -= rv.value
		}
	}
	return string(b)
}
