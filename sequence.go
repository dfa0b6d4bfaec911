package htmltext

// alphabeticSequence converts a 1-based index to the spreadsheet-style
// letter sequence a, b, ..., z, aa, ab, ...
func alphabeticSequence(n int) string {
	if n < 1 {
		return ""
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{'a' + byte(n%26)}, b...)
		n /= 26
	}
	return string(b)
}

var romanPairs = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// romanNumeral converts a positive integer to lowercase Roman numerals.
func romanNumeral(n int) string {
	if n < 1 {
		return ""
	}
	var b []byte
	for _, p := range romanPairs {
		for n >= p.value {
			b = append(b, p.symbol...)
			n -= p.value
		}
	}
	return string(b)
}
