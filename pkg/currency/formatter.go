package currency

import "strconv"

// FormatCOP renders an integer peso amount the way the booking pages show it,
// e.g. 150000 -> "$ 150.000 COP".
func FormatCOP(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := addThousandsSeparator(strconv.Itoa(amount), ".")

	result := "$ " + formatted + " COP"
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
