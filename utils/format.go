package utils

import "strconv"

// CurrencySuffix is appended to every formatted amount.
const CurrencySuffix = " DA"

// FormatAmount renders a whole-unit amount with thousands separators and the
// currency suffix, e.g. 12500 -> "12 500 DA".
func FormatAmount(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.Itoa(amount)
	var grouped []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ' ')
		}
		grouped = append(grouped, c)
	}
	out := string(grouped)
	if neg {
		out = "-" + out
	}
	return out + CurrencySuffix
}
