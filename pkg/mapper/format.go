package mapper

import (
	"fmt"
	"strconv"
)

// FormatBytes renders a byte count in kibibytes with two decimals: 2048 -> "2.00K".
// There is no M or G scaling.
func FormatBytes(bytes float64) string {
	return fmt.Sprintf("%.2fK", bytes/1024.0)
}

// FormatTime renders seconds with exactly three decimals: 1.5 -> "1.500".
func FormatTime(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// FormatCount renders a count as a plain decimal.
func FormatCount(n int) string {
	return strconv.Itoa(n)
}
