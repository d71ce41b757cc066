package dirsize

import "fmt"

// Divisors used by Format. The labels are decimal but the divisors are binary,
// which is what the output has always looked like.
const (
	KB = 1 << 10
	MB = 1 << 20
	GB = 1 << 30
)

// Format renders bytes as a two-decimal value and a unit of "GB", "MB" or "KB".
// The largest unit whose divisor does not exceed bytes wins; anything below
// one megabyte is reported in KB, including zero.
func Format(bytes uint64) (value, unit string) {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f", float64(bytes)/GB), "GB"
	case bytes >= MB:
		return fmt.Sprintf("%.2f", float64(bytes)/MB), "MB"
	default:
		return fmt.Sprintf("%.2f", float64(bytes)/KB), "KB"
	}
}
