// Package pricing computes rental fees from elapsed time and per-minute rates.
package pricing

const secondsPerMinute = 60

// DebtOwed returns the amount owed for a rental that lasted elapsedSeconds
// at ratePerMinuteCents. Partial minutes are truncated: a rental ending one
// second past a whole-minute boundary owes nothing for that partial minute.
// Both inputs are validated as non-negative by callers.
func DebtOwed(elapsedSeconds, ratePerMinuteCents int64) int64 {
	minutes := elapsedSeconds / secondsPerMinute
	return minutes * ratePerMinuteCents
}
