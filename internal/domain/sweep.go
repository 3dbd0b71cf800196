package domain

import "time"

// SweepStats holds statistics about a stale-record sweep.
type SweepStats struct {
	Scanned  int
	Failed   int
	Errors   int
	Duration time.Duration
}
