package domain

import "fmt"

// Report accumulates human-readable drift findings. It is caller-owned and
// append-only: checks add entries and never remove or reorder them.
type Report struct {
	entries []string
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a formatted entry to the report.
func (r *Report) Add(format string, args ...any) {
	r.entries = append(r.entries, fmt.Sprintf(format, args...))
}

// Entries returns the accumulated entries in insertion order.
func (r *Report) Entries() []string {
	return r.entries
}

// Empty reports whether no findings have been recorded.
func (r *Report) Empty() bool {
	return len(r.entries) == 0
}
