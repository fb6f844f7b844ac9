// Package parser extracts timed events and marker counts from detection logs.
package parser

// Event is a model detection with a start and end timestamp, in the units
// used by the log (typically seconds into the recording).
type Event struct {
	// Start is the first integer on the line.
	Start int

	// End is the second integer on the line.
	End int
}

// GapAfter returns the time between the end of prev and the start of e.
// It is negative when the events overlap.
func (e Event) GapAfter(prev Event) int {
	return e.Start - prev.End
}
