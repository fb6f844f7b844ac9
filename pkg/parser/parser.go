package parser

import (
	"strings"
)

// SplitLines splits text on "\n", "\r\n" and "\r". Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// ParseModelEvents returns the timed events in text, in file order. Lines
// containing videoMarker are ground truth and never produce an event; any
// other line with exactly two integers does.
func ParseModelEvents(text, videoMarker string) []Event {
	var events []Event
	for _, line := range SplitLines(text) {
		if videoMarker != "" && strings.Contains(line, videoMarker) {
			continue
		}
		start, end, ok := ExtractPair(line)
		if !ok {
			continue
		}
		events = append(events, Event{Start: start, End: end})
	}
	return events
}

// CountOccurrences counts non-overlapping occurrences of sub in text,
// scanning left to right. An empty sub never matches.
func CountOccurrences(text, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(text, sub)
}
