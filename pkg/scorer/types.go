// Package scorer computes how far a detection log's model count is from its
// ground truth.
package scorer

// FileScore is the breakdown of one scored log.
type FileScore struct {
	// Path is the scored file, empty when scoring raw text.
	Path string

	// ModelCount is the raw number of model marker occurrences in the text.
	ModelCount int

	// VideoCount is the raw number of video marker occurrences in the text.
	VideoCount int

	// Events is the number of timed model events parsed.
	Events int

	// Exclusions is the number of events dropped as duplicate detections.
	Exclusions int

	// Error is the file's error count under the scorer's policy.
	Error int
}

// EffectiveModel is the model count after duplicate detections are removed.
// It can be negative when exclusions outnumber literal model markers.
func (s FileScore) EffectiveModel() int {
	return s.ModelCount - s.Exclusions
}

// Difference is the signed effective-model minus video count.
func (s FileScore) Difference() int {
	return s.EffectiveModel() - s.VideoCount
}
