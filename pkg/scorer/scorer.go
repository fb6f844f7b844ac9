package scorer

import (
	"context"

	"github.com/ccollicutt/batteval/pkg/config"
	"github.com/ccollicutt/batteval/pkg/parser"
)

// Scorer scores detection logs. It holds no per-file state and may be reused.
type Scorer struct {
	threshold   int
	policy      Policy
	modelMarker string
	videoMarker string
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithThreshold sets the minimum time between batteries.
func WithThreshold(n int) Option {
	return func(s *Scorer) {
		s.threshold = n
	}
}

// WithPolicy sets the error policy.
func WithPolicy(p Policy) Option {
	return func(s *Scorer) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithMarkers sets the literal substrings that identify model and video lines.
func WithMarkers(model, video string) Option {
	return func(s *Scorer) {
		if model != "" {
			s.modelMarker = model
		}
		if video != "" {
			s.videoMarker = video
		}
	}
}

// New creates a Scorer with default threshold, markers and absolute policy.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		threshold:   config.DefaultMinTimeBetweenBatteries,
		policy:      Absolute,
		modelMarker: config.DefaultModelMarker,
		videoMarker: config.DefaultVideoMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig creates a Scorer from a validated configuration.
func FromConfig(cfg *config.Config) (*Scorer, error) {
	policy, err := PolicyFor(cfg.ErrorPolicy)
	if err != nil {
		return nil, err
	}
	return New(
		WithThreshold(cfg.MinTimeBetweenBatteries),
		WithPolicy(policy),
		WithMarkers(cfg.ModelMarker, cfg.VideoMarker),
	), nil
}

// Threshold returns the minimum time between batteries.
func (s *Scorer) Threshold() int {
	return s.threshold
}

// Score scores the full text of one log.
//
// Marker counts cover the whole text, video lines included, while timed
// events only come from lines without the video marker.
func (s *Scorer) Score(text string) FileScore {
	events := parser.ParseModelEvents(text, s.videoMarker)

	result := FileScore{
		ModelCount: parser.CountOccurrences(text, s.modelMarker),
		VideoCount: parser.CountOccurrences(text, s.videoMarker),
		Events:     len(events),
		Exclusions: CountExclusions(events, s.threshold),
	}
	result.Error = s.policy(result.Difference())
	return result
}

// ScoreFile reads and scores a log file.
func (s *Scorer) ScoreFile(ctx context.Context, path string) (FileScore, error) {
	text, err := parser.ReadFile(ctx, path)
	if err != nil {
		return FileScore{Path: path}, err
	}
	result := s.Score(text)
	result.Path = path
	return result, nil
}

// CountExclusions counts adjacent event pairs that start less than threshold
// after the previous event ended. Each such pair is one duplicate detection,
// so three events in quick succession yield two exclusions.
func CountExclusions(events []parser.Event, threshold int) int {
	n := 0
	for i := 1; i < len(events); i++ {
		if events[i].GapAfter(events[i-1]) < threshold {
			n++
		}
	}
	return n
}
