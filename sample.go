package vecknn

import "github.com/hupe1980/vecknn/vector"

// Sample is a labelled reference vector.
//
// Labels need not be unique. Each classification records the sample's
// distance from its query, readable through Distance until the next
// classification that scans the sample.
type Sample struct {
	Label string
	Data  *vector.Vector

	distance    float64
	hasDistance bool
}

// NewSample creates a labelled sample.
func NewSample(label string, data *vector.Vector) *Sample {
	return &Sample{Label: label, Data: data}
}

// Distance returns the distance from the most recent query. ok is false if no
// classification has scanned the sample yet, or the last one skipped it.
func (s *Sample) Distance() (d float64, ok bool) {
	return s.distance, s.hasDistance
}

func (s *Sample) setDistance(d float64) {
	s.distance, s.hasDistance = d, true
}

func (s *Sample) clearDistance() {
	s.distance, s.hasDistance = 0, false
}
