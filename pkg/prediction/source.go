package prediction

import (
	"strings"

	"github.com/gnames/gncamtrap/pkg/taxonomy"
)

// Stage of the pipeline that produced a result.
type Stage int

const (
	Detector Stage = iota
	Classifier
)

func (s Stage) String() string {
	switch s {
	case Detector:
		return "detector"
	case Classifier:
		return "classifier"
	default:
		return "unknown"
	}
}

// Source is the provenance of a result.
type Source struct {
	Stage Stage

	// Geofence is true when the top classifier label was geofenced and
	// the result comes from the rollup that followed.
	Geofence bool

	// RollupLevel is the level the result was rolled up to, if any.
	RollupLevel taxonomy.Level

	// RollupFailed is true when the rollup found nothing.
	RollupFailed bool
}

// String renders the source as a '+'-separated list of steps, for example
// "classifier+geofence+rollup_to_family".
func (s Source) String() string {
	parts := []string{s.Stage.String()}
	if s.Geofence {
		parts = append(parts, "geofence")
	}
	if s.RollupLevel != taxonomy.UnknownLevel {
		parts = append(parts, "rollup_to_"+s.RollupLevel.String())
	}
	if s.RollupFailed {
		parts = append(parts, "rollup_failed")
	}
	return strings.Join(parts, "+")
}
