// Package ensemble reconciles detector and classifier outputs into one
// prediction per image. Decisions are made by a cascade of rules that
// compare detector confidence and classifier scores with fixed
// thresholds. Taxa that are implausible at the image location are
// replaced by their plausible ancestors.
package ensemble

import (
	"log/slog"

	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/rollup"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
)

// geofenceEpsilon lowers the rollup threshold after geofencing, so the
// first plausible ancestor is accepted.
const geofenceEpsilon = 1e-10

var (
	rollupLevels   = []string{"genus", "family", "order", "class", "kingdom"}
	geofenceLevels = []string{"family", "order", "class", "kingdom"}
)

// Ensembler combines detections and classifications. It is safe for
// concurrent use.
type Ensembler struct {
	rules           *geofence.RuleStore
	rollup          *rollup.Engine
	geofenceEnabled bool
}

// Option configures an Ensembler.
type Option func(*Ensembler)

// OptGeofence turns geofencing on or off. It is on by default.
func OptGeofence(b bool) Option {
	return func(e *Ensembler) {
		e.geofenceEnabled = b
	}
}

// New creates an Ensembler from a taxonomy index and geofence rules.
func New(
	idx *taxonomy.Index,
	rules *geofence.RuleStore,
	opts ...Option,
) *Ensembler {
	res := &Ensembler{
		rules:           rules,
		rollup:          rollup.New(idx, rules),
		geofenceEnabled: true,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Ensemble returns the final prediction for an image. Detections and
// candidates must be sorted by score, highest first. An empty list of
// detections is treated as an animal detected with zero confidence.
func (e *Ensembler) Ensemble(
	dets []prediction.Detection,
	cands []prediction.Candidate,
	loc geofence.Location,
) (prediction.Result, error) {
	if len(cands) == 0 {
		return prediction.Result{}, EmptyClassificationsError()
	}

	in := input{
		det:   prediction.Top(dets),
		top:   cands[0],
		cands: cands,
		loc:   loc,
	}

	for _, r := range cascade {
		res, ok, err := r.apply(e, in)
		if err != nil {
			return prediction.Result{}, err
		}
		if ok {
			slog.Debug("Ensemble rule matched",
				"rule", r.name,
				"label", res.Label,
				"score", res.Score,
				"source", res.Source.String(),
			)
			return res, nil
		}
	}

	res := classifierResult(label.Unknown, in.top.Score)
	slog.Debug("Ensemble rule matched",
		"rule", "unknown",
		"label", res.Label,
		"score", res.Score,
	)
	return res, nil
}

// GeofenceAnimal returns the top candidate unless it is geofenced at the
// location. A geofenced candidate is replaced by the first ancestor from
// family to kingdom that collects at least the top score and is not
// geofenced itself. If there is no such ancestor, the Unknown label is
// returned.
func (e *Ensembler) GeofenceAnimal(
	cands []prediction.Candidate,
	loc geofence.Location,
) (prediction.Result, error) {
	var res prediction.Result
	if len(cands) == 0 {
		return res, EmptyClassificationsError()
	}
	top := cands[0]

	fenced, err := e.rules.ShouldGeofence(top.Label, loc, e.geofenceEnabled)
	if err != nil {
		return res, err
	}
	if !fenced {
		return classifierResult(top.Label, top.Score), nil
	}

	res, ok, err := e.rollup.RollUp(
		cands, loc, geofenceLevels, top.Score-geofenceEpsilon, e.geofenceEnabled,
	)
	if err != nil {
		return prediction.Result{}, err
	}
	if ok {
		res.Source.Geofence = true
		return res, nil
	}

	res = prediction.Result{
		Label: label.Unknown,
		Score: top.Score,
		Source: prediction.Source{
			Stage:        prediction.Classifier,
			Geofence:     true,
			RollupFailed: true,
		},
	}
	return res, nil
}

func classifierResult(lbl string, score float64) prediction.Result {
	return prediction.Result{
		Label:  lbl,
		Score:  score,
		Source: prediction.Source{Stage: prediction.Classifier},
	}
}

func detectorResult(lbl string, score float64) prediction.Result {
	return prediction.Result{
		Label:  lbl,
		Score:  score,
		Source: prediction.Source{Stage: prediction.Detector},
	}
}
