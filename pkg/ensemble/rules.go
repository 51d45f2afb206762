package ensemble

import (
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/prediction"
)

// input holds what the cascade rules look at.
type input struct {
	det   prediction.Detection
	top   prediction.Candidate
	cands []prediction.Candidate
	loc   geofence.Location
}

func (in input) isDet(c prediction.Category, minConf float64) bool {
	return in.det.Category == c && in.det.Confidence > minConf
}

func (in input) isTop(lbl string, minScore float64) bool {
	return in.top.Label == lbl && in.top.Score > minScore
}

// rule is a named step of the cascade. The boolean result tells if the
// rule matched.
type rule struct {
	name  string
	apply func(*Ensembler, input) (prediction.Result, bool, error)
}

// cascade is evaluated top to bottom, the first matching rule wins.
// The order of rules matters.
var cascade = []rule{
	{
		name: "human_detection",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.HumanCategory, 0.7) {
				return detectorResult(label.Human, in.det.Confidence), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "human_detection_human_classification",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.HumanCategory, 0.2) &&
				(in.isTop(label.Human, 0.5) || in.isTop(label.Vehicle, 0.5)) {
				return classifierResult(label.Human, in.top.Score), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "vehicle_detection_human_classification",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.VehicleCategory, 0.2) &&
				in.isTop(label.Human, 0.5) {
				return classifierResult(label.Human, in.top.Score), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "vehicle_detection",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.VehicleCategory, 0.7) {
				return detectorResult(label.Vehicle, in.det.Confidence), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "vehicle_detection_vehicle_classification",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.VehicleCategory, 0.2) &&
				in.isTop(label.Vehicle, 0.4) {
				return classifierResult(label.Vehicle, in.top.Score), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "no_detection_blank_classification",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.det.Confidence < 0.2 && in.isTop(label.Blank, 0.5) {
				return classifierResult(label.Blank, in.top.Score), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "blank_classification",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isTop(label.Blank, 0.99) {
				return classifierResult(label.Blank, in.top.Score), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
	{
		name: "animal_classification",
		apply: func(e *Ensembler, in input) (prediction.Result, bool, error) {
			if !label.IsTaxon(in.top.Label) || in.top.Score <= 0.8 {
				return prediction.Result{}, false, nil
			}
			res, err := e.GeofenceAnimal(in.cands, in.loc)
			return res, err == nil, err
		},
	},
	{
		name: "animal_detection_animal_classification",
		apply: func(e *Ensembler, in input) (prediction.Result, bool, error) {
			if !label.IsTaxon(in.top.Label) || in.top.Score <= 0.65 ||
				!in.isDet(prediction.AnimalCategory, 0.2) {
				return prediction.Result{}, false, nil
			}
			res, err := e.GeofenceAnimal(in.cands, in.loc)
			return res, err == nil, err
		},
	},
	{
		name: "rollup",
		apply: func(e *Ensembler, in input) (prediction.Result, bool, error) {
			return e.rollup.RollUp(
				in.cands, in.loc, rollupLevels, 0.65, e.geofenceEnabled,
			)
		},
	},
	{
		name: "animal_detection",
		apply: func(_ *Ensembler, in input) (prediction.Result, bool, error) {
			if in.isDet(prediction.AnimalCategory, 0.5) {
				return detectorResult(label.Animal, in.det.Confidence), true, nil
			}
			return prediction.Result{}, false, nil
		},
	},
}
