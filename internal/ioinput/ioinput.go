// Package ioinput assembles ensemble input from the instances file and
// the outputs of the detector and the classifier.
package ioinput

import (
	"log/slog"
	"os"
	"slices"

	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"
)

// Instance is an image to process with its location.
type Instance struct {
	Filepath     string `json:"filepath"`
	Country      string `json:"country,omitempty"`
	Admin1Region string `json:"admin1_region,omitempty"`
}

// Instances is the shape of the instances JSON file.
type Instances struct {
	Instances []Instance `json:"instances"`
}

// Paths locate input files. InstancesPath is optional.
type Paths struct {
	InstancesPath  string
	DetectorPath   string
	ClassifierPath string
}

// Read reads input files and joins them by file path.
func Read(p Paths) ([]prediction.Prediction, error) {
	var inst Instances
	if p.InstancesPath != "" {
		if err := decodeFile(p.InstancesPath, &inst); err != nil {
			return nil, err
		}
	}

	var det, cls prediction.Output
	if err := decodeFile(p.DetectorPath, &det); err != nil {
		return nil, err
	}
	if err := decodeFile(p.ClassifierPath, &cls); err != nil {
		return nil, err
	}

	res, err := Join(inst.Instances, det.Predictions, cls.Predictions)
	if err != nil {
		return nil, err
	}

	slog.Info("Ensemble input assembled",
		"instances", len(inst.Instances),
		"detections", len(det.Predictions),
		"classifications", len(cls.Predictions),
		"images", len(res),
	)
	return res, nil
}

// Join combines instances, detector records and classifier records by
// file path. Detector and classifier outputs must be non-empty and have
// the same number of records. Records follow the order of instances,
// file paths absent from instances are appended in sorted order.
func Join(
	inst []Instance,
	det []prediction.Prediction,
	cls []prediction.Prediction,
) ([]prediction.Prediction, error) {
	if len(det) == 0 {
		return nil, NewEmptyDetectorError()
	}
	if len(cls) == 0 {
		return nil, NewEmptyClassifierError()
	}
	if len(det) != len(cls) {
		return nil, NewMismatchError(len(det), len(cls))
	}

	recs := make(map[string]*prediction.Prediction)
	get := func(path string) *prediction.Prediction {
		path = gnlib.FixUtf8(path)
		res, ok := recs[path]
		if !ok {
			res = &prediction.Prediction{Filepath: path}
			recs[path] = res
		}
		return res
	}

	for _, v := range det {
		rec := get(v.Filepath)
		rec.Detections = v.Detections
	}

	for _, v := range cls {
		c := v.Classifications
		if c != nil && len(c.Classes) != len(c.Scores) {
			return nil, NewScoresLengthError(
				v.Filepath, len(c.Classes), len(c.Scores),
			)
		}
		rec := get(v.Filepath)
		rec.Classifications = c
	}

	res := make([]prediction.Prediction, 0, len(recs)+len(inst))
	seen := make(map[string]struct{}, len(inst))
	for _, v := range inst {
		rec := get(v.Filepath)
		if _, ok := seen[rec.Filepath]; ok {
			continue
		}
		seen[rec.Filepath] = struct{}{}
		rec.Country = v.Country
		rec.Admin1Region = v.Admin1Region
		res = append(res, *rec)
	}

	var rest []string
	for k := range recs {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	for _, v := range rest {
		res = append(res, *recs[v])
	}
	return res, nil
}

func decodeFile(path string, v any) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return InputReadError(path, err)
	}
	enc := gnfmt.GNjson{}
	if err = enc.Decode(bs, v); err != nil {
		return InputReadError(path, err)
	}
	return nil
}
