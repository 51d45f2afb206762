package ioinput_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/ioinput"
	"github.com/gnames/gncamtrap/internal/iotesting"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	instancesJSON = `{"instances": [
  {"filepath": "b.jpg", "country": "KEN"},
  {"filepath": "a.jpg", "country": "USA", "admin1_region": "CA"},
  {"filepath": "b.jpg", "country": "TZA"}
]}`

	detectorJSON = `{"predictions": [
  {"filepath": "a.jpg", "detections": [
    {"category": "1", "label": "animal", "conf": 0.9, "bbox": [0.1, 0.2, 0.3, 0.4]}
  ]},
  {"filepath": "b.jpg", "detections": []},
  {"filepath": "d.jpg", "detections": [
    {"category": 2, "label": "human", "conf": 0.8, "bbox": [0, 0, 1, 1]}
  ]}
]}`

	classifierJSON = `{"predictions": [
  {"filepath": "a.jpg", "classifications": {
    "classes": ["` + iotesting.Lion + `", "` + iotesting.Puma + `"],
    "scores": [0.7, 0.2]}},
  {"filepath": "c.jpg", "classifications": {"classes": [], "scores": []}},
  {"filepath": "b.jpg"}
]}`
)

func TestRead(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	p := ioinput.Paths{
		InstancesPath:  iotesting.WriteFile(t, dir, "instances.json", instancesJSON),
		DetectorPath:   iotesting.WriteFile(t, dir, "det.json", detectorJSON),
		ClassifierPath: iotesting.WriteFile(t, dir, "cls.json", classifierJSON),
	}

	res, err := ioinput.Read(p)
	require.NoError(t, err)

	paths := make([]string, len(res))
	for i := range res {
		paths[i] = res[i].Filepath
	}
	assert.Equal([]string{"b.jpg", "a.jpg", "c.jpg", "d.jpg"}, paths)

	b := res[0]
	assert.Equal("KEN", b.Country)
	assert.Empty(b.Detections)
	assert.Nil(b.Classifications)

	a := res[1]
	assert.Equal("USA", a.Country)
	assert.Equal("CA", a.Admin1Region)
	require.Len(a.Detections, 1)
	assert.Equal(prediction.AnimalCategory, a.Detections[0].Category)
	assert.Equal([4]float64{0.1, 0.2, 0.3, 0.4}, a.Detections[0].BBox)
	require.NotNil(a.Classifications)
	assert.Equal([]float64{0.7, 0.2}, a.Classifications.Scores)

	c := res[2]
	assert.Nil(c.Detections)
	require.NotNil(c.Classifications)
	assert.Empty(c.Classifications.Classes)

	d := res[3]
	assert.Empty(d.Country)
	require.Len(d.Detections, 1)
	assert.Equal(prediction.HumanCategory, d.Detections[0].Category)
}

func TestReadNoInstances(t *testing.T) {
	dir := t.TempDir()
	p := ioinput.Paths{
		DetectorPath:   iotesting.WriteFile(t, dir, "det.json", detectorJSON),
		ClassifierPath: iotesting.WriteFile(t, dir, "cls.json", classifierJSON),
	}

	res, err := ioinput.Read(p)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, "a.jpg", res[0].Filepath)
	assert.Empty(t, res[0].Country)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	good := iotesting.WriteFile(t, dir, "det.json", detectorJSON)
	bad := iotesting.WriteFile(t, dir, "bad.json", "[1, 2")
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		msg string
		p   ioinput.Paths
	}{
		{"missing instances", ioinput.Paths{InstancesPath: missing, DetectorPath: good, ClassifierPath: good}},
		{"bad detector", ioinput.Paths{DetectorPath: bad, ClassifierPath: good}},
		{"missing classifier", ioinput.Paths{DetectorPath: good, ClassifierPath: missing}},
	}

	for _, v := range tests {
		_, err := ioinput.Read(v.p)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.InputReadError, gnErr.Code, v.msg)
	}
}

func TestJoinErrors(t *testing.T) {
	one := []prediction.Prediction{{Filepath: "a.jpg"}}
	two := []prediction.Prediction{{Filepath: "a.jpg"}, {Filepath: "b.jpg"}}
	badScores := []prediction.Prediction{{
		Filepath: "a.jpg",
		Classifications: &prediction.Classifications{
			Classes: []string{iotesting.Lion},
			Scores:  []float64{0.5, 0.2},
		},
	}}

	_, err := ioinput.Join(nil, nil, one)
	var emptyDet ioinput.EmptyDetectorError
	assert.True(t, errors.As(err, &emptyDet))

	_, err = ioinput.Join(nil, one, nil)
	var emptyCls ioinput.EmptyClassifierError
	assert.True(t, errors.As(err, &emptyCls))

	_, err = ioinput.Join(nil, two, one)
	var mismatch ioinput.MismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Contains(t, err.Error(), "2 vs 1")

	_, err = ioinput.Join(nil, one, badScores)
	var scores ioinput.ScoresLengthError
	assert.True(t, errors.As(err, &scores))
	assert.Contains(t, err.Error(), "a.jpg")
}
