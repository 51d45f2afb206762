package prediction_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceString(t *testing.T) {
	tests := []struct {
		msg string
		src prediction.Source
		res string
	}{
		{"detector", prediction.Source{Stage: prediction.Detector}, "detector"},
		{"classifier", prediction.Source{Stage: prediction.Classifier}, "classifier"},
		{"rollup", prediction.Source{
			Stage:       prediction.Classifier,
			RollupLevel: taxonomy.Genus,
		}, "classifier+rollup_to_genus"},
		{"geofence rollup", prediction.Source{
			Stage:       prediction.Classifier,
			Geofence:    true,
			RollupLevel: taxonomy.Family,
		}, "classifier+geofence+rollup_to_family"},
		{"geofence failed", prediction.Source{
			Stage:        prediction.Classifier,
			Geofence:     true,
			RollupFailed: true,
		}, "classifier+geofence+rollup_failed"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.src.String(), v.msg)
	}
}

func TestCategoryJSON(t *testing.T) {
	tests := []struct {
		msg, json string
		res       prediction.Category
	}{
		{"string", `{"category": "1", "conf": 0.9}`, prediction.AnimalCategory},
		{"number", `{"category": 2, "conf": 0.9}`, prediction.HumanCategory},
		{"name", `{"category": "vehicle", "conf": 0.9}`, prediction.VehicleCategory},
		{"out of range", `{"category": 7, "conf": 0.9}`, prediction.UnknownCategory},
	}

	for _, v := range tests {
		var det prediction.Detection
		err := json.Unmarshal([]byte(v.json), &det)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, det.Category, v.msg)
		assert.Equal(t, 0.9, det.Confidence, v.msg)
	}

	var det prediction.Detection
	err := json.Unmarshal([]byte(`{"category": [1]}`), &det)
	assert.Error(t, err)

	bs, err := json.Marshal(prediction.Detection{
		Category:   prediction.HumanCategory,
		Confidence: 0.5,
	})
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"category":"2"`)
}

func TestTop(t *testing.T) {
	assert.Equal(t, prediction.NoDetection, prediction.Top(nil))
	assert.Equal(t, prediction.AnimalCategory, prediction.Top(nil).Category)
	assert.Equal(t, 0.0, prediction.Top(nil).Confidence)

	dets := []prediction.Detection{
		{Category: prediction.VehicleCategory, Confidence: 0.8},
		{Category: prediction.HumanCategory, Confidence: 0.3},
	}
	assert.Equal(t, dets[0], prediction.Top(dets))
}

func TestCandidates(t *testing.T) {
	c := prediction.Classifications{
		Classes: []string{"a", "b"},
		Scores:  []float64{0.7, 0.2},
	}
	res := c.Candidates()
	require.Len(t, res, 2)
	assert.Equal(t, prediction.Candidate{Label: "b", Score: 0.2}, res[1])
}
