package iooutput_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/iooutput"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gnfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lion = "ddf59264-185a-4d35-b647-2785792bdf54;mammalia;carnivora;" +
	"felidae;panthera;leo;lion"

func preds() []prediction.Prediction {
	return []prediction.Prediction{
		{
			ID:               "id-a",
			Filepath:         "a.jpg",
			Country:          "KEN",
			Prediction:       lion,
			PredictionScore:  score(0.75),
			PredictionSource: "classifier",
			ScientificName:   "Panthera leo",
		},
		{
			ID:       "id-b",
			Filepath: "b.jpg",
			Failures: []string{"CLASSIFIER", "ENSEMBLE"},
		},
	}
}

func score(f float64) *float64 {
	return &f
}

func TestZeroScore(t *testing.T) {
	assert := assert.New(t)
	ps := []prediction.Prediction{
		{
			ID:               "id-z",
			Filepath:         "z.jpg",
			Prediction:       label.Unknown,
			PredictionScore:  score(0),
			PredictionSource: "classifier",
		},
		{ID: "id-f", Filepath: "f.jpg", Failures: []string{"ENSEMBLE"}},
	}

	var buf bytes.Buffer
	require.NoError(t, iooutput.Write(&buf, ps, gnfmt.CompactJSON))
	assert.Equal(1, strings.Count(buf.String(), `"prediction_score":0`))

	var res prediction.Output
	require.NoError(t, gnfmt.GNjson{}.Decode(buf.Bytes(), &res))
	require.NotNil(t, res.Predictions[0].PredictionScore)
	assert.Equal(0.0, *res.Predictions[0].PredictionScore)
	assert.Nil(res.Predictions[1].PredictionScore)

	assert.Equal("0", iooutput.Row(ps[0])[6])
	assert.Empty(iooutput.Row(ps[1])[6])
}

func TestWriteJSON(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := iooutput.Write(&buf, preds(), gnfmt.CompactJSON)
	require.NoError(t, err)
	out := buf.String()
	assert.True(strings.HasPrefix(out, `{"predictions":[`))
	assert.Equal(1, strings.Count(out, "\n"))

	var res prediction.Output
	enc := gnfmt.GNjson{}
	require.NoError(t, enc.Decode(buf.Bytes(), &res))
	assert.Equal(preds(), res.Predictions)

	buf.Reset()
	err = iooutput.Write(&buf, preds(), gnfmt.PrettyJSON)
	require.NoError(t, err)
	assert.Greater(strings.Count(buf.String(), "\n"), 5)

	buf.Reset()
	err = iooutput.Write(&buf, nil, gnfmt.CompactJSON)
	require.NoError(t, err)
	assert.Equal(`{"predictions":[]}`+"\n", buf.String())
}

func TestWriteRows(t *testing.T) {
	tests := []struct {
		msg    string
		format gnfmt.Format
		sep    string
	}{
		{"csv", gnfmt.CSV, ","},
		{"tsv", gnfmt.TSV, "\t"},
	}

	for _, v := range tests {
		var buf bytes.Buffer
		err := iooutput.Write(&buf, preds(), v.format)
		require.NoError(t, err, v.msg)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3, v.msg)
		assert.Equal(t, strings.Join(iooutput.Header, v.sep), lines[0], v.msg)
		assert.True(t, strings.HasPrefix(lines[1], "id-a"+v.sep+"a.jpg"+v.sep+"KEN"), v.msg)
		assert.Contains(t, lines[1], "Panthera leo"+v.sep+"0.75"+v.sep+"classifier", v.msg)
		assert.Contains(t, lines[2], "CLASSIFIER,ENSEMBLE", v.msg)
	}
}

func TestRow(t *testing.T) {
	p := preds()
	assert.Equal(t, []string{
		"id-a", "a.jpg", "KEN", "", lion, "Panthera leo", "0.75",
		"classifier", "",
	}, iooutput.Row(p[0]))
	row := iooutput.Row(p[1])
	assert.Empty(t, row[6])
	assert.Equal(t, "CLASSIFIER,ENSEMBLE", row[8])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := iooutput.WriteFile(path, preds(), gnfmt.PrettyJSON)
	require.NoError(t, err)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"prediction_source": "classifier"`)

	err = iooutput.WriteFile(filepath.Join(t.TempDir(), "no", "out.json"),
		preds(), gnfmt.CSV)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.OutputWriteError, gnErr.Code)
}

func TestWriteBadFormat(t *testing.T) {
	var buf bytes.Buffer
	err := iooutput.Write(&buf, preds(), gnfmt.FormatNone)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.OutputFormatError, gnErr.Code)
}
