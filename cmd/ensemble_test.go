package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gncamtrap/internal/ioinput"
	"github.com/gnames/gncamtrap/internal/iotesting"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/pipeline"
	"github.com/gnames/gncamtrap/pkg/prediction"
	"github.com/gnames/gnfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, dir string, opts ...config.Option) *config.Config {
	res := config.New()
	res.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptJobsNumber(2),
		config.OptEnsembleTaxonomyPath(iotesting.WriteTaxonomy(t, dir)),
		config.OptEnsembleGeofencePath(iotesting.WriteGeofence(t, dir)),
	})
	res.Update(opts)
	return res
}

func ensembleInput(t *testing.T, dir string) ioinput.Paths {
	inst := `{"instances": [
  {"filepath": "kenya.jpg", "country": "KEN"},
  {"filepath": "france.jpg", "country": "FRA"},
  {"filepath": "lost.jpg"}
]}`
	det := `{"predictions": [
  {"filepath": "kenya.jpg", "detections": [
    {"category": "1", "label": "animal", "conf": 0.95, "bbox": [0.1, 0.1, 0.5, 0.5]}]},
  {"filepath": "france.jpg", "detections": [
    {"category": "1", "label": "animal", "conf": 0.9, "bbox": [0.2, 0.2, 0.4, 0.4]}]}
]}`
	cls := `{"predictions": [
  {"filepath": "kenya.jpg", "classifications": {
    "classes": ["` + iotesting.Lion + `"], "scores": [0.9]}},
  {"filepath": "france.jpg", "classifications": {
    "classes": ["` + iotesting.Lion + `"], "scores": [0.9]}}
]}`
	return ioinput.Paths{
		InstancesPath:  iotesting.WriteFile(t, dir, "instances.json", inst),
		DetectorPath:   iotesting.WriteFile(t, dir, "det.json", det),
		ClassifierPath: iotesting.WriteFile(t, dir, "cls.json", cls),
	}
}

func TestRunEnsemble(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	sqlitePath := filepath.Join(dir, "out.sqlite")
	c := testConfig(t, dir,
		config.OptOutputFormat("compact"),
		config.OptOutputStore("sqlite"),
		config.OptOutputSQLitePath(sqlitePath),
	)
	outPath := filepath.Join(dir, "predictions.json")

	stats, err := runEnsemble(context.Background(), c,
		ensembleInput(t, dir), outPath, false)
	require.NoError(t, err)
	assert.Equal(3, stats.imagesNum)
	assert.Equal(1, stats.failedNum)
	assert.NotEmpty(stats.runID)
	assert.FileExists(sqlitePath)

	bs, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var out prediction.Output
	require.NoError(t, gnfmt.GNjson{}.Decode(bs, &out))
	require.Len(t, out.Predictions, 3)

	kenya := out.Predictions[0]
	assert.Equal("kenya.jpg", kenya.Filepath)
	assert.Equal(iotesting.Lion, kenya.Prediction)
	assert.Equal("Panthera leo", kenya.ScientificName)
	assert.NotEmpty(kenya.ID)

	france := out.Predictions[1]
	assert.Equal(iotesting.CarnivoraOrder, france.Prediction)
	assert.Equal("classifier+geofence+rollup_to_order", france.PredictionSource)
	assert.Equal("Carnivora", france.ScientificName)

	lost := out.Predictions[2]
	assert.Contains(lost.Failures, pipeline.ClassifierFailure)
}

func TestRunEnsembleGeofenceOff(t *testing.T) {
	dir := t.TempDir()
	c := testConfig(t, dir,
		config.OptOutputFormat("tsv"),
		config.OptEnsembleGeofenceEnabled(false),
	)
	outPath := filepath.Join(dir, "predictions.tsv")

	_, err := runEnsemble(context.Background(), c,
		ensembleInput(t, dir), outPath, false)
	require.NoError(t, err)

	bs, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "france.jpg\tFRA\t\t"+iotesting.Lion)
}

func TestRunEnsembleErrors(t *testing.T) {
	dir := t.TempDir()
	in := ensembleInput(t, dir)
	out := filepath.Join(dir, "out.json")

	c := testConfig(t, dir)
	c.Ensemble.TaxonomyPath = filepath.Join(dir, "missing.txt")
	_, err := runEnsemble(context.Background(), c, in, out, false)
	assert.Error(t, err)

	c = testConfig(t, dir)
	c.Output.Format = "xml"
	_, err = runEnsemble(context.Background(), c, in, out, false)
	assert.Error(t, err)

	c = testConfig(t, dir)
	in.DetectorPath = iotesting.WriteFile(t, dir, "empty.json",
		`{"predictions": []}`)
	_, err = runEnsemble(context.Background(), c, in, out, false)
	var empty ioinput.EmptyDetectorError
	assert.ErrorAs(t, err, &empty)
	assert.NoFileExists(t, out)
}

func TestGetEnsembleCmd(t *testing.T) {
	cmd := getEnsembleCmd()
	assert.Equal(t, "ensemble", cmd.Use)
	for _, v := range []string{
		"instances-json", "detections-json", "classifications-json",
		"predictions-json", "format", "store", "sqlite-path", "geofence",
		"taxonomy", "geofence-base", "geofence-fix", "country",
		"admin1-region",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(v), v)
	}
}

func TestFlagOptions(t *testing.T) {
	assert := assert.New(t)
	cmd := getEnsembleCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"-c", "usa", "-r", "ca", "--geofence=false", "-f", "csv",
		"--taxonomy", "/tmp/tax.txt",
	}))

	c := config.New()
	c.Update(flagOptions(cmd))
	assert.Equal("USA", c.Ensemble.Country)
	assert.Equal("CA", c.Ensemble.Admin1Region)
	assert.False(c.Ensemble.GeofenceEnabled)
	assert.Equal("csv", c.Output.Format)
	assert.Equal("/tmp/tax.txt", c.Ensemble.TaxonomyPath)
	assert.Equal("none", c.Output.Store)

	cmd = getEnsembleCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.Empty(flagOptions(cmd))
}
