package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/gncamtrap/internal/iotesting"
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *taxonomy.Index {
	idx, err := taxonomy.New(iotesting.TaxonomyLabels())
	require.NoError(t, err)
	return idx
}

func TestPrintAncestors(t *testing.T) {
	assert := assert.New(t)
	idx := testIndex(t)

	var buf bytes.Buffer
	err := printAncestors(&buf, idx, "  "+iotesting.Lion+" ")
	require.NoError(t, err)
	out := buf.String()
	for _, v := range []string{
		"Panthera leo", "Panthera", "Felidae", "Carnivora", "Mammalia",
		"cat family", "kingdom",
	} {
		assert.Contains(out, v)
	}

	buf.Reset()
	err = printAncestors(&buf, idx, "a;b;c")
	assert.Error(err)
}

func TestPrintGeofence(t *testing.T) {
	assert := assert.New(t)
	idx := testIndex(t)
	rules := geofence.NewRuleStore(iotesting.GeofenceRules())

	var buf bytes.Buffer
	loc := geofence.Location{Country: "FRA"}
	err := printGeofence(&buf, idx, rules, iotesting.Lion, loc)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(out, "FRA")
	assert.Contains(out, "KEN, TZA")
	assert.Contains(out, "USA[AK CA]")
	assert.Contains(out, "yes")
	assert.Contains(out, "no")

	buf.Reset()
	err = printGeofence(&buf, idx, rules, iotesting.Unseen,
		geofence.Location{Country: "USA", Admin1: "CA"})
	require.NoError(t, err)
	assert.Contains(buf.String(), "USA-CA")

	err = printGeofence(&buf, idx, rules, "bad label", loc)
	assert.Error(err)
}

func TestRegionsString(t *testing.T) {
	tests := []struct {
		msg string
		r   geofence.Regions
		res string
	}{
		{"nil", nil, "-"},
		{"empty", geofence.Regions{}, ""},
		{"countries", geofence.Regions{"USA": {"CA", "AK"}, "KEN": {}}, "KEN, USA[CA AK]"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, regionsString(v.r), v.msg)
	}
}
