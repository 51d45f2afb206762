package iotesting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnfmt"
)

// WriteFile writes content to a file in dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// WriteTaxonomy writes TaxonomyLabels to a taxonomy release file.
func WriteTaxonomy(t *testing.T, dir string) string {
	t.Helper()
	content := strings.Join(TaxonomyLabels(), "\n") + "\n"
	return WriteFile(t, dir, "taxonomy_release.txt", content)
}

// WriteGeofence writes GeofenceRules to a geofence JSON file.
func WriteGeofence(t *testing.T, dir string) string {
	t.Helper()
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(GeofenceRules())
	if err != nil {
		t.Fatalf("Failed to encode geofence rules: %v", err)
	}
	return WriteFile(t, dir, "geofence_release.json", string(bs))
}
