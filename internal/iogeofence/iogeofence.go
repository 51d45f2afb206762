// Package iogeofence reads the geofence rules JSON file and CSV files
// with geofence fixes.
package iogeofence

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gnfmt"
)

// Columns of a geofence fix file.
const (
	SpeciesCol      = "species"
	RuleCol         = "rule"
	CountryCol      = "country_code"
	Admin1RegionCol = "admin1_region_code"
)

// Load reads geofence rules from a JSON file.
func Load(path string) (*geofence.RuleStore, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, GeofenceReadError(path, err)
	}

	var raw geofence.RawRules
	enc := gnfmt.GNjson{}
	if err = enc.Decode(bs, &raw); err != nil {
		return nil, GeofenceReadError(path, err)
	}

	res := geofence.NewRuleStore(raw)
	slog.Info("Geofence rules loaded", "path", path, "rules", res.Len())
	return res, nil
}

// LoadWithFixes reads geofence rules and applies fixes from fixPath.
// Empty fixPath means there are no fixes.
func LoadWithFixes(path, fixPath string) (*geofence.RuleStore, error) {
	res, err := Load(path)
	if err != nil {
		return nil, err
	}
	if fixPath == "" {
		return res, nil
	}

	fixes, err := ReadFixes(fixPath)
	if err != nil {
		return nil, err
	}

	res, err = res.WithFixes(fixes)
	if err != nil {
		return nil, err
	}
	slog.Info("Geofence fixes applied", "path", fixPath, "fixes", len(fixes))
	return res, nil
}

// ReadFixes reads geofence fixes from a CSV file. Columns are found by
// their header names, admin1_region_code column is optional.
func ReadFixes(path string) ([]geofence.Fix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, GeofenceFixReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, GeofenceFixReadError(path, err)
	}

	cols := make(map[string]int, len(header))
	for i, v := range header {
		cols[strings.ToLower(strings.TrimSpace(v))] = i
	}
	for _, v := range []string{SpeciesCol, RuleCol, CountryCol} {
		if _, ok := cols[v]; !ok {
			return nil, GeofenceFixReadError(path, errors.New("no column "+v))
		}
	}

	field := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var res []geofence.Fix
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, GeofenceFixReadError(path, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		res = append(res, geofence.Fix{
			Species:          field(row, SpeciesCol),
			Rule:             field(row, RuleCol),
			CountryCode:      field(row, CountryCol),
			Admin1RegionCode: field(row, Admin1RegionCol),
		})
	}
	return res, nil
}
