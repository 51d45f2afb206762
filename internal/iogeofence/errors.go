package iogeofence

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// GeofenceReadError is returned when geofence rules cannot be read or
// decoded.
func GeofenceReadError(path string, err error) error {
	msg := "Cannot read geofence rules from <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.GeofenceReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read geofence %s: %w", path, err),
	}
}

// GeofenceFixReadError is returned when a geofence fix file cannot be
// read or lacks required columns.
func GeofenceFixReadError(path string, err error) error {
	msg := `Cannot read geofence fixes from <em>%s</em>

<em>Expected CSV header:</em>
  species,rule,country_code,admin1_region_code`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.GeofenceFixReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read geofence fixes %s: %w", path, err),
	}
}
