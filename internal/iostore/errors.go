package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// StoreOpenError is returned when a store cannot be opened.
func StoreOpenError(location string, err error) error {
	msg := "Cannot open prediction store <em>%s</em>"
	vars := []any{location}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open store %s: %w", location, err),
	}
}

// StoreSaveError is returned when predictions cannot be saved.
func StoreSaveError(location string, err error) error {
	msg := "Cannot save predictions to <em>%s</em>"
	vars := []any{location}

	return &gn.Error{
		Code: errcode.StoreSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot save to %s: %w", location, err),
	}
}

// StoreLockError is returned when another process holds the store.
func StoreLockError(path string) error {
	msg := `Prediction store <em>%s</em> is used by another process

<em>How to fix:</em>
  Wait for the other gncamtrap run to finish
  or set a different output.sqlite_path`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreLockError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("store %s is locked", path),
	}
}
