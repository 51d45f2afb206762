package iotaxonomy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// TaxonomyReadError is returned when a taxonomy file cannot be read.
func TaxonomyReadError(path string, err error) error {
	msg := `Cannot read taxonomy file <em>%s</em>

<em>How to fix:</em>
  Set ensemble.taxonomy_path in the configuration
  or use --taxonomy flag`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.TaxonomyReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read taxonomy %s: %w", path, err),
	}
}
