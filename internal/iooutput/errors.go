package iooutput

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// OutputFormatError is returned for formats that cannot be written.
func OutputFormatError(format string) error {
	msg := "Output format <em>%s</em> is not supported"
	vars := []any{format}

	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported output format %s", format),
	}
}

// OutputWriteError is returned when predictions cannot be written.
func OutputWriteError(err error) error {
	msg := "Cannot write predictions"

	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot write predictions: %w", err),
	}
}
