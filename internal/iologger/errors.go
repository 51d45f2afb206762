package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// CreateLogFileError is returned when the log file of gncamtrap cannot
// be created in the log directory.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	caller := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot create log file <em>%s</em>, check permissions of its directory",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: create %s: %w", caller, path, err),
	}
}
