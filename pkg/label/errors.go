package label

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// MalformedLabelError is returned when a label does not consist of
// exactly 7 fields.
func MalformedLabelError(s string, partsNum int) error {
	msg := "Expected label made of %d parts, but found %d: <em>%s</em>"
	vars := []any{FieldsNum, partsNum, s}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedLabelError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: malformed label with %d parts: %q",
			fn.Name(), partsNum, s),
	}
}
