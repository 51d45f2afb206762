package ensemble

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// EmptyClassificationsError is returned when the classifier gave no
// candidates for an image.
func EmptyClassificationsError() error {
	msg := "Cannot ensemble predictions without classifications"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EmptyClassificationsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: empty classifications", fn.Name()),
	}
}
