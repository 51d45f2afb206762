package rollup

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
)

// InvalidRollupLevelsError is returned when rollup is asked to use levels
// that do not exist.
func InvalidRollupLevelsError(levels []string) error {
	msg := "Invalid rollup levels <em>%s</em>, valid levels are: %s"
	vars := []any{
		strings.Join(levels, ", "),
		strings.Join(taxonomy.LevelNames(), ", "),
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidConfigurationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid rollup levels %v",
			fn.Name(), levels),
	}
}
