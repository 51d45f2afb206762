package geofence

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

const (
	notSpeciesMsg = "fixes should provide only species-level rules"
	badRuleMsg    = "rule types should be either allow or block"
)

// GeofenceFixError is returned when a fix cannot be applied. The idx
// is the position of the fix in the batch.
func GeofenceFixError(idx int, fix Fix, reason string) error {
	msg := "Invalid geofence fix #%d (<em>%s, %s</em>): %s"
	vars := []any{idx + 1, fix.Species, fix.Rule, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GeofenceFixError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid geofence fix %d %+v: %s",
			fn.Name(), idx+1, fix, reason),
	}
}
