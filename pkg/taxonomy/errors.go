package taxonomy

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/pkg/errcode"
)

// InvalidTaxonomyLevelError is returned for level names that are not one
// of species, genus, family, order, class or kingdom.
func InvalidTaxonomyLevelError(level string) error {
	msg := "Expected one of taxonomy levels <em>%s</em>, but found <em>%s</em>"
	vars := []any{strings.Join(LevelNames(), ", "), level}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidTaxonomyLevelError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid taxonomy level %q",
			fn.Name(), level),
	}
}
