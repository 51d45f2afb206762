/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/iogeofence"
	"github.com/gnames/gncamtrap/internal/iotaxonomy"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/gnames/gnlib"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ensembleDataFlags are shared by commands that need taxonomy and
// geofence files.
func ensembleDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("taxonomy", "",
		"path to taxonomy release file")
	cmd.Flags().String("geofence-base", "",
		"path to geofence rules JSON file")
	cmd.Flags().String("geofence-fix", "",
		"path to CSV file with geofence fixes")
}

func locationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("country", "c", "",
		"ISO 3166-1 alpha-3 country code, for example USA")
	cmd.Flags().StringP("admin1-region", "r", "",
		"first-level administrative region, for example CA")
}

// flagOptions converts flags changed by the user into config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	strOpts := []struct {
		flag string
		opt  func(string) config.Option
	}{
		{"taxonomy", config.OptEnsembleTaxonomyPath},
		{"geofence-base", config.OptEnsembleGeofencePath},
		{"geofence-fix", config.OptEnsembleGeofenceFixPath},
		{"country", config.OptEnsembleCountry},
		{"admin1-region", config.OptEnsembleAdmin1Region},
		{"format", config.OptOutputFormat},
		{"store", config.OptOutputStore},
		{"sqlite-path", config.OptOutputSQLitePath},
	}
	for _, v := range strOpts {
		f := cmd.Flags().Lookup(v.flag)
		if f == nil || !f.Changed {
			continue
		}
		res = append(res, v.opt(f.Value.String()))
	}

	if f := cmd.Flags().Lookup("geofence"); f != nil && f.Changed {
		b, _ := cmd.Flags().GetBool("geofence")
		res = append(res, config.OptEnsembleGeofenceEnabled(b))
	}
	return res
}

// loadData reads taxonomy and geofence rules with fixes.
func loadData(
	cfg *config.Config,
) (*taxonomy.Index, *geofence.RuleStore, error) {
	idx, err := iotaxonomy.Load(cfg.TaxonomyPath())
	if err != nil {
		return nil, nil, err
	}

	rules, err := iogeofence.LoadWithFixes(
		cfg.GeofencePath(),
		cfg.Ensemble.GeofenceFixPath,
	)
	if err != nil {
		return nil, nil, err
	}
	return idx, rules, nil
}

// printError shows a user-friendly message of an error.
func printError(err error) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.PrintErrorMessage(err)
		return
	}
	gnlib.PrintUserMessage(err)
}

// isTerminal reports if w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
