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
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// getGeofenceCmd returns the geofence command.
func getGeofenceCmd() *cobra.Command {
	res := &cobra.Command{
		Use:   "geofence <label>",
		Short: "Check if a label and its ancestors are allowed at a location",
		Long: `Check geofence rules of a classifier label and its ancestors
for a country and an optional admin1 region.

Geofence fixes from --geofence-fix (or ensemble.geofence_fix_path)
are applied to the base rules first.

Example:
  gncamtrap geofence -c USA -r CA \
    "ddf59264-185a-4d35-b647-2785792bdf54;mammalia;carnivora;felidae;panthera;leo;lion"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))
			idx, rules, err := loadData(cfg)
			if err != nil {
				printError(err)
				return err
			}
			loc := geofence.Location{
				Country: cfg.Ensemble.Country,
				Admin1:  cfg.Ensemble.Admin1Region,
			}
			err = printGeofence(cmd.OutOrStdout(), idx, rules, args[0], loc)
			if err != nil {
				printError(err)
			}
			return err
		},
	}
	ensembleDataFlags(res)
	locationFlags(res)
	_ = res.MarkFlagRequired("country")
	return res
}

// printGeofence renders a table with geofence decisions for a label and
// its ancestors.
func printGeofence(
	w io.Writer,
	idx *taxonomy.Index,
	rules *geofence.RuleStore,
	lbl string,
	loc geofence.Location,
) error {
	lbl = strings.TrimSpace(lbl)
	if _, err := label.Parse(lbl); err != nil {
		return err
	}

	ancs, err := idx.Ancestors(lbl)
	if err != nil {
		return err
	}
	if len(ancs) == 0 || ancs[0].Label != lbl {
		ancs = append([]taxonomy.Ancestor{{Label: lbl}}, ancs...)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(locationTitle(loc))
	tw.AppendHeader(table.Row{"Level", "Name", "Allow", "Block", "Geofenced"})
	for _, v := range ancs {
		fenced, err := rules.ShouldGeofence(v.Label, loc, true)
		if err != nil {
			return err
		}
		l, _ := label.Parse(v.Label)
		fc := l.FullClass()
		rule, _ := rules.Rule(fc)

		level := "-"
		if v.Level != taxonomy.UnknownLevel {
			level = v.Level.String()
		}
		tw.AppendRow(table.Row{
			level,
			l.ScientificName(),
			regionsString(rule.Allow),
			regionsString(rule.Block),
			yesNo(fenced),
		})
	}
	_, err = fmt.Fprintln(w, tw.Render())
	return err
}

func locationTitle(loc geofence.Location) string {
	if loc.Admin1 == "" {
		return loc.Country
	}
	return loc.Country + "-" + loc.Admin1
}

// regionsString formats a rule section as "KEN, USA[AK CA]".
func regionsString(r geofence.Regions) string {
	if r == nil {
		return "-"
	}
	countries := r.Countries()
	res := make([]string, len(countries))
	for i, c := range countries {
		res[i] = c
		if len(r[c]) > 0 {
			res[i] += "[" + strings.Join(r[c], " ") + "]"
		}
	}
	return strings.Join(res, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
