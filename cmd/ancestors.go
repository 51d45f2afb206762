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

	"github.com/gnames/gncamtrap/internal/iotaxonomy"
	"github.com/gnames/gncamtrap/pkg/label"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// getAncestorsCmd returns the ancestors command.
func getAncestorsCmd() *cobra.Command {
	res := &cobra.Command{
		Use:   "ancestors <label>",
		Short: "Show ancestors of a label at every taxonomic level",
		Long: `Show ancestors of a classifier label from species to kingdom.

A label has 7 fields separated by semicolons:
  id;class;order;family;genus;species;common name

Example:
  gncamtrap ancestors \
    "ddf59264-185a-4d35-b647-2785792bdf54;mammalia;carnivora;felidae;panthera;leo;lion"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))
			idx, err := iotaxonomy.Load(cfg.TaxonomyPath())
			if err != nil {
				printError(err)
				return err
			}
			err = printAncestors(cmd.OutOrStdout(), idx, args[0])
			if err != nil {
				printError(err)
			}
			return err
		},
	}
	res.Flags().String("taxonomy", "", "path to taxonomy release file")
	return res
}

// printAncestors renders a table of ancestors of a label.
func printAncestors(w io.Writer, idx *taxonomy.Index, lbl string) error {
	lbl = strings.TrimSpace(lbl)
	ancs, err := idx.Ancestors(lbl)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Level", "Name", "Common Name", "Label"})
	for _, v := range ancs {
		l, err := label.Parse(v.Label)
		if err != nil {
			return err
		}
		tw.AppendRow(table.Row{
			v.Level.String(), l.ScientificName(), l.CommonName, v.Label,
		})
	}
	if len(ancs) == 0 {
		_, err = fmt.Fprintf(w, "No ancestors found for %q\n", lbl)
		return err
	}
	_, err = fmt.Fprintln(w, tw.Render())
	return err
}
