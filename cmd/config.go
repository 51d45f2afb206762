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

	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	res := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Show configuration after merging defaults, config.yaml and
GNCAMTRAP_* environment variables. The database password is hidden.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := printConfig(cmd.OutOrStdout(), cfg)
			if err != nil {
				printError(err)
			}
			return err
		},
	}
	return res
}

// printConfig writes configuration as YAML.
func printConfig(w io.Writer, c *config.Config) error {
	show := *c
	if show.Database.Password != "" {
		show.Database.Password = "********"
	}

	bs, err := yaml.Marshal(&show)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "# %s\n", config.ConfigFilePath(c.HomeDir)); err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}
