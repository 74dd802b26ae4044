/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/metapepticon-config/form"
	"github.com/wtsi-hgi/metapepticon-config/params"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrInvalidSet = Error("--set values must be of the form name=value")

// options for this cmd.
var (
	generateSets   []string
	generateDryRun bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write config/config.yaml without interaction.",
	Long: `Write config/config.yaml without interaction.

The default parameters for the detected input type are written, with any
changes you specify using --set name=value, which can be given multiple times.
Names are the same as the fields of the "edit" form:

` + fieldNamesHelp() + `
Length filter and AntiCP2 values can be given with or without their -m or -d
prefix. Values are not validated.

An existing config/config.yaml is overwritten. Use --dry-run to see what would
be written without writing it.
`,
	Run: func(_ *cobra.Command, _ []string) {
		f := newForm()

		if err := applySets(f, generateSets); err != nil {
			die("%s", err.Error())
		}

		if generateDryRun {
			if err := f.Document().Encode(os.Stdout); err != nil {
				die("%s", err.Error())
			}

			return
		}

		path, err := f.Save()
		if err != nil {
			die("%s", err.Error())
		}

		info("wrote %s config with %d samples", f.InputType(), len(f.Samples()))
		reportSaved(os.Stdout, path)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringArrayVarP(&generateSets, "set", "s", nil,
		"name=value of a field to change from its default")
	generateCmd.Flags().BoolVarP(&generateDryRun, "dry-run", "n", false,
		"print the config to STDOUT instead of writing it")
}

// applySets parses name=value strings and sets them on the form.
func applySets(f *form.Form, sets []string) error {
	for _, s := range sets {
		name, value, err := parseSet(s)
		if err != nil {
			return err
		}

		if err = f.Set(name, value); err != nil {
			return fmt.Errorf("%w: %s", err, name)
		}
	}

	return nil
}

func parseSet(s string) (string, string, error) {
	name, value, found := strings.Cut(s, "=")
	if !found || strings.TrimSpace(name) == "" {
		return "", "", ErrInvalidSet
	}

	return strings.TrimSpace(name), value, nil
}

func fieldNamesHelp() string {
	var b strings.Builder

	for _, name := range []string{
		params.FieldSlidingWindow, params.FieldMinLen, params.FieldAdapterFile,
		params.FieldSeedMismatches, params.FieldPalindromeThreshold,
		params.FieldSimpleThreshold, params.MinConsensusPred, params.AntiCP2,
		params.ContigLenFilt, params.FieldMinPepLen, params.FieldMaxPepLen,
	} {
		fmt.Fprintf(&b, "  %-38s %s\n", name, params.Label(name))
	}

	return b.String()
}

// reportSaved tells the user where the config was saved.
func reportSaved(w io.Writer, path string) {
	color.New(color.FgHiGreen).Fprintf(w, "Configuration saved to: %s\n", path) //nolint:errcheck
}
