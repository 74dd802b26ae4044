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
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/metapepticon-config/detect"
)

// detectCmd represents the detect command.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected input type.",
	Long: `Show the detected input type.

Prints the input type that the data/ directory will be treated as. If data for
more than one type is present, only the first (in the order listed in the help
for the main command) is used, and a warning lists the others.
`,
	Run: func(_ *cobra.Command, _ []string) {
		present, err := detect.Present(appFs, rootDir)
		if err != nil {
			die("%s", err.Error())
		}

		if len(present) == 0 {
			dief("%s (looked in %s)", detect.ErrNoInputData, rootDir)
		}

		if len(present) > 1 {
			warn("data found for multiple input types %v; only %s will be used", present, present[0])
		}

		cliPrint("%s (%s)\n", present[0], present[0].Description())
	},
}

func init() {
	RootCmd.AddCommand(detectCmd)
}
