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

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/metapepticon-config/samples"
)

// samplesCmd represents the samples command.
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the detected samples.",
	Long: `List the detected samples.

Prints each sample found for the detected input type, the size of its files,
and how it will be written in config/config.yaml. Samples are listed in name
order.
`,
	Run: func(_ *cobra.Command, _ []string) {
		f := newForm()

		cliPrint("input_type: %s\n", f.InputType())

		if err := printSamples(os.Stdout, appFs, f.Root(), f.Samples()); err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(samplesCmd)
}

// printSamples writes a line per sample with its name, size and descriptor.
func printSamples(w io.Writer, fs afero.Fs, root string, found samples.Samples) error {
	for _, s := range found {
		size, err := s.Size(fs, root)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, humanize.Bytes(uint64(size)), s.Descriptor()); err != nil { //nolint:gosec
			return err
		}
	}

	return nil
}
