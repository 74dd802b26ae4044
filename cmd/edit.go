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
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/metapepticon-config/tui"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively edit and save the config.",
	Long: `Interactively edit and save the config.

Shows a form with the default parameters for the detected input type, and the
samples that were found (which can't be edited). Move between fields with tab
and shift+tab (or the arrow keys), then press ctrl+s, or enter on the last
field, to save config/config.yaml. Any existing config/config.yaml is
overwritten. Press esc to quit without saving.
`,
	Run: func(_ *cobra.Command, _ []string) {
		f := newForm()

		final, err := tea.NewProgram(tui.New(f, appFs)).Run()
		if err != nil {
			die("%s", err.Error())
		}

		m, ok := final.(tui.Model)
		if !ok || m.Saved() == "" {
			warn("quit without saving")

			return
		}

		reportSaved(os.Stdout, m.Saved())
	},
}

func init() {
	RootCmd.AddCommand(editCmd)
}
