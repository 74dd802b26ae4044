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

// package cmd is the cobra file that enables subcommands and handles
// command-line args.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/metapepticon-config/config"
	"github.com/wtsi-hgi/metapepticon-config/detect"
	"github.com/wtsi-hgi/metapepticon-config/form"
)

// appLogger is used for logging events in our commands.
var appLogger = log15.New()

// rootDir is the directory containing data/, set from the environment or the
// --root flag.
var rootDir string

// appFs is the filesystem commands operate on.
var appFs = afero.NewOsFs()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "metapepticon-config",
	Short: "metapepticon-config creates the config file for MetaPepticon",
	Long: `metapepticon-config creates the config file for MetaPepticon.

Your input data must be placed in a data/ directory in one of these layouts:

  data/SG/*.fastq.gz       single-organism genomic reads
  data/ST/*.fastq.gz       single-organism transcriptomic reads
  data/MG/*.fastq.gz       metagenomic reads
  data/MT/*.fastq.gz       metatranscriptomic reads
  data/contigs/*.fasta     assembled contigs
  data/peptides/*.fasta    peptide sequences

Paired reads should be named <sample>_1.fastq.gz and <sample>_2.fastq.gz.

The input type is detected from the first of those layouts that has files in
it. Default parameters for that type can then be edited with the "edit"
sub-command (an interactive form), or set on the command line with the
"generate" sub-command. Either way, the result is written to
config/config.yaml.

The directory containing data/ defaults to the current directory, but can be
set with --root or the METAPEPTICON_CONFIG_ROOT environment variable.
`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		c, err := config.FromEnv()
		if err != nil {
			return err
		}

		if c.Debug {
			appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StderrHandler))
		}

		if !cmd.Flags().Changed("root") {
			rootDir = c.Root
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once to
// the rootCmd. Errors are logged once, by us; cobra only prints usage for
// mistakes in the command line itself.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		die("%s", err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StderrHandler))

	RootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", config.DefaultRoot,
		"directory containing data/")
}

// newForm creates a Form for the data in rootDir, exiting with an error if no
// data can be found.
func newForm() *form.Form {
	f, err := form.New(appFs, rootDir)
	if errors.Is(err, detect.ErrNoInputData) {
		dief("%s (looked in %s)", err, rootDir)
	}

	if err != nil {
		die("%s", err.Error())
	}

	debug("detected input type %s with %d samples", f.InputType(), len(f.Samples()))

	return f
}

// cliPrint outputs the message to STDOUT.
func cliPrint(msg string, a ...interface{}) {
	fmt.Fprintf(os.Stdout, msg, a...)
}

// debug is a convenience to log a message at the Debug level.
func debug(msg string, a ...interface{}) {
	appLogger.Debug(fmt.Sprintf(msg, a...))
}

// info is a convenience to log a message at the Info level.
func info(msg string, a ...interface{}) {
	appLogger.Info(fmt.Sprintf(msg, a...))
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}

// dief is like die, but with a leading description.
func dief(msg string, a ...interface{}) {
	die("fatal: "+msg, a...)
}
