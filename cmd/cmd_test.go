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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/config"
	"github.com/wtsi-hgi/metapepticon-config/form"
	"github.com/wtsi-hgi/metapepticon-config/params"
	"github.com/wtsi-hgi/metapepticon-config/pipeline"
)

const (
	filePerm = 0644
	root     = "/work"
)

func TestCmd(t *testing.T) {
	Convey("parseSet splits name=value", t, func() {
		name, value, err := parseSet("anticp2=3")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "anticp2")
		So(value, ShouldEqual, "3")

		name, value, err = parseSet(" min_pep_len =")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "min_pep_len")
		So(value, ShouldEqual, "")

		_, value, err = parseSet("trimmomatic_slidingwindow=4:20=x")
		So(err, ShouldBeNil)
		So(value, ShouldEqual, "4:20=x")

		for _, bad := range []string{"anticp2", "=3", ""} {
			_, _, err = parseSet(bad)
			So(err, ShouldEqual, ErrInvalidSet)
		}
	})

	Convey("Given read data", t, func() {
		fs := afero.NewMemMapFs()

		for _, rel := range []string{"data/MG/m1_1.fastq.gz", "data/MG/m1_2.fastq.gz"} {
			err := afero.WriteFile(fs, filepath.Join(root, rel), []byte("@r\nACGT\n+\nIIII\n"), filePerm)
			So(err, ShouldBeNil)
		}

		f, err := form.New(fs, root)
		So(err, ShouldBeNil)

		Convey("applySets changes fields that are then saved", func() {
			err = applySets(f, []string{"contig_len_filt=750", "trimmomatic_minlen=40", "anticp2=-d 1"})
			So(err, ShouldBeNil)

			path, err := f.Save()
			So(err, ShouldBeNil)

			d, err := pipeline.Read(fs, path)
			So(err, ShouldBeNil)
			So(d.Parameters, ShouldResemble, params.Set{
				{Name: params.Trimmomatic, Value: "SLIDINGWINDOW:4:20 MINLEN:40 ILLUMINACLIP:resources/adapters.fa:2:30:10"},
				{Name: params.MinConsensusPred, Value: "1"},
				{Name: params.AntiCP2, Value: "-d 1"},
				{Name: params.ContigLenFilt, Value: "-m 750"},
				{Name: params.PepLenFilt, Value: "-m 10 -M 50"},
			})
		})

		Convey("applySets rejects unknown fields and bad syntax", func() {
			err = applySets(f, []string{"pep_len_filt=-m 1 -M 2"})
			So(errors.Is(err, form.ErrUnknownField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "pep_len_filt")

			err = applySets(f, []string{"anticp2"})
			So(err, ShouldEqual, ErrInvalidSet)
		})

		Convey("printSamples lists samples with their sizes", func() {
			var buf bytes.Buffer

			err = printSamples(&buf, fs, root, f.Samples())
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual,
				"m1\t30 B\t[r1: \"data/MG/m1_1.fastq.gz\", r2: \"data/MG/m1_2.fastq.gz\"]\n")
		})
	})

	Convey("reportSaved says where the config went", t, func() {
		color.NoColor = true

		var buf bytes.Buffer

		reportSaved(&buf, "config/config.yaml")
		So(buf.String(), ShouldEqual, "Configuration saved to: config/config.yaml\n")
	})

	Convey("Config errors are reported once, without usage", t, func() {
		So(RootCmd.SilenceErrors, ShouldBeTrue)
		So(RootCmd.SilenceUsage, ShouldBeFalse)

		t.Setenv(config.EnvVarDebug, "sometimes")
		wd, errWd := os.Getwd()
		So(errWd, ShouldBeNil)
		So(os.Chdir(t.TempDir()), ShouldBeNil)
		t.Cleanup(func() { os.Chdir(wd) }) //nolint:errcheck

		err := RootCmd.PersistentPreRunE(detectCmd, nil)
		So(err, ShouldEqual, config.ErrInvalidDebug)
		So(detectCmd.SilenceUsage, ShouldBeTrue)

		detectCmd.SilenceUsage = false
	})

	Convey("The generate help lists every field", t, func() {
		help := fieldNamesHelp()
		So(help, ShouldContainSubstring, params.FieldPalindromeThreshold)
		So(help, ShouldContainSubstring, "Maximum Peptide Length (aa)")
	})
}
