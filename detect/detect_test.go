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

package detect

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/types"
)

const filePerm = 0644

func TestDetect(t *testing.T) {
	Convey("Probes() has the fixed detection table", t, func() {
		So(Probes(), ShouldResemble, []Probe{
			{types.InputTypeSG, "data/SG/*.fastq.gz"},
			{types.InputTypeST, "data/ST/*.fastq.gz"},
			{types.InputTypeMG, "data/MG/*.fastq.gz"},
			{types.InputTypeMT, "data/MT/*.fastq.gz"},
			{types.InputTypeCO, "data/contigs/*.fasta"},
			{types.InputTypePE, "data/peptides/*.fasta"},
		})
	})

	Convey("Given an empty filesystem", t, func() {
		fs := afero.NewMemMapFs()
		root := "/work"

		Convey("Detect fails with ErrNoInputData", func() {
			it, err := Detect(fs, root)
			So(err, ShouldEqual, ErrNoInputData)
			So(it, ShouldEqual, types.InputType(""))

			present, err := Present(fs, root)
			So(err, ShouldBeNil)
			So(present, ShouldBeEmpty)
		})

		Convey("Files that don't match the patterns are ignored", func() {
			writeFile(fs, root, "data/SG/a_1.fastq")
			writeFile(fs, root, "data/contigs/x.fa")
			writeFile(fs, root, "data/other/y.fasta")

			_, err := Detect(fs, root)
			So(err, ShouldEqual, ErrNoInputData)
		})

		Convey("Each type is detected from its own directory", func() {
			for _, c := range []struct {
				path     string
				expected types.InputType
			}{
				{"data/SG/a_1.fastq.gz", types.InputTypeSG},
				{"data/ST/a_1.fastq.gz", types.InputTypeST},
				{"data/MG/a_1.fastq.gz", types.InputTypeMG},
				{"data/MT/a.fastq.gz", types.InputTypeMT},
				{"data/contigs/x.fasta", types.InputTypeCO},
				{"data/peptides/y.fasta", types.InputTypePE},
			} {
				fs := afero.NewMemMapFs()
				writeFile(fs, root, c.path)

				it, err := Detect(fs, root)
				So(err, ShouldBeNil)
				So(it, ShouldEqual, c.expected)
			}
		})

		Convey("A root containing glob characters is used literally", func() {
			for _, odd := range []string{"/work/run[1]", "/work/a*b", "/work/what?"} {
				writeFile(fs, odd, "data/ST/s_1.fastq.gz")

				it, err := Detect(fs, odd)
				So(err, ShouldBeNil)
				So(it, ShouldEqual, types.InputTypeST)
			}

			writeFile(fs, "/work/axb", "data/SG/s_1.fastq.gz")

			present, err := Present(fs, "/work/a*b")
			So(err, ShouldBeNil)
			So(present, ShouldResemble, []types.InputType{types.InputTypeST})
		})

		Convey("A relative root of . uses the filesystem as is", func() {
			rel := afero.NewBasePathFs(fs, root)
			writeFile(fs, root, "data/MG/m_1.fastq.gz")

			So(RootFs(rel, "."), ShouldEqual, rel)

			it, err := Detect(rel, ".")
			So(err, ShouldBeNil)
			So(it, ShouldEqual, types.InputTypeMG)
		})

		Convey("Contigs take precedence over peptides", func() {
			writeFile(fs, root, "data/contigs/x.fasta")
			writeFile(fs, root, "data/peptides/y.fasta")

			it, err := Detect(fs, root)
			So(err, ShouldBeNil)
			So(it, ShouldEqual, types.InputTypeCO)

			present, err := Present(fs, root)
			So(err, ShouldBeNil)
			So(present, ShouldResemble, []types.InputType{types.InputTypeCO, types.InputTypePE})

			Convey("and reads take precedence over both", func() {
				writeFile(fs, root, "data/MT/r_1.fastq.gz")

				it, err := Detect(fs, root)
				So(err, ShouldBeNil)
				So(it, ShouldEqual, types.InputTypeMT)
			})
		})
	})
}

func writeFile(fs afero.Fs, root, rel string) {
	err := afero.WriteFile(fs, filepath.Join(root, rel), []byte(rel), filePerm)
	So(err, ShouldBeNil)
}
