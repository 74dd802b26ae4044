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

package types

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInputType(t *testing.T) {
	Convey("You can convert strings to InputTypes", t, func() {
		for _, s := range []string{"SG", "ST", "MG", "MT", "CO", "PE"} {
			it, err := StringToInputType(s)
			So(err, ShouldBeNil)
			So(string(it), ShouldEqual, s)
		}

		it, err := StringToInputType("sg")
		So(err, ShouldEqual, ErrInvalidInputType)
		So(it, ShouldEqual, InputType(""))

		_, err = StringToInputType("")
		So(err, ShouldEqual, ErrInvalidInputType)
	})

	Convey("InputTypes() are in detection order", t, func() {
		So(InputTypes(), ShouldResemble, []InputType{
			InputTypeSG, InputTypeST, InputTypeMG, InputTypeMT, InputTypeCO, InputTypePE,
		})
	})

	Convey("Only the read types are IsReads()", t, func() {
		So(InputTypeSG.IsReads(), ShouldBeTrue)
		So(InputTypeST.IsReads(), ShouldBeTrue)
		So(InputTypeMG.IsReads(), ShouldBeTrue)
		So(InputTypeMT.IsReads(), ShouldBeTrue)
		So(InputTypeCO.IsReads(), ShouldBeFalse)
		So(InputTypePE.IsReads(), ShouldBeFalse)
	})

	Convey("Dir() maps types to their data sub-directory", t, func() {
		So(InputTypeSG.Dir(), ShouldEqual, "SG")
		So(InputTypeMT.Dir(), ShouldEqual, "MT")
		So(InputTypeCO.Dir(), ShouldEqual, "contigs")
		So(InputTypePE.Dir(), ShouldEqual, "peptides")
	})

	Convey("Description() gives a readable name", t, func() {
		So(InputTypeCO.Description(), ShouldEqual, "assembled contigs")
		So(InputType("XX").Description(), ShouldEqual, "unknown")
	})
}
