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

package config

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const filePerm = 0644

func TestConfig(t *testing.T) {
	Convey("Given a full set of env vars, you can make a config", t, func() {
		t.Setenv(EnvVarRoot, "/path/to/run")
		t.Setenv(EnvVarDebug, "true")

		config, err := FromEnv()
		So(err, ShouldBeNil)
		So(config, ShouldNotBeNil)
		So(config.Root, ShouldEqual, "/path/to/run")
		So(config.Debug, ShouldBeTrue)

		Convey("Without env vars you get defaults", func() {
			os.Unsetenv(EnvVarRoot)
			os.Unsetenv(EnvVarDebug)

			config, err := FromEnv(t.TempDir())
			So(err, ShouldBeNil)
			So(config.Root, ShouldEqual, DefaultRoot)
			So(config.Debug, ShouldBeFalse)
		})

		Convey("An invalid debug value is an error", func() {
			os.Setenv(EnvVarDebug, "sometimes")

			config, err := FromEnv()
			So(err, ShouldEqual, ErrInvalidDebug)
			So(config, ShouldBeNil)
		})

		Convey("You can load values from an .env file", func() {
			os.Unsetenv(EnvVarRoot)

			dir := t.TempDir()

			err := os.WriteFile(dir+"/.env",
				[]byte(EnvVarRoot+"=/from/file\n"+EnvVarDebug+"=false"), filePerm)
			So(err, ShouldBeNil)

			config, err := FromEnv(dir)
			So(err, ShouldBeNil)
			So(config.Root, ShouldEqual, "/from/file")
			So(config.Debug, ShouldBeTrue)
		})
	})
}
