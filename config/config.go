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
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvVarRoot  = "METAPEPTICON_CONFIG_ROOT"
	EnvVarDebug = "METAPEPTICON_CONFIG_DEBUG"

	DefaultRoot = "."
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrInvalidDebug = Error("invalid value for " + EnvVarDebug)

// Config holds the settings of the config generator itself.
type Config struct {
	// Root is the directory containing data/, and where config/ will be
	// written.
	Root string

	// Debug turns on debug logging.
	Debug bool
}

// FromEnv returns a new Config with properties populated from environment
// variables METAPEPTICON_CONFIG_ROOT and METAPEPTICON_CONFIG_DEBUG. Unset
// variables get defaults: the current directory and false respectively.
//
// If these environment variables are defined in a file called .env (and not
// previously set in an environment variable), they will be automatically
// loaded.
//
// Optionally supply a directory to look for the .env file in.
func FromEnv(dir ...string) (*Config, error) {
	var parentDir string
	if len(dir) == 1 {
		parentDir = dir[0] + string(os.PathSeparator)
	}

	godotenv.Load(parentDir + ".env") //nolint:errcheck

	c := &Config{
		Root: os.Getenv(EnvVarRoot),
	}

	if c.Root == "" {
		c.Root = DefaultRoot
	}

	if debug := os.Getenv(EnvVarDebug); debug != "" {
		b, err := strconv.ParseBool(debug)
		if err != nil {
			return nil, ErrInvalidDebug
		}

		c.Debug = b
	}

	return c, nil
}
