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

// Package detect works out what kind of input data a MetaPepticon run has, by
// looking for files in the fixed data/ directory layout.
package detect

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoInputData = Error("no data found in data/ directory")

	DataDir = "data"

	FastqGlob = "*.fastq.gz"
	FastaGlob = "*.fasta"
)

// Probe is an input type and the glob pattern, relative to the root
// directory, whose matches indicate that type is present.
type Probe struct {
	Type    types.InputType
	Pattern string
}

// Probes returns the probes in the order Detect() tries them.
func Probes() []Probe {
	all := types.InputTypes()
	probes := make([]Probe, len(all))

	for i, t := range all {
		glob := FastqGlob
		if !t.IsReads() {
			glob = FastaGlob
		}

		probes[i] = Probe{
			Type:    t,
			Pattern: filepath.Join(DataDir, t.Dir(), glob),
		}
	}

	return probes
}

// Detect returns the first input type (in Probes() order) for which at least
// one file exists under root. If data for more than one type is present, only
// the first is returned; use Present() to find out about the others.
//
// Returns ErrNoInputData if nothing matches.
func Detect(fs afero.Fs, root string) (types.InputType, error) {
	for _, p := range Probes() {
		found, err := p.matches(fs, root)
		if err != nil {
			return "", err
		}

		if found {
			return p.Type, nil
		}
	}

	return "", ErrNoInputData
}

func (p Probe) matches(fs afero.Fs, root string) (bool, error) {
	matches, err := afero.Glob(RootFs(fs, root), p.Pattern)
	if err != nil {
		return false, err
	}

	return len(matches) > 0, nil
}

// RootFs returns fs restricted to root, so that glob patterns relative to the
// root never have root's own characters interpreted as pattern syntax.
func RootFs(fs afero.Fs, root string) afero.Fs {
	if filepath.Clean(root) == "." {
		return fs
	}

	return afero.NewBasePathFs(fs, root)
}

// Present returns every input type that has data under root, in Probes()
// order.
func Present(fs afero.Fs, root string) ([]types.InputType, error) {
	var present []types.InputType

	for _, p := range Probes() {
		found, err := p.matches(fs, root)
		if err != nil {
			return nil, err
		}

		if found {
			present = append(present, p.Type)
		}
	}

	return present, nil
}
