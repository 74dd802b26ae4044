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

// Package samples finds the samples in the data directory for a given input
// type.
package samples

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/detect"
	"github.com/wtsi-hgi/metapepticon-config/types"
)

const (
	FastqPair1Suffix = "_1.fastq.gz"
	FastqPair2Suffix = "_2.fastq.gz"
	FastaExtension   = ".fasta"
)

// Kind says whether a sample is sequencing reads or a single fasta file.
type Kind int

const (
	KindReads Kind = iota
	KindFile
)

// Sample is one sample discovered in the data directory. Paths are relative
// to the root directory discovery was done in, ie. they start with "data/".
//
// For KindReads, R1 is the forward fastq, and R2 the reverse one if Paired.
// For KindFile, R1 is the fasta file.
type Sample struct {
	Name   string
	Kind   Kind
	R1     string
	R2     string
	Paired bool
}

// NewPaired returns a reads sample with forward and reverse files.
func NewPaired(name, r1, r2 string) Sample {
	return Sample{Name: name, Kind: KindReads, R1: r1, R2: r2, Paired: true}
}

// NewSingle returns a reads sample with only a forward file.
func NewSingle(name, r1 string) Sample {
	return Sample{Name: name, Kind: KindReads, R1: r1}
}

// NewFile returns a contigs or peptides sample.
func NewFile(name, path string) Sample {
	return Sample{Name: name, Kind: KindFile, R1: path}
}

// Descriptor is how this sample is written in the pipeline config, eg.
// `[r1: "data/SG/a_1.fastq.gz", r2: "data/SG/a_2.fastq.gz"]`, `[r1:
// "data/SG/b_1.fastq.gz"]` or `"data/contigs/c.fasta"`.
func (s Sample) Descriptor() string {
	switch {
	case s.Kind == KindFile:
		return fmt.Sprintf(`"%s"`, s.R1)
	case s.Paired:
		return fmt.Sprintf(`[r1: "%s", r2: "%s"]`, s.R1, s.R2)
	default:
		return fmt.Sprintf(`[r1: "%s"]`, s.R1)
	}
}

// Paths returns the sample's files.
func (s Sample) Paths() []string {
	if s.Paired {
		return []string{s.R1, s.R2}
	}

	return []string{s.R1}
}

// Size returns the total size in bytes of the sample's files, which are
// relative to root.
func (s Sample) Size(fs afero.Fs, root string) (int64, error) {
	var total int64

	for _, path := range s.Paths() {
		info, err := fs.Stat(filepath.Join(root, path))
		if err != nil {
			return 0, err
		}

		total += info.Size()
	}

	return total, nil
}

// Samples is a slice of Sample, sorted by Name.
type Samples []Sample

// Names returns the sample names in order.
func (s Samples) Names() []string {
	names := make([]string, len(s))

	for i, sample := range s {
		names[i] = sample.Name
	}

	return names
}

// Get returns the sample with the given name.
func (s Samples) Get(name string) (Sample, bool) {
	for _, sample := range s {
		if sample.Name == name {
			return sample, true
		}
	}

	return Sample{}, false
}

// Discover finds the samples for the given input type in the data directory
// under root.
//
// Read types are found via their *_1.fastq.gz files, and are paired if there
// is a corresponding *_2.fastq.gz file; a lone _2 file is not a sample.
// Contigs and peptides are each *.fasta file.
//
// Samples are sorted by name, not returned in directory order.
func Discover(fs afero.Fs, root string, t types.InputType) (Samples, error) {
	dir := filepath.Join(detect.DataDir, t.Dir())

	var (
		found Samples
		err   error
	)

	rootFs := detect.RootFs(fs, root)

	if t.IsReads() {
		found, err = discoverReads(rootFs, dir)
	} else {
		found, err = discoverFiles(rootFs, dir)
	}

	if err != nil {
		return nil, err
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, nil
}

func discoverReads(fs afero.Fs, dir string) (Samples, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*"+FastqPair1Suffix))
	if err != nil {
		return nil, err
	}

	found := make(Samples, 0, len(matches))

	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), FastqPair1Suffix)
		r1 := filepath.Join(dir, name+FastqPair1Suffix)
		r2 := filepath.Join(dir, name+FastqPair2Suffix)

		paired, err := fileExists(fs, r2)
		if err != nil {
			return nil, err
		}

		if paired {
			found = append(found, NewPaired(name, r1, r2))
		} else {
			found = append(found, NewSingle(name, r1))
		}
	}

	return found, nil
}

func discoverFiles(fs afero.Fs, dir string) (Samples, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*"+FastaExtension))
	if err != nil {
		return nil, err
	}

	found := make(Samples, 0, len(matches))

	for _, match := range matches {
		base := filepath.Base(match)
		found = append(found, NewFile(strings.TrimSuffix(base, FastaExtension), filepath.Join(dir, base)))
	}

	return found, nil
}

func fileExists(fs afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, err
	}

	if !exists {
		return false, nil
	}

	isDir, err := afero.IsDir(fs, path)

	return !isDir, err
}
