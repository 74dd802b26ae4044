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

// Package pipeline reads and writes the config.yaml file that the MetaPepticon
// workflow is run with.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/params"
	"github.com/wtsi-hgi/metapepticon-config/samples"
	"github.com/wtsi-hgi/metapepticon-config/types"
	"gopkg.in/yaml.v3"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidDocument = Error("invalid config document")
	ErrInvalidSample   = Error("invalid sample entry")

	ConfigDir  = "config"
	ConfigFile = "config.yaml"

	KeyInputType  = "input_type"
	KeyParameters = "parameters"
	KeySamples    = "Samples"
	KeyR1         = "r1"
	KeyR2         = "r2"

	strTag = "!!str"
	indent = 2

	dirPerm  = 0755
	filePerm = 0644
)

// Document is the content of a config.yaml file.
type Document struct {
	InputType  types.InputType
	Parameters params.Set
	Samples    samples.Samples
}

// New returns a Document for the given input type, final (recomposed)
// parameters and discovered samples.
func New(t types.InputType, parameters params.Set, found samples.Samples) *Document {
	return &Document{
		InputType:  t,
		Parameters: parameters,
		Samples:    found,
	}
}

// Path returns the path config.yaml is written to under root.
func Path(root string) string {
	return filepath.Join(root, ConfigDir, ConfigFile)
}

// Encode writes the document as YAML. Keys are in the order input_type,
// parameters, Samples. The input_type and all parameter values are double
// quoted, as are the sample names. Each sample's value is its Descriptor(),
// written verbatim.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)

	if err := enc.Encode(d.node()); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	return d.encodeSamples(w)
}

func (d *Document) node() *yaml.Node {
	parameters := &yaml.Node{Kind: yaml.MappingNode}

	for _, p := range d.Parameters {
		parameters.Content = append(parameters.Content, plainScalar(p.Name), quotedScalar(p.Value))
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			plainScalar(KeyInputType), quotedScalar(string(d.InputType)),
			plainScalar(KeyParameters), parameters,
		},
	}
}

// encodeSamples writes the Samples mapping by hand, since yaml.v3 can't emit
// a flow sequence of bare r1/r2 pairs.
func (d *Document) encodeSamples(w io.Writer) error {
	if len(d.Samples) == 0 {
		_, err := fmt.Fprintf(w, "%s: {}\n", KeySamples)

		return err
	}

	if _, err := fmt.Fprintf(w, "%s:\n", KeySamples); err != nil {
		return err
	}

	pad := strings.Repeat(" ", indent)

	for _, s := range d.Samples {
		key, err := yaml.Marshal(quotedScalar(s.Name))
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(w, "%s%s: %s\n", pad, bytes.TrimSpace(key), s.Descriptor()); err != nil {
			return err
		}
	}

	return nil
}

func plainScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: value}
}

func quotedScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Style: yaml.DoubleQuotedStyle, Value: value}
}

// Write writes the document to config/config.yaml under root, creating the
// config directory if necessary. An existing file is overwritten. Returns the
// path written to.
func (d *Document) Write(fs afero.Fs, root string) (string, error) {
	var buf bytes.Buffer

	if err := d.Encode(&buf); err != nil {
		return "", err
	}

	path := Path(root)

	if err := fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", err
	}

	return path, afero.WriteFile(fs, path, buf.Bytes(), filePerm)
}
