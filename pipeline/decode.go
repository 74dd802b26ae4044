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

package pipeline

import (
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/params"
	"github.com/wtsi-hgi/metapepticon-config/samples"
	"github.com/wtsi-hgi/metapepticon-config/types"
	"gopkg.in/yaml.v3"
)

const flowSequenceStart = "["

// Read parses the config.yaml file at the given path.
func Read(fs afero.Fs, path string) (*Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Decode(f)
}

// Decode parses a config document written by Encode(). Sample values that are
// strings holding a bracketed r1/r2 list are also understood.
//
// Returns ErrInvalidDocument if there is no input_type, or a parameter value
// is not a scalar.
func Decode(r io.Reader) (*Document, error) {
	var root yaml.Node

	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	d := &Document{}
	m := root.Content[0]
	hasInputType := false

	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		if key == KeyInputType {
			hasInputType = true
		}

		if err := d.decodeKey(key, m.Content[i+1]); err != nil {
			return nil, err
		}
	}

	if !hasInputType {
		return nil, ErrInvalidDocument
	}

	return d, nil
}

func (d *Document) decodeKey(key string, value *yaml.Node) error {
	var err error

	switch key {
	case KeyInputType:
		d.InputType, err = types.StringToInputType(value.Value)
	case KeyParameters:
		d.Parameters, err = decodeParameters(value)
	case KeySamples:
		d.Samples, err = decodeSamples(value)
	}

	return err
}

func decodeParameters(n *yaml.Node) (params.Set, error) {
	if n.Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	s := make(params.Set, 0, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i+1].Kind != yaml.ScalarNode {
			return nil, ErrInvalidDocument
		}

		s.Set(n.Content[i].Value, n.Content[i+1].Value)
	}

	return s, nil
}

func decodeSamples(n *yaml.Node) (samples.Samples, error) {
	if n.Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	found := make(samples.Samples, 0, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		s, err := decodeSample(n.Content[i].Value, n.Content[i+1])
		if err != nil {
			return nil, err
		}

		found = append(found, s)
	}

	return found, nil
}

func decodeSample(name string, n *yaml.Node) (samples.Sample, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if strings.HasPrefix(n.Value, flowSequenceStart) {
			return decodeDescriptor(name, n.Value)
		}

		return samples.NewFile(name, n.Value), nil
	case yaml.SequenceNode:
		return decodeReads(name, n)
	default:
		return samples.Sample{}, ErrInvalidSample
	}
}

func decodeDescriptor(name, descriptor string) (samples.Sample, error) {
	var n yaml.Node

	if err := yaml.Unmarshal([]byte(descriptor), &n); err != nil {
		return samples.Sample{}, err
	}

	if len(n.Content) != 1 || n.Content[0].Kind != yaml.SequenceNode {
		return samples.Sample{}, ErrInvalidSample
	}

	return decodeReads(name, n.Content[0])
}

func decodeReads(name string, n *yaml.Node) (samples.Sample, error) {
	var r1, r2 string

	for _, entry := range n.Content {
		if entry.Kind != yaml.MappingNode {
			return samples.Sample{}, ErrInvalidSample
		}

		for i := 0; i+1 < len(entry.Content); i += 2 {
			switch entry.Content[i].Value {
			case KeyR1:
				r1 = entry.Content[i+1].Value
			case KeyR2:
				r2 = entry.Content[i+1].Value
			default:
				return samples.Sample{}, ErrInvalidSample
			}
		}
	}

	switch {
	case r1 == "":
		return samples.Sample{}, ErrInvalidSample
	case r2 == "":
		return samples.NewSingle(name, r1), nil
	default:
		return samples.NewPaired(name, r1, r2), nil
	}
}
