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

// Package form is the model behind the config editor: the fields a user can
// edit, the read-only samples they can see, and saving the result.
package form

import (
	"github.com/spf13/afero"
	"github.com/wtsi-hgi/metapepticon-config/detect"
	"github.com/wtsi-hgi/metapepticon-config/params"
	"github.com/wtsi-hgi/metapepticon-config/pipeline"
	"github.com/wtsi-hgi/metapepticon-config/samples"
	"github.com/wtsi-hgi/metapepticon-config/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrUnknownField = Error("unknown field")

// Field is an editable value in the form.
type Field struct {
	Name  string
	Label string
	Group string
	Value string
}

// SampleRow is a read-only sample entry in the form.
type SampleRow struct {
	Name  string
	Value string
}

// Form holds the state of one editing session.
type Form struct {
	fs        afero.Fs
	root      string
	inputType types.InputType
	fields    params.Set
	samples   samples.Samples
}

// New detects the input type of the data under root, and returns a Form
// populated with that type's default parameters and the samples found.
//
// Returns detect.ErrNoInputData if there is no data.
func New(fs afero.Fs, root string) (*Form, error) {
	t, err := detect.Detect(fs, root)
	if err != nil {
		return nil, err
	}

	found, err := samples.Discover(fs, root, t)
	if err != nil {
		return nil, err
	}

	return &Form{
		fs:        fs,
		root:      root,
		inputType: t,
		fields:    params.Decompose(params.Defaults(t)),
		samples:   found,
	}, nil
}

// InputType returns the detected input type.
func (f *Form) InputType() types.InputType {
	return f.inputType
}

// Root returns the directory the form was created for.
func (f *Form) Root() string {
	return f.root
}

// Fields returns the editable fields in display order.
func (f *Form) Fields() []Field {
	fields := make([]Field, len(f.fields))

	for i, p := range f.fields {
		fields[i] = Field{
			Name:  p.Name,
			Label: params.Label(p.Name),
			Group: params.Group(p.Name),
			Value: p.Value,
		}
	}

	return fields
}

// Get returns the current value of the named field.
func (f *Form) Get(name string) (string, error) {
	v, ok := f.fields.Get(name)
	if !ok {
		return "", ErrUnknownField
	}

	return v, nil
}

// Set changes the value of the named field. Values are not validated.
func (f *Form) Set(name, value string) error {
	if !f.fields.Has(name) {
		return ErrUnknownField
	}

	f.fields.Set(name, value)

	return nil
}

// SampleRows returns the samples as they will be written.
func (f *Form) SampleRows() []SampleRow {
	rows := make([]SampleRow, len(f.samples))

	for i, s := range f.samples {
		rows[i] = SampleRow{Name: s.Name, Value: s.Descriptor()}
	}

	return rows
}

// Samples returns the discovered samples.
func (f *Form) Samples() samples.Samples {
	return f.samples
}

// Document returns the config document for the current field values.
func (f *Form) Document() *pipeline.Document {
	return pipeline.New(f.inputType, params.Recompose(f.fields), f.samples)
}

// Save writes the current field values to config/config.yaml under the root,
// overwriting any existing file, and returns the path written to.
func (f *Form) Save() (string, error) {
	return f.Document().Write(f.fs, f.root)
}
