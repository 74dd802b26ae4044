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

// Package params holds the MetaPepticon pipeline parameters: their defaults
// per input type, and the conversion of compound parameter strings to and
// from the individual fields a user edits.
package params

// Param is a single named parameter value.
type Param struct {
	Name  string
	Value string
}

// Set is an ordered collection of parameters. Order is preserved because it
// is the order parameters are written out in.
type Set []Param

// Get returns the value of the named parameter, and whether it was present.
func (s Set) Get(name string) (string, bool) {
	for _, p := range s {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// Has returns true if the named parameter is present.
func (s Set) Has(name string) bool {
	_, ok := s.Get(name)

	return ok
}

// Set replaces the value of the named parameter in place, or appends it if
// not already present.
func (s *Set) Set(name, value string) {
	for i, p := range *s {
		if p.Name == name {
			(*s)[i].Value = value

			return
		}
	}

	*s = append(*s, Param{Name: name, Value: value})
}

// Delete removes the named parameter, returning its value and whether it was
// present.
func (s *Set) Delete(name string) (string, bool) {
	for i, p := range *s {
		if p.Name == name {
			*s = append((*s)[:i], (*s)[i+1:]...)

			return p.Value, true
		}
	}

	return "", false
}

// Names returns the parameter names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))

	for i, p := range s {
		names[i] = p.Name
	}

	return names
}

// Clone returns a copy of the Set that can be modified independently.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}

	c := make(Set, len(s))
	copy(c, s)

	return c
}
