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

package params

import (
	"fmt"
	"strings"
)

const (
	contigLenPrefix = "-m "
	antiCP2Prefix   = "-d "

	minPepFlag = "-m"
	maxPepFlag = "-M"

	DefaultMinPepLen = "10"
	DefaultMaxPepLen = "50"
)

// prefixes are the fixed command line flags of parameters that users only
// edit the value of.
var prefixes = map[string]string{ //nolint:gochecknoglobals
	ContigLenFilt: contigLenPrefix,
	AntiCP2:       antiCP2Prefix,
}

// StripPrefix returns the editable part of the named parameter's value, ie.
// "-m 1000" for contig_len_filt becomes "1000". Values without the prefix,
// and parameters that don't have one, are returned unchanged.
func StripPrefix(name, value string) string {
	prefix, ok := prefixes[name]
	if !ok {
		return value
	}

	return strings.TrimPrefix(value, prefix)
}

// ApplyPrefix is the inverse of StripPrefix. A value that already starts with
// the prefix is returned unchanged.
func ApplyPrefix(name, value string) string {
	prefix, ok := prefixes[name]
	if !ok || strings.HasPrefix(value, prefix) {
		return value
	}

	return prefix + value
}

// PeptideRange is the minimum and maximum peptide length of the pep_len_filt
// parameter.
type PeptideRange struct {
	Min string
	Max string
}

// ParsePeptideRange takes the tokens following -m and -M in a pep_len_filt
// value, defaulting to 10 and 50 when either is missing.
func ParsePeptideRange(s string) PeptideRange {
	pr := PeptideRange{Min: DefaultMinPepLen, Max: DefaultMaxPepLen}
	tokens := strings.Fields(s)

	for i := 0; i < len(tokens)-1; i++ {
		switch tokens[i] {
		case minPepFlag:
			pr.Min = tokens[i+1]
		case maxPepFlag:
			pr.Max = tokens[i+1]
		}
	}

	return pr
}

// String renders the pep_len_filt value.
func (pr PeptideRange) String() string {
	return fmt.Sprintf("%s %s %s %s", minPepFlag, pr.Min, maxPepFlag, pr.Max)
}
