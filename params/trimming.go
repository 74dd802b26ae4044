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
	DefaultSlidingWindow       = "4:20"
	DefaultMinLen              = "25"
	DefaultAdapterFile         = "resources/adapters.fa"
	DefaultSeedMismatches      = "2"
	DefaultPalindromeThreshold = "30"
	DefaultSimpleThreshold     = "10"

	slidingWindowPrefix = "SLIDINGWINDOW:"
	minLenPrefix        = "MINLEN:"
	illuminaClipPrefix  = "ILLUMINACLIP:"
	illuminaClipParts   = 4
)

// Trimming holds the trimmomatic options we let users edit. The trimmomatic
// parameter itself is a single string of the form:
//
//	SLIDINGWINDOW:<w> MINLEN:<n> ILLUMINACLIP:<file>:<a>:<b>:<c>
type Trimming struct {
	SlidingWindow       string
	MinLen              string
	AdapterFile         string
	SeedMismatches      string
	PalindromeThreshold string
	SimpleThreshold     string
}

// DefaultTrimming returns the values used for any option missing from a
// trimmomatic string.
func DefaultTrimming() Trimming {
	return Trimming{
		SlidingWindow:       DefaultSlidingWindow,
		MinLen:              DefaultMinLen,
		AdapterFile:         DefaultAdapterFile,
		SeedMismatches:      DefaultSeedMismatches,
		PalindromeThreshold: DefaultPalindromeThreshold,
		SimpleThreshold:     DefaultSimpleThreshold,
	}
}

// DecomposeTrimming parses a trimmomatic string. Unrecognised tokens are
// ignored, and missing options keep their default. The ILLUMINACLIP value is
// only used if it has exactly 4 colon separated parts.
func DecomposeTrimming(s string) Trimming {
	t := DefaultTrimming()

	for _, token := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(token, slidingWindowPrefix):
			t.SlidingWindow = strings.TrimPrefix(token, slidingWindowPrefix)
		case strings.HasPrefix(token, minLenPrefix):
			t.MinLen = strings.TrimPrefix(token, minLenPrefix)
		case strings.HasPrefix(token, illuminaClipPrefix):
			t.setIlluminaClip(strings.TrimPrefix(token, illuminaClipPrefix))
		}
	}

	return t
}

func (t *Trimming) setIlluminaClip(value string) {
	parts := strings.Split(value, ":")
	if len(parts) != illuminaClipParts {
		return
	}

	t.AdapterFile = parts[0]
	t.SeedMismatches = parts[1]
	t.PalindromeThreshold = parts[2]
	t.SimpleThreshold = parts[3]
}

// String renders the trimmomatic string, always including all three options
// in a fixed order.
func (t Trimming) String() string {
	return fmt.Sprintf("%s%s %s%s %s%s:%s:%s:%s",
		slidingWindowPrefix, t.SlidingWindow,
		minLenPrefix, t.MinLen,
		illuminaClipPrefix, t.AdapterFile, t.SeedMismatches,
		t.PalindromeThreshold, t.SimpleThreshold,
	)
}
