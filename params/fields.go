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

import "strings"

// Names of the editable fields that compound parameters are split in to.
const (
	FieldSlidingWindow       = "trimmomatic_slidingwindow"
	FieldMinLen              = "trimmomatic_minlen"
	FieldAdapterFile         = "trimmomatic_illuminaclip_file"
	FieldSeedMismatches      = "trimmomatic_seed_mismatches"
	FieldPalindromeThreshold = "trimmomatic_palindrome_clip_threshold"
	FieldSimpleThreshold     = "trimmomatic_simple_clip_threshold"
	FieldMinPepLen           = "min_pep_len"
	FieldMaxPepLen           = "max_pep_len"

	GroupTrimming   = "Sequence Filtering Options"
	GroupParameters = "Parameters"

	trimmingFieldPrefix = Trimmomatic + "_"
)

var labels = map[string]string{ //nolint:gochecknoglobals
	FieldSlidingWindow:       "Sliding window (windowSize:quality)",
	FieldMinLen:              "Minimum length",
	FieldAdapterFile:         "Adapter file (ILLUMINACLIP)",
	FieldSeedMismatches:      "Seed mismatches",
	FieldPalindromeThreshold: "Palindrome clip threshold",
	FieldSimpleThreshold:     "Simple clip threshold",
	ContigLenFilt:            "Minimum Contig Length (bp)",
	FieldMinPepLen:           "Minimum Peptide Length (aa)",
	FieldMaxPepLen:           "Maximum Peptide Length (aa)",
	AntiCP2:                  "AntiCP2 Model",
	MinConsensusPred:         "Minimum Number of Tools Confirming Prediction",
}

// Label returns a friendly label for the given field name, or the name itself
// if it doesn't have one.
func Label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}

	return name
}

// Group returns the name of the form section the given field belongs in.
func Group(name string) string {
	if IsTrimmingField(name) {
		return GroupTrimming
	}

	return GroupParameters
}

// IsTrimmingField returns true if the field is one of the trimmomatic
// sub-fields.
func IsTrimmingField(name string) bool {
	return strings.HasPrefix(name, trimmingFieldPrefix)
}

// Decompose converts parameters in to the fields a user edits, in display
// order: the trimmomatic sub-fields (if there is a trimmomatic parameter),
// then the remaining parameters with any fixed prefix stripped, then the
// minimum and maximum peptide lengths.
func Decompose(s Set) Set {
	fields := make(Set, 0, len(s)+len(labels))

	if v, ok := s.Get(Trimmomatic); ok {
		t := DecomposeTrimming(v)
		fields = append(fields,
			Param{FieldSlidingWindow, t.SlidingWindow},
			Param{FieldMinLen, t.MinLen},
			Param{FieldAdapterFile, t.AdapterFile},
			Param{FieldSeedMismatches, t.SeedMismatches},
			Param{FieldPalindromeThreshold, t.PalindromeThreshold},
			Param{FieldSimpleThreshold, t.SimpleThreshold},
		)
	}

	for _, p := range s {
		if p.Name == Trimmomatic || p.Name == PepLenFilt {
			continue
		}

		fields = append(fields, Param{p.Name, StripPrefix(p.Name, p.Value)})
	}

	pepLen, ok := s.Get(PepLenFilt)
	if !ok {
		pepLen = DefaultPepLenFilt
	}

	pr := ParsePeptideRange(pepLen)

	return append(fields,
		Param{FieldMinPepLen, pr.Min},
		Param{FieldMaxPepLen, pr.Max},
	)
}

// Recompose is the inverse of Decompose. It converts edited fields back in to
// parameters: trimmomatic first (if its fields are present), then the other
// fields in order with prefixes re-applied, and pep_len_filt last.
//
// Field values are not validated; an empty field results in an empty value
// or an empty part of a compound value.
func Recompose(fields Set) Set {
	s := make(Set, 0, len(fields))

	if fields.Has(FieldSlidingWindow) {
		s = append(s, Param{Trimmomatic, trimmingFromFields(fields).String()})
	}

	for _, f := range fields {
		if IsTrimmingField(f.Name) {
			continue
		}

		s.Set(f.Name, ApplyPrefix(f.Name, f.Value))
	}

	pr := PeptideRange{Min: DefaultMinPepLen, Max: DefaultMaxPepLen}

	if v, ok := s.Delete(FieldMinPepLen); ok {
		pr.Min = v
	}

	if v, ok := s.Delete(FieldMaxPepLen); ok {
		pr.Max = v
	}

	s.Delete(PepLenFilt)

	return append(s, Param{PepLenFilt, pr.String()})
}

func trimmingFromFields(fields Set) Trimming {
	t := DefaultTrimming()

	for _, f := range []struct {
		name string
		dest *string
	}{
		{FieldSlidingWindow, &t.SlidingWindow},
		{FieldMinLen, &t.MinLen},
		{FieldAdapterFile, &t.AdapterFile},
		{FieldSeedMismatches, &t.SeedMismatches},
		{FieldPalindromeThreshold, &t.PalindromeThreshold},
		{FieldSimpleThreshold, &t.SimpleThreshold},
	} {
		if v, ok := fields.Get(f.name); ok {
			*f.dest = v
		}
	}

	return t
}
