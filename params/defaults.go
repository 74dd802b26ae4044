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

import "github.com/wtsi-hgi/metapepticon-config/types"

const (
	Trimmomatic      = "trimmomatic"
	MinConsensusPred = "min_consensus_pred"
	AntiCP2          = "anticp2"
	ContigLenFilt    = "contig_len_filt"
	PepLenFilt       = "pep_len_filt"

	DefaultTrimmomatic      = "SLIDINGWINDOW:4:20 MINLEN:25 ILLUMINACLIP:resources/adapters.fa:2:30:10"
	DefaultMinConsensusPred = "1"
	DefaultAntiCP2          = "-d 2"
	DefaultContigLenFilt    = "-m 1000"
	DefaultPepLenFilt       = "-m 10 -M 50"
)

// Defaults returns the default parameters for the given input type. Read
// types get adapter trimming; reads and contigs get a contig length filter;
// every type gets the prediction and peptide length parameters. The returned
// Set is a new copy each time.
func Defaults(t types.InputType) Set {
	var s Set

	if t.IsReads() {
		s = append(s, Param{Trimmomatic, DefaultTrimmomatic})
	}

	s = append(s,
		Param{MinConsensusPred, DefaultMinConsensusPred},
		Param{AntiCP2, DefaultAntiCP2},
	)

	if t.IsReads() || t == types.InputTypeCO {
		s = append(s, Param{ContigLenFilt, DefaultContigLenFilt})
	}

	return append(s, Param{PepLenFilt, DefaultPepLenFilt})
}
