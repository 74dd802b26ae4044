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

package types

type Error string

func (e Error) Error() string { return string(e) }

const ErrInvalidInputType = Error("invalid input type")

// InputType is the category of input data found in the data directory, which
// determines the default parameters and how samples are discovered.
type InputType string

const (
	InputTypeSG InputType = "SG"
	InputTypeST InputType = "ST"
	InputTypeMG InputType = "MG"
	InputTypeMT InputType = "MT"
	InputTypeCO InputType = "CO"
	InputTypePE InputType = "PE"

	contigsDir  = "contigs"
	peptidesDir = "peptides"
)

// InputTypes returns all the InputTypes in detection order.
func InputTypes() []InputType {
	return []InputType{
		InputTypeSG, InputTypeST, InputTypeMG, InputTypeMT,
		InputTypeCO, InputTypePE,
	}
}

// StringToInputType converts a string to an InputType.
func StringToInputType(s string) (InputType, error) {
	switch InputType(s) {
	case InputTypeSG, InputTypeST, InputTypeMG, InputTypeMT, InputTypeCO, InputTypePE:
		return InputType(s), nil
	default:
		return "", ErrInvalidInputType
	}
}

// IsReads returns true for the sequencing read types, whose samples are
// gzipped fastq files that may be paired.
func (t InputType) IsReads() bool {
	switch t {
	case InputTypeSG, InputTypeST, InputTypeMG, InputTypeMT:
		return true
	default:
		return false
	}
}

// Dir returns the name of the sub-directory of data/ that holds files of this
// type.
func (t InputType) Dir() string {
	switch t {
	case InputTypeCO:
		return contigsDir
	case InputTypePE:
		return peptidesDir
	default:
		return string(t)
	}
}

// Description is a human readable name for the type.
func (t InputType) Description() string {
	switch t {
	case InputTypeSG:
		return "single-organism genomic reads"
	case InputTypeST:
		return "single-organism transcriptomic reads"
	case InputTypeMG:
		return "metagenomic reads"
	case InputTypeMT:
		return "metatranscriptomic reads"
	case InputTypeCO:
		return "assembled contigs"
	case InputTypePE:
		return "peptide sequences"
	default:
		return "unknown"
	}
}
