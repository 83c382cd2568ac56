package asdtocsv

import (
	"fmt"
	"io"
	"os"
)

// ParseOptions represents the decoding options passed to ParseSpectrum.
//
// the zero value gives the normal behaviour: samples are validated
// against the instrument dynamic range and Raw data is normalized
type ParseOptions struct {
	// SkipRangeValidation admits sample values beyond the instrument
	// dynamic range instead of failing the decode
	SkipRangeValidation bool
	// SkipNormalization leaves Raw data as recorded digital numbers
	// instead of applying the per-detector-segment corrections
	SkipNormalization bool
	// ForceDataFormat overrides the header data-format code when the
	// header value is wrong or missing
	//
	// nil means use the header value
	ForceDataFormat *DataFormat
}

// Spectrum represents the fully decoded contents of one instrument file.
// It is assembled atomically by ParseSpectrum and never mutated after
// construction.
type Spectrum struct {
	// Header is the instrument metadata
	Header Header
	// Wavelengths is the wavelength scale in nanometers, one entry per
	// channel, strictly increasing by the header step
	Wavelengths []float64
	// Data is the primary sample array, normalized when the file holds
	// Raw data and normalization was not disabled
	Data []float64
	// Reference is the white-reference sample array, nil when the file
	// carries no reference block
	Reference []float64
	// RefDescription is the free-text descriptor of the reference block
	RefDescription string
}

// HasReference reports whether the file carried a white-reference block.
func (s *Spectrum) HasReference() bool {
	return s.Reference != nil
}

// ParseFile decodes the instrument file at path. Decode failures are
// wrapped with the originating file path.
func ParseFile(path string, options *ParseOptions) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	result, err := ParseSpectrum(f, options)
	if err != nil {
		return nil, fmt.Errorf("cannot input data from file %s: %w", path, err)
	}
	return result, nil
}

// ParseSpectrum decodes one instrument file from the supplied reader with
// the supplied ParseOptions
//
// if the ParseOptions supplied is nil, default options are used
func ParseSpectrum(r io.Reader, options *ParseOptions) (*Spectrum, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseSpectrum(buf, options)
}

func parseSpectrum(buf []byte, options *ParseOptions) (*Spectrum, error) {
	if options == nil {
		options = &ParseOptions{}
	}
	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	format := hdr.DataFormat
	if options.ForceDataFormat != nil {
		format = *options.ForceDataFormat
	}
	data, err := parseSamples(buf, spectrumDataOffset, format, hdr.Channels)
	if err != nil {
		return nil, err
	}
	reference, refDesc, err := parseReference(buf, format, hdr.Channels)
	if err != nil {
		return nil, err
	}
	wavelengths := wavelengthScale(hdr)
	// range validation runs against the raw array, before normalization
	if !options.SkipRangeValidation {
		if err := validateRange(data, hdr.DynamicRange()); err != nil {
			return nil, err
		}
	}
	if !options.SkipNormalization && hdr.DataType == DataTypeRaw {
		if err := normalize(wavelengths, data, hdr); err != nil {
			return nil, err
		}
	}
	return &Spectrum{
		Header:         hdr,
		Wavelengths:    wavelengths,
		Data:           data,
		Reference:      reference,
		RefDescription: refDesc,
	}, nil
}
