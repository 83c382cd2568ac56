package asdtocsv

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// wavelengthUnits is fixed by the file format; wavelengths are always
// recorded in nanometers.
const wavelengthUnits = "nm"

// typeAbbreviations are the short column-label suffixes per output type.
var typeAbbreviations = map[OutputType]string{
	OutputRaw:           "Raw",
	OutputReflectance:   "Refl",
	OutputReference:     "Rfnc",
	OutputTransmittance: "Trns",
}

// ExportOptions represents the formatting options passed to ExportTable.
type ExportOptions struct {
	// Label is the value column header; defaults to the output type name
	Label string
	// SigDigits is the fixed number of decimal digits for values; zero
	// or negative uses default formatting
	SigDigits int
}

// ColumnLabel derives the value column label from an input file path:
// the base name with its extension stripped, suffixed with the short
// abbreviation for the output type.
func ColumnLabel(path string, outputType OutputType) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if abbrev := typeAbbreviations[outputType]; abbrev != "" {
		return base + "_" + abbrev
	}
	return base
}

// ExportTable derives the requested spectral product and writes it as a
// two-column table.
func (s *Spectrum) ExportTable(w io.Writer, outputType OutputType, options *ExportOptions) error {
	values, err := s.Transform(outputType)
	if err != nil {
		return err
	}
	if options == nil {
		options = &ExportOptions{}
	}
	label := options.Label
	if label == "" {
		label = string(outputType)
	}
	return WriteTable(w, s.Wavelengths, values, label, options.SigDigits)
}

// WriteTable writes one header line 'wl_nm,<label>' followed by one
// comma-separated wavelength,value line per channel.
func WriteTable(w io.Writer, wavelengths, values []float64, label string, sigDigits int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "wl_%s,%s\n", wavelengthUnits, label); err != nil {
		return err
	}
	for i := range wavelengths {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", formatWavelength(wavelengths[i]), formatValue(values[i], sigDigits)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatWavelength prints the shortest exact decimal form, always with a
// decimal point ("400.0" rather than "400").
func formatWavelength(wl float64) string {
	s := strconv.FormatFloat(wl, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatValue(v float64, sigDigits int) string {
	if sigDigits > 0 {
		return strconv.FormatFloat(v, 'f', sigDigits, 64)
	}
	return fmt.Sprintf("%f", v)
}
