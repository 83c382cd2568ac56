package asdtocsv

import (
	"errors"
	"fmt"
)

// ErrMissingReference is returned when a requested spectral product needs
// the white-reference array and the file carries no reference block.
var ErrMissingReference = errors.New("reference data not contained in file")

// ErrZeroIntegrationTime is returned when Raw normalization is requested
// but the header records a zero VNIR integration time, which would make
// every VNIR sample divide to infinity.
var ErrZeroIntegrationTime = errors.New("cannot normalize: vnir integration time is zero")

// TruncatedBufferError indicates the file buffer is shorter than a
// required read.
type TruncatedBufferError struct {
	Need int
	Have int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("buffer truncated: need %d bytes, have %d", e.Need, e.Have)
}

// UnknownEnumCodeError indicates a header code outside the known mapping
// for a closed-set field.
type UnknownEnumCodeError struct {
	Field string
	Code  int
}

func (e *UnknownEnumCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Field, e.Code)
}

// UnknownWarningCodeError indicates a saturation/alarm warning byte
// outside the known lookup table.
type UnknownWarningCodeError struct {
	Code int
}

func (e *UnknownWarningCodeError) Error() string {
	return fmt.Sprintf("unknown warning code %d", e.Code)
}

// UnsupportedDataFormatError indicates the resolved data format has no
// defined record width, so the sample arrays cannot be decoded.
type UnsupportedDataFormatError struct {
	Format DataFormat
}

func (e *UnsupportedDataFormatError) Error() string {
	return fmt.Sprintf("records are of unsupported data format %q", e.Format)
}

// DynamicRangeExceededError indicates a raw sample value beyond the
// instrument's dynamic range, which usually means the file was decoded
// with the wrong offset or data format.
type DynamicRangeExceededError struct {
	Index     int
	Value     float64
	Threshold float64
}

func (e *DynamicRangeExceededError) Error() string {
	return fmt.Sprintf("sample %d (%g) is larger than instrument dynamic range %g", e.Index, e.Value, e.Threshold)
}

// TypeMismatchError indicates a requested product cannot be derived from
// the data type the file actually holds.
type TypeMismatchError struct {
	Requested OutputType
	Actual    DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot create %s spectra from header type %s", e.Requested, e.Actual)
}

// InvalidOutputTypeError indicates an output-type request outside the
// supported set.
type InvalidOutputTypeError struct {
	Type string
}

func (e *InvalidOutputTypeError) Error() string {
	return fmt.Sprintf("output type %q not understood", e.Type)
}
