package asdtocsv

import "slices"

// OutputType selects the spectral product derived by Transform.
type OutputType string

const (
	OutputReflectance   OutputType = "Reflectance"
	OutputRaw           OutputType = "Raw"
	OutputReference     OutputType = "Reference"
	OutputTransmittance OutputType = "Transmittance"
)

// Transform derives the requested spectral product from the decoded
// arrays. It has no side effects; the returned slice is always a fresh
// copy and the Spectrum is left untouched.
//
// Reflectance divides the primary array by the reference array when a
// reference block is present; when absent the primary array is returned
// as-is if the file already holds reflectance data, otherwise
// ErrMissingReference is returned. Transmittance requires the file data
// type to be Transmittance.
func (s *Spectrum) Transform(outputType OutputType) ([]float64, error) {
	switch outputType {
	case OutputReflectance:
		if s.Reference != nil {
			out := make([]float64, len(s.Data))
			for i := range s.Data {
				out[i] = s.Data[i] / s.Reference[i]
			}
			return out, nil
		}
		if s.Header.DataType == DataTypeReflectance {
			return slices.Clone(s.Data), nil
		}
		return nil, ErrMissingReference
	case OutputRaw:
		return slices.Clone(s.Data), nil
	case OutputReference:
		if s.Reference == nil {
			return nil, ErrMissingReference
		}
		return slices.Clone(s.Reference), nil
	case OutputTransmittance:
		if s.Header.DataType != DataTypeTransmittance {
			return nil, &TypeMismatchError{Requested: outputType, Actual: s.Header.DataType}
		}
		return slices.Clone(s.Data), nil
	}
	return nil, &InvalidOutputTypeError{Type: string(outputType)}
}
