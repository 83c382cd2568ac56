package asdtocsv

import (
	"encoding/binary"
	"math"
)

// referenceSubHeaderSize covers the reference-present flag (u16) and the
// two timestamp fields (i64 each) preceding the descriptor.
const referenceSubHeaderSize = 18

// wavelengthScale builds the ordered wavelength sequence from the header
// start/step values, one entry per channel.
func wavelengthScale(hdr Header) []float64 {
	scale := make([]float64, hdr.Channels)
	for i := range scale {
		scale[i] = hdr.WavelengthStart + float64(i)*hdr.WavelengthStep
	}
	return scale
}

// parseSamples decodes n sample records of the given format starting at
// offset. Values are widened to float64 regardless of on-disk width.
func parseSamples(buf []byte, offset int, format DataFormat, n int) ([]float64, error) {
	width := format.recordWidth()
	if width == 0 {
		return nil, &UnsupportedDataFormatError{Format: format}
	}
	need := offset + width*n
	if len(buf) < need {
		return nil, &TruncatedBufferError{Need: need, Have: len(buf)}
	}
	out := make([]float64, n)
	switch format {
	case DataFormatNumeric:
		for i := range out {
			out[i] = float64(f32At(buf, offset+i*4))
		}
	case DataFormatInteger:
		for i := range out {
			out[i] = float64(int32(binary.LittleEndian.Uint32(buf[offset+i*4 : offset+i*4+4])))
		}
	case DataFormatDouble:
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[offset+i*8 : offset+i*8+8]))
		}
	}
	return out, nil
}

// parseReference decodes the optional white-reference block following the
// primary array: an 18-byte sub-header, a length-prefixed descriptor and
// n more sample records in the same format. Returns a nil array when the
// file carries no reference block.
func parseReference(buf []byte, format DataFormat, n int) ([]float64, string, error) {
	width := format.recordWidth()
	if width == 0 {
		return nil, "", &UnsupportedDataFormatError{Format: format}
	}
	if spectrumDataOffset+2*width*n >= len(buf) {
		return nil, "", nil
	}
	offset := spectrumDataOffset + width*n
	need := offset + referenceSubHeaderSize + 2
	if len(buf) < need {
		return nil, "", &TruncatedBufferError{Need: need, Have: len(buf)}
	}
	offset += referenceSubHeaderSize
	descLen := int(binary.LittleEndian.Uint16(buf[offset : offset+2]))
	offset += 2
	if len(buf) < offset+descLen {
		return nil, "", &TruncatedBufferError{Need: offset + descLen, Have: len(buf)}
	}
	desc := textField(buf[offset : offset+descLen])
	offset += descLen
	ref, err := parseSamples(buf, offset, format, n)
	if err != nil {
		return nil, "", err
	}
	return ref, desc, nil
}
