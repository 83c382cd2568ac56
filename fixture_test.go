package asdtocsv

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// fileBuilder assembles synthetic instrument files for tests. The
// defaults describe a plausible full-range instrument; individual tests
// override what they exercise.
type fileBuilder struct {
	buf []byte
}

func newFileBuilder() *fileBuilder {
	b := &fileBuilder{buf: make([]byte, spectrumDataOffset)}
	copy(b.buf[3:], "synthetic field spectrum")
	b.buf[178] = 0x63 // program version 6.3
	b.buf[179] = 0x71 // file version 7.1
	b.buf[181] = 1    // vnir dark subtracted
	b.putU32(182, 1580000000)
	b.buf[186] = byte(DataTypeRaw)
	b.putU32(187, 1580000060)
	b.putF32(191, 350)
	b.putF32(195, 1)
	b.buf[199] = byte(DataFormatNumeric)
	b.putI16(204, 1)
	b.putF64(334, 181.5)   // heading
	b.putF64(342, 1.25)    // speed
	b.putF64(350, 33.42)   // latitude
	b.putF64(358, -111.93) // longitude
	b.putF64(366, 361)     // altitude
	b.putU32(390, 100)     // integration time ms
	b.putI16(394, 1)
	b.putI16(396, 0)
	b.putI16(400, 16383)
	b.putI16(418, 16) // dynamic range 2^16
	b.putI16(425, 25)
	b.putI16(427, 10)
	b.putI16(429, 10)
	b.buf[431] = byte(InstrumentFSFR)
	b.putI16(436, 512)  // swir1 gain
	b.putI16(438, 1024) // swir2 gain
	b.putI16(440, 2048)
	b.putI16(442, 2048)
	b.putF32(444, 1000) // join1
	b.putF32(448, 1800) // join2
	return b
}

func (b *fileBuilder) putU32(offset int, v uint32) {
	binary.LittleEndian.PutUint32(b.buf[offset:], v)
}

func (b *fileBuilder) putI16(offset int, v int16) {
	binary.LittleEndian.PutUint16(b.buf[offset:], uint16(v))
}

func (b *fileBuilder) putF32(offset int, v float32) {
	binary.LittleEndian.PutUint32(b.buf[offset:], math.Float32bits(v))
}

func (b *fileBuilder) putF64(offset int, v float64) {
	binary.LittleEndian.PutUint64(b.buf[offset:], math.Float64bits(v))
}

func (b *fileBuilder) dataType(t DataType) *fileBuilder {
	b.buf[186] = byte(t)
	return b
}

func (b *fileBuilder) dataFormat(f DataFormat) *fileBuilder {
	b.buf[199] = byte(f)
	return b
}

func (b *fileBuilder) wavelengths(start, step float32) *fileBuilder {
	b.putF32(191, start)
	b.putF32(195, step)
	return b
}

func (b *fileBuilder) joins(join1, join2 float32) *fileBuilder {
	b.putF32(444, join1)
	b.putF32(448, join2)
	return b
}

func (b *fileBuilder) channels(n int16) *fileBuilder {
	b.putI16(204, n)
	return b
}

// samples appends the primary array encoded per the current data-format
// byte and sets the channel count to match.
func (b *fileBuilder) samples(values ...float64) *fileBuilder {
	b.putI16(204, int16(len(values)))
	b.appendRecords(DataFormat(b.buf[199]), values)
	return b
}

// samplesAs appends records in an explicit format, leaving the header
// data-format byte alone. Used to exercise format overrides.
func (b *fileBuilder) samplesAs(format DataFormat, values ...float64) *fileBuilder {
	b.putI16(204, int16(len(values)))
	b.appendRecords(format, values)
	return b
}

// reference appends the white-reference block: sub-header, descriptor
// and records in the current data format.
func (b *fileBuilder) reference(desc string, values ...float64) *fileBuilder {
	sub := make([]byte, referenceSubHeaderSize+2)
	binary.LittleEndian.PutUint16(sub[0:], 1)
	binary.LittleEndian.PutUint64(sub[2:], 1580000060)
	binary.LittleEndian.PutUint64(sub[10:], 1580000000)
	binary.LittleEndian.PutUint16(sub[18:], uint16(len(desc)))
	b.buf = append(b.buf, sub...)
	b.buf = append(b.buf, desc...)
	b.appendRecords(DataFormat(b.buf[199]), values)
	return b
}

func (b *fileBuilder) appendRecords(format DataFormat, values []float64) {
	for _, v := range values {
		switch format {
		case DataFormatInteger:
			b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(int32(v)))
		case DataFormatDouble:
			b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
		default:
			b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(float32(v)))
		}
	}
}

func (b *fileBuilder) bytes() []byte {
	return b.buf
}

func (b *fileBuilder) parse(t *testing.T, options *ParseOptions) *Spectrum {
	t.Helper()
	result, err := parseSpectrum(b.buf, options)
	require.NoError(t, err)
	return result
}
