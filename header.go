package asdtocsv

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"
)

// spectrumDataOffset is where the primary sample records begin. The
// 'Indico Version 8 File Format' document says byte 485, but the data
// actually starts at byte 484.
const spectrumDataOffset = 484

// GPS holds the position block recorded by instruments with a GPS
// attached. All five values are present in every file, zeroed when no
// fix was available.
type GPS struct {
	TrueHeading float64 `yaml:"true_heading"`
	Speed       float64 `yaml:"speed"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	Altitude    float64 `yaml:"altitude"`
}

// Header represents the parsed instrument metadata preceding the sample
// records. All multi-byte fields are little-endian.
type Header struct {
	Comments           string          `yaml:"comments"`
	ProgramVersion     Version         `yaml:"program_version"`
	FileVersion        Version         `yaml:"file_version"`
	VNIRDarkSubtracted bool            `yaml:"vnir_dark_subtracted"`
	AcquisitionTime    time.Time       `yaml:"acquisition_time"`
	DarkTime           time.Time       `yaml:"dark_meas_time"`
	WhiteTime          time.Time       `yaml:"white_meas_time"`
	DataType           DataType        `yaml:"data_type"`
	DataFormat         DataFormat      `yaml:"data_format"`
	WavelengthStart    float64         `yaml:"wavelength_start"`
	WavelengthStep     float64         `yaml:"wavelength_step"`
	Channels           int             `yaml:"channels"`
	GPS                GPS             `yaml:"gps"`
	IntegrationTimeMs  int             `yaml:"vnir_integration_time_ms"`
	ForeOptic          int             `yaml:"fore_optic"`
	DarkCorrection     int             `yaml:"dark_current_correction"`
	SerialNumber       int             `yaml:"serial_number"`
	DynamicRangeExp    int             `yaml:"dynamic_range_exponent"`
	AveragingWarning   string          `yaml:"averaging_warning,omitempty"`
	SaturationWarning  string          `yaml:"saturation_warning,omitempty"`
	DarkAveraging      int             `yaml:"dark_current_averaging"`
	WhiteAveraging     int             `yaml:"white_reference_averaging"`
	SpectrumAveraging  int             `yaml:"spectrum_averaging"`
	Instrument         InstrumentModel `yaml:"instrument_model"`
	SWIR1Gain          int             `yaml:"swir1_gain"`
	SWIR2Gain          int             `yaml:"swir2_gain"`
	SWIR1Offset        int             `yaml:"swir1_offset"`
	SWIR2Offset        int             `yaml:"swir2_offset"`
	Join1Wavelength    float64         `yaml:"join1_wavelength"`
	Join2Wavelength    float64         `yaml:"join2_wavelength"`
	SmartDetector      [8]float32      `yaml:"smart_detector,flow"`
}

// DynamicRange is the maximum digital number the detector hardware can
// represent, 2 raised to the header-stored exponent.
func (h Header) DynamicRange() float64 {
	return math.Pow(2, float64(h.DynamicRangeExp))
}

func parseHeader(buf []byte) (Header, error) {
	if len(buf) < spectrumDataOffset {
		return Header{}, &TruncatedBufferError{Need: spectrumDataOffset, Have: len(buf)}
	}
	darkSub, err := darkSubtractionFlag(buf[181])
	if err != nil {
		return Header{}, err
	}
	dataType, err := dataTypeFromCode(buf[186])
	if err != nil {
		return Header{}, err
	}
	dataFormat, err := dataFormatFromCode(buf[199])
	if err != nil {
		return Header{}, err
	}
	instrument, err := instrumentFromCode(buf[431])
	if err != nil {
		return Header{}, err
	}
	channels := i16At(buf, 204)
	if channels <= 0 {
		return Header{}, fmt.Errorf("invalid channel count %d", channels)
	}
	var averagingWarning string
	if buf[421] != 0 {
		averagingWarning = WarningAveragingFixed
	}
	saturationWarning, err := saturationWarningFromCode(buf[422])
	if err != nil {
		return Header{}, err
	}
	var smart [8]float32
	for i := range smart {
		smart[i] = f32At(buf, 452+i*4)
	}
	return Header{
		Comments:           textField(buf[3:160]),
		ProgramVersion:     versionFromByte(buf[178]),
		FileVersion:        versionFromByte(buf[179]),
		VNIRDarkSubtracted: darkSub,
		AcquisitionTime:    timeAt(buf, 182),
		// the dark timestamp occupies the same bytes as the
		// acquisition timestamp in this format revision
		DarkTime:          timeAt(buf, 182),
		WhiteTime:         timeAt(buf, 187),
		DataType:          dataType,
		DataFormat:        dataFormat,
		WavelengthStart:   float64(f32At(buf, 191)),
		WavelengthStep:    float64(f32At(buf, 195)),
		Channels:          channels,
		GPS: GPS{
			TrueHeading: f64At(buf, 334),
			Speed:       f64At(buf, 342),
			Latitude:    f64At(buf, 350),
			Longitude:   f64At(buf, 358),
			Altitude:    f64At(buf, 366),
		},
		IntegrationTimeMs: int(binary.LittleEndian.Uint32(buf[390:394])),
		ForeOptic:         i16At(buf, 394),
		DarkCorrection:    i16At(buf, 396),
		SerialNumber:      i16At(buf, 400),
		DynamicRangeExp:   i16At(buf, 418),
		AveragingWarning:  averagingWarning,
		SaturationWarning: saturationWarning,
		DarkAveraging:     i16At(buf, 425),
		WhiteAveraging:    i16At(buf, 427),
		SpectrumAveraging: i16At(buf, 429),
		Instrument:        instrument,
		SWIR1Gain:         i16At(buf, 436),
		SWIR2Gain:         i16At(buf, 438),
		SWIR1Offset:       i16At(buf, 440),
		SWIR2Offset:       i16At(buf, 442),
		Join1Wavelength:   float64(f32At(buf, 444)),
		Join2Wavelength:   float64(f32At(buf, 448)),
		SmartDetector:     smart,
	}, nil
}

func darkSubtractionFlag(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &UnknownEnumCodeError{Field: "vnir dark subtraction", Code: int(b)}
}

func i16At(buf []byte, offset int) int {
	return int(int16(binary.LittleEndian.Uint16(buf[offset : offset+2])))
}

func f32At(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
}

func f64At(buf []byte, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[offset : offset+8]))
}

// timeAt reads a u32 seconds-since-epoch timestamp.
func timeAt(buf []byte, offset int) time.Time {
	return time.Unix(int64(binary.LittleEndian.Uint32(buf[offset:offset+4])), 0).UTC()
}

// textField strips embedded NULs from a fixed-width text field.
func textField(data []byte) string {
	return strings.ReplaceAll(string(data), "\x00", "")
}
