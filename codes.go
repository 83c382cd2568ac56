package asdtocsv

import "fmt"

// DataType is the spectral data type recorded in the file header.
type DataType uint8

const (
	DataTypeRaw DataType = iota
	DataTypeReflectance
	DataTypeRadiance
	DataTypeNoUnits
	DataTypeIrradiance
	DataTypeQI
	DataTypeTransmittance
	DataTypeUnknown
	DataTypeAbsorbance
)

var dataTypeNames = []string{
	"Raw",
	"Reflectance",
	"Radiance",
	"No_Units",
	"Irradiance",
	"QI",
	"Transmittance",
	"Unknown",
	"Absorbance",
}

func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", uint8(d))
}

func (d DataType) MarshalYAML() (any, error) {
	return d.String(), nil
}

func dataTypeFromCode(code byte) (DataType, error) {
	if int(code) >= len(dataTypeNames) {
		return 0, &UnknownEnumCodeError{Field: "data type", Code: int(code)}
	}
	return DataType(code), nil
}

// DataFormat is the on-disk encoding of the sample arrays.
type DataFormat uint8

const (
	DataFormatNumeric DataFormat = iota // 4-byte float
	DataFormatInteger                   // 4-byte signed integer
	DataFormatDouble                    // 8-byte float
	DataFormatUnknown
)

var dataFormatNames = []string{"numeric", "integer", "double", "Unknown"}

func (d DataFormat) String() string {
	if int(d) < len(dataFormatNames) {
		return dataFormatNames[d]
	}
	return fmt.Sprintf("DataFormat(%d)", uint8(d))
}

func (d DataFormat) MarshalYAML() (any, error) {
	return d.String(), nil
}

// recordWidth is the per-sample byte width, 0 when undecodable.
func (d DataFormat) recordWidth() int {
	switch d {
	case DataFormatNumeric, DataFormatInteger:
		return 4
	case DataFormatDouble:
		return 8
	}
	return 0
}

func dataFormatFromCode(code byte) (DataFormat, error) {
	if int(code) >= len(dataFormatNames) {
		return 0, &UnknownEnumCodeError{Field: "data format", Code: int(code)}
	}
	return DataFormat(code), nil
}

// InstrumentModel identifies the spectroradiometer family that produced
// the file. LS stands for LabSpec, FS for FieldSpec, FR for Full Range.
type InstrumentModel uint8

const (
	InstrumentUnknown InstrumentModel = iota
	InstrumentPSII
	InstrumentLSVNIR
	InstrumentFSVNIR
	InstrumentFSFR
	InstrumentFSNIR
	InstrumentCHEM
	InstrumentFSFRUnattended
)

var instrumentNames = []string{
	"Unknown",
	"PSII",
	"LSVNIR",
	"FSVNIR",
	"FSFR",
	"FSNIR",
	"CHEM",
	"FSFR Unattended",
}

func (m InstrumentModel) String() string {
	if int(m) < len(instrumentNames) {
		return instrumentNames[m]
	}
	return fmt.Sprintf("InstrumentModel(%d)", uint8(m))
}

func (m InstrumentModel) MarshalYAML() (any, error) {
	return m.String(), nil
}

func instrumentFromCode(code byte) (InstrumentModel, error) {
	if int(code) >= len(instrumentNames) {
		return 0, &UnknownEnumCodeError{Field: "instrument model", Code: int(code)}
	}
	return InstrumentModel(code), nil
}

// WarningAveragingFixed is reported when the first warning byte is set.
const WarningAveragingFixed = "AVGFIXed"

// saturationWarnings maps the second warning byte to detector
// saturation / thermoelectric cooling alarms.
var saturationWarnings = map[byte]string{
	1:  "nir saturation",
	2:  "swir1 saturation",
	3:  "swir2 saturation",
	8:  "Tec1 alarm",
	16: "Tec2 alarm",
}

func saturationWarningFromCode(code byte) (string, error) {
	if code == 0 {
		return "", nil
	}
	label, ok := saturationWarnings[code]
	if !ok {
		return "", &UnknownWarningCodeError{Code: int(code)}
	}
	return label, nil
}

// Version is a program or file version packed into a single header byte.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// versionFromByte unpacks major from the high nibble and minor from the
// low three bits.
func versionFromByte(b byte) Version {
	return Version{
		Major: int(b >> 4),
		Minor: int(b & 7),
	}
}
