package asdtocsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLabel(t *testing.T) {
	assert.Equal(t, "spectrum01_Refl", ColumnLabel("spectrum01.asd", OutputReflectance))
	assert.Equal(t, "spectrum01_Raw", ColumnLabel("data/spectrum01.asd", OutputRaw))
	assert.Equal(t, "spectrum01_Rfnc", ColumnLabel("/abs/path/spectrum01.asd", OutputReference))
	assert.Equal(t, "spectrum01_Trns", ColumnLabel("spectrum01.asd", OutputTransmittance))
	assert.Equal(t, "noext_Refl", ColumnLabel("noext", OutputReflectance))
}

func TestWriteTable(t *testing.T) {
	var sb strings.Builder
	err := WriteTable(&sb, []float64{400, 401}, []float64{0.5, 0.6}, "spectrum01_Refl", 0)
	require.NoError(t, err)
	assert.Equal(t, "wl_nm,spectrum01_Refl\n400.0,0.500000\n401.0,0.600000\n", sb.String())
}

func TestWriteTable_SigDigits(t *testing.T) {
	var sb strings.Builder
	err := WriteTable(&sb, []float64{400.5}, []float64{0.123456789}, "s_Refl", 3)
	require.NoError(t, err)
	assert.Equal(t, "wl_nm,s_Refl\n400.5,0.123\n", sb.String())
}

func TestFormatWavelength(t *testing.T) {
	assert.Equal(t, "400.0", formatWavelength(400))
	assert.Equal(t, "400.5", formatWavelength(400.5))
	assert.Equal(t, "-1.0", formatWavelength(-1))
}

func TestExportTable(t *testing.T) {
	spectrum := newFileBuilder().
		dataType(DataTypeReflectance).
		wavelengths(400, 1).
		samples(0.5, 0.6).
		parse(t, nil)

	var sb strings.Builder
	err := spectrum.ExportTable(&sb, OutputReflectance, &ExportOptions{
		Label: ColumnLabel("spectrum01.asd", OutputReflectance),
	})
	require.NoError(t, err)
	assert.Equal(t, "wl_nm,spectrum01_Refl\n400.0,0.500000\n401.0,0.600000\n", sb.String())
}

func TestExportTable_WithReference(t *testing.T) {
	spectrum := newFileBuilder().
		dataType(DataTypeRaw).
		wavelengths(400, 1).
		samples(1, 2).
		reference("", 2, 4).
		parse(t, &ParseOptions{SkipNormalization: true})

	var sb strings.Builder
	err := spectrum.ExportTable(&sb, OutputReflectance, nil)
	require.NoError(t, err)
	assert.Equal(t, "wl_nm,Reflectance\n400.0,0.500000\n401.0,0.500000\n", sb.String())
}

func TestExportTable_TransformError(t *testing.T) {
	spectrum := newFileBuilder().
		dataType(DataTypeRadiance).
		samples(1, 2).
		parse(t, nil)

	var sb strings.Builder
	err := spectrum.ExportTable(&sb, OutputReflectance, nil)
	require.ErrorIs(t, err, ErrMissingReference)
	assert.Empty(t, sb.String())
}
