// Command asd2csv converts binary ASD spectroradiometer files into
// two-column CSV tables of wavelength/value pairs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	asd "github.com/ASU-GDCS/ASDtoCSV"
)

var cli struct {
	Type            string `short:"t" default:"Reflectance" enum:"Reflectance,Raw,Reference,Transmittance" help:"Which data to output"`
	Sigdig          int    `short:"d" help:"Format output values to a fixed number of digits"`
	ForceDataFormat int    `default:"-1" help:"Override the header data format code (0=float32, 1=int32, 2=float64)"`
	NoRangeErrors   bool   `help:"Ignore records with data outside the instrument dynamic range"`
	DN              bool   `name:"dn" help:"Output DN values without normalization for 'Raw' data"`
	Meta            bool   `help:"Also write instrument metadata as a YAML sidecar file"`
	Verbose         bool   `help:"Print debug output"`
	Input           string `arg:"" help:"Binary ASD file or directory containing .asd files"`
	Output          string `arg:"" help:"Output CSV file, or output directory when input is a directory"`
}

// converter carries the resolved output settings for one run.
type converter struct {
	outputType asd.OutputType
	sigDigits  int
	meta       bool
	options    *asd.ParseOptions
}

func main() {
	_ = kong.Parse(&cli, kong.Description("Converts binary ASD spectroradiometer files to CSV tables."))
	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	info, err := os.Stat(cli.Input)
	if err != nil {
		log.Fatalf("path %q not found", cli.Input)
	}

	c := converter{
		outputType: asd.OutputType(cli.Type),
		sigDigits:  cli.Sigdig,
		meta:       cli.Meta,
		options:    parseOptions(),
	}
	if info.IsDir() {
		failed, err := c.convertDir(cli.Input, cli.Output)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}
	if err := c.convert(cli.Input, cli.Output); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseOptions() *asd.ParseOptions {
	options := &asd.ParseOptions{
		SkipRangeValidation: cli.NoRangeErrors,
		SkipNormalization:   cli.DN,
	}
	if cli.ForceDataFormat >= 0 {
		format := asd.DataFormat(cli.ForceDataFormat)
		options.ForceDataFormat = &format
	}
	return options
}

// convertDir processes every .asd file in the input directory, each
// producing an independent CSV in the output directory. Failures are
// reported per file and do not abort the batch; the count of failed
// files is returned.
func (c converter) convertDir(inputDir, outputDir string) (failed int, err error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("cannot read directory %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}
	matched := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".asd") {
			continue
		}
		matched++
		input := filepath.Join(inputDir, entry.Name())
		output := filepath.Join(outputDir, replaceExt(entry.Name(), ".csv"))
		if err := c.convert(input, output); err != nil {
			log.Errorf("%v", err)
			failed++
		}
	}
	if matched == 0 {
		log.Warnf("no .asd files found in %s", inputDir)
	}
	return failed, nil
}

func (c converter) convert(input, output string) error {
	spectrum, err := asd.ParseFile(input, c.options)
	if err != nil {
		return err
	}
	log.Debugf("decoded %s: %s %s, %d channels, serial %d",
		input, spectrum.Header.Instrument, spectrum.Header.DataType,
		spectrum.Header.Channels, spectrum.Header.SerialNumber)

	// derive the product before touching the output path, so a failed
	// transform leaves no empty file behind
	values, err := spectrum.Transform(c.outputType)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	log.Infof("writing data to file %s", output)
	writeErr := asd.WriteTable(f, spectrum.Wavelengths, values, asd.ColumnLabel(input, c.outputType), c.sigDigits)
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return writeErr
	}
	if c.meta {
		return writeMeta(spectrum, output)
	}
	return nil
}

// writeMeta saves the decoded instrument metadata next to the CSV.
func writeMeta(spectrum *asd.Spectrum, output string) error {
	data, err := yaml.Marshal(spectrum.Header)
	if err != nil {
		return err
	}
	path := replaceExt(output, ".meta.yaml")
	log.Infof("writing metadata to file %s", path)
	return os.WriteFile(path, data, 0o644)
}

func replaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
