package asdtocsv

// normalize rescales raw digital numbers in place using the correction
// for the detector segment each channel belongs to: integration-time
// scaling up to the first join wavelength, SWIR1 gain between the joins,
// SWIR2 gain above. Channels exactly at a join belong to the lower
// segment. Must run exactly once; the result is not raw data anymore.
// Fails when a VNIR channel would be divided by a zero integration time.
func normalize(wavelengths, data []float64, hdr Header) error {
	integrationTime := float64(hdr.IntegrationTimeMs)
	for i, wl := range wavelengths {
		switch {
		case wl <= hdr.Join1Wavelength:
			if integrationTime == 0 {
				return ErrZeroIntegrationTime
			}
			data[i] /= integrationTime
		case wl <= hdr.Join2Wavelength:
			data[i] = data[i] * float64(hdr.SWIR1Gain) / 2048
		default:
			data[i] = data[i] * float64(hdr.SWIR2Gain) / 2048
		}
	}
	return nil
}

// validateRange fails when any sample exceeds the instrument dynamic
// range, which usually indicates the file was decoded with the wrong
// offset or data format.
func validateRange(data []float64, threshold float64) error {
	for i, v := range data {
		if v > threshold {
			return &DynamicRangeExceededError{Index: i, Value: v, Threshold: threshold}
		}
	}
	return nil
}
