package buoy

import (
	"strconv"
	"strings"
	"time"
)

// separationFrequencyFill is the NDBC fill value for a row without a valid
// swell/wind-sea separation frequency.
const separationFrequencyFill = 9.999

// SpectralDataRecord is one row of an NDBC raw spectral feed: a timestamp,
// an optional separation frequency and aligned value/frequency series. The
// value series carries energy density or a directional coefficient depending
// on which feed the row came from.
type SpectralDataRecord struct {
	Date                time.Time
	SeparationFrequency *float64
	Value               []float64
	Frequency           []float64
}

// ParseSpectralDataRecords reads an NDBC spectral feed. Comment lines start
// with '#'; malformed rows are skipped rather than failing the whole feed.
func ParseSpectralDataRecords(data string) []SpectralDataRecord {
	var records []SpectralDataRecord

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		record, err := parseSpectralRow(strings.Fields(line))
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

// parseSpectralRow decodes one feed row. Rows with a separation frequency
// have an even field count: 5 date fields, the separation frequency, then
// value/(frequency) pairs.
func parseSpectralRow(fields []string) (SpectralDataRecord, error) {
	hasSepFreq := len(fields)%2 == 0
	start := 5
	if hasSepFreq {
		start = 6
	}
	if len(fields) < start+2 {
		return SpectralDataRecord{}, NewParseError("spectral row has only %d fields", len(fields))
	}

	freqCount := (len(fields) - start) / 2
	values := make([]float64, freqCount)
	freqs := make([]float64, freqCount)

	for i := 0; i < freqCount; i++ {
		index := start + i*2

		v, err := strconv.ParseFloat(fields[index], 64)
		if err != nil {
			return SpectralDataRecord{}, NewParseError("bad spectral value %q", fields[index])
		}
		values[i] = v

		raw := strings.Trim(fields[index+1], "()")
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return SpectralDataRecord{}, NewParseError("bad frequency %q", fields[index+1])
		}
		freqs[i] = f
	}

	var sepFreq *float64
	if hasSepFreq {
		sep := separationFrequencyFill
		if v, err := strconv.ParseFloat(fields[5], 64); err == nil {
			sep = v
		}
		sepFreq = &sep
	}

	date, err := parseRowDate(fields)
	if err != nil {
		return SpectralDataRecord{}, err
	}

	return SpectralDataRecord{
		Date:                date,
		SeparationFrequency: sepFreq,
		Value:               values,
		Frequency:           freqs,
	}, nil
}

func parseRowDate(fields []string) (time.Time, error) {
	parts := make([]int, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return time.Time{}, NewParseError("bad date field %q", fields[i])
		}
		parts[i] = v
	}
	return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], 0, 0, time.UTC), nil
}

// HasSeparationFrequency reports whether the row carries a usable swell and
// wind-sea separation frequency.
func (r SpectralDataRecord) HasSeparationFrequency() bool {
	return r.SeparationFrequency != nil && *r.SeparationFrequency < separationFrequencyFill
}
