package dataset

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DecodeSamples parses a JSON array of {"year", "totalSales"} objects.
func DecodeSamples(raw string) ([]Sample, error) {
	var samples []Sample
	if err := json.Unmarshal([]byte(raw), &samples); err != nil {
		return nil, fmt.Errorf("unable to decode historical samples, %w", err)
	}
	return samples, nil
}

// DecodeYears parses a JSON array of {"year"} objects. Any other keys, such as a null
// totalSales placeholder, are ignored.
func DecodeYears(raw string) ([]YearRequest, error) {
	var years []YearRequest
	if err := json.Unmarshal([]byte(raw), &years); err != nil {
		return nil, fmt.Errorf("unable to decode target years, %w", err)
	}
	return years, nil
}
