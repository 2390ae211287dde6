package forecast

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedModel = errors.New("unsupported forecast model")

// Model selects the curve used to extend the sales history
type Model int

const (
	// CubicSpline interpolates the history with a piecewise cubic
	CubicSpline Model = iota
	// Linear fits a least squares line
	Linear
	// Polynomial fits a least squares parabola
	Polynomial
	// Exponential fits a line to log sales and predicts a*exp(b*year)
	Exponential
)

var modelNames = map[Model]string{
	CubicSpline: "cubic_spline",
	Linear:      "linear",
	Polynomial:  "polynomial",
	Exponential: "exponential",
}

// Models lists every supported model
func Models() []Model {
	return []Model{CubicSpline, Linear, Polynomial, Exponential}
}

// ParseModel converts a case insensitive model name into a Model. The error names the exact
// string that was rejected.
func ParseModel(name string) (Model, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Models() {
		if modelNames[m] == normalized {
			return m, nil
		}
	}
	return 0, fmt.Errorf("model '%s' is not supported, %w", name, ErrUnsupportedModel)
}

func (m Model) String() string {
	if name, exists := modelNames[m]; exists {
		return name
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// Title returns the name with only the first letter upper cased, e.g. Cubic_spline
func (m Model) Title() string {
	name := m.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// MarshalText encodes the model by name
func (m Model) MarshalText() ([]byte, error) {
	if _, exists := modelNames[m]; !exists {
		return nil, fmt.Errorf("%s, %w", m, ErrUnsupportedModel)
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a model name
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Decode lets envconfig populate a Model from its name
func (m *Model) Decode(value string) error {
	return m.UnmarshalText([]byte(value))
}
