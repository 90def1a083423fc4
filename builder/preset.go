package builder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

var presetDecoder = schema.NewDecoder()

// Preset holds answers given up front. They replace the defaults of the
// matching questions; the operator can still change them.
type Preset struct {
	Extension string `schema:"extension"`
	CType     string `schema:"ctype"`
	Group     string `schema:"group"`
}

// DecodePreset decodes preset answers. Unknown keys are an error.
func DecodePreset(values url.Values) (Preset, error) {
	var p Preset
	if err := presetDecoder.Decode(&p, values); err != nil {
		return Preset{}, fmt.Errorf("invalid preset: %w", err)
	}
	return p, nil
}

// ParsePreset decodes key=value pairs, as given on the command line.
func ParsePreset(pairs []string) (Preset, error) {
	values := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return Preset{}, fmt.Errorf("invalid preset %q: expected key=value", pair)
		}
		values.Set(strings.TrimSpace(key), value)
	}
	return DecodePreset(values)
}
