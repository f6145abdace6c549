// Package codec selects the JSON implementation used for fit requests and
// responses.
//
// Decoding is strict: unknown fields and trailing data are rejected, so a
// misspelled "max_iter" fails instead of silently leaving the field unset.
// Both codecs produce interchangeable bytes and round-trip float64 exactly.
package codec

import "errors"

// ErrTrailingData is returned when a document is followed by more input.
var ErrTrailingData = errors.New("codec: trailing data after document")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes exactly one document into v.
	Unmarshal(data []byte, v any) error
	Name() string
}

// Names lists the built-in codec names.
var Names = []string{"go-json", "json"}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
