// Package codec selects the serialization used for dataset documents.
package codec

import "fmt"

// Codec turns dataset documents into bytes and back.
// One value may be shared by concurrent loads.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default decodes datasets when no codec option is given.
var Default Codec = GoJSON{}

// ByName resolves the -codec flag value ("json" or "go-json").
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

// MustMarshal encodes v with c, falling back to Default for a nil c.
// An encoding failure panics, which suits fixed fixtures in tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("%s: cannot encode %T: %w", c.Name(), v, err))
	}
	return b
}
