// Package jsonio is the JSON codec used at the module's I/O boundaries
// (line-record input, outline output). It wraps github.com/bytedance/sonic
// behind a minimal encoding/json-shaped surface so the rest of the module
// never imports a JSON library directly.
package jsonio

import (
	"io"

	"github.com/bytedance/sonic"
)

// Encoder is the interface for streaming JSON encoding.
type Encoder interface {
	Encode(v any) error
}

// Decoder is the interface for streaming JSON decoding.
type Decoder interface {
	Decode(v any) error
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return sonic.ConfigDefault.Marshal(v)
}

// MarshalIndent is like Marshal but indents the output for readability.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return sonic.ConfigDefault.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return sonic.ConfigDefault.Unmarshal(data, v)
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return sonic.ConfigDefault.NewEncoder(w)
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return sonic.ConfigDefault.NewDecoder(r)
}
