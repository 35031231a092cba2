//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"bytes"
	stdjson "encoding/json"

	"github.com/bytedance/sonic"
)

var escapeHTML = true

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(escapeHTML)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes a JSON payload into the provided destination using the current API config.
func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}

// SetConfig sets the configuration for the JSON package. Only EscapeHTML is
// honoured by the encoding/json fallback.
func SetConfig(config *sonic.Config) {
	escapeHTML = config.EscapeHTML
}
