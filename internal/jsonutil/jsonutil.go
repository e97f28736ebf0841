// Package jsonutil provides the JSON encoding conventions shared by the
// generator and the preview tool: human-diffable indented output and
// error handling with context.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalIndented renders v with two-space indentation and a trailing
// newline. HTML escaping is disabled so comparison operators inside query
// expressions and panel descriptions stay readable in the output file.
func MarshalIndented(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}
