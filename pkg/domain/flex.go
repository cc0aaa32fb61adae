package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString is a scalar the mock API sends as either a JSON string, number or bool.
// It always marshals back as a string.
type FlexString string

// UnmarshalJSON accepts strings, numbers, bools and null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("domain.FlexString: %w", err)
	}
	switch x := v.(type) {
	case json.Number:
		*f = FlexString(x.String())
	case bool:
		*f = FlexString(strconv.FormatBool(x))
	default:
		return fmt.Errorf("domain.FlexString: unsupported value %s", data)
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

// Macros maps a macro name (protein, carbs, fat...) to its display value.
type Macros map[string]FlexString

// UnmarshalJSON accepts an object of scalars, or a bare string kept under "summary".
func (m *Macros) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var raw map[string]FlexString
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("domain.Macros: %w", err)
		}
		*m = raw
		return nil
	}
	var s FlexString
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain.Macros: %w", err)
	}
	*m = Macros{"summary": s}
	return nil
}
