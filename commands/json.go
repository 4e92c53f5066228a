package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON enforces the host's wire contract: a mapping with exactly
// two string fields, name and param — nothing more, nothing less. This
// is the Go analogue of the original serde visitor's strict two-field
// MapAccess walk.
func (r *RawCommand) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var shape struct {
		Name  *string `json:"name"`
		Param *string `json:"param"`
	}
	if err := dec.Decode(&shape); err != nil {
		return fmt.Errorf("malformed command: %w", err)
	}
	if shape.Name == nil {
		return fmt.Errorf("malformed command: missing \"name\"")
	}
	if shape.Param == nil {
		return fmt.Errorf("malformed command: missing \"param\"")
	}

	r.Name = *shape.Name
	r.Param = *shape.Param
	return nil
}

// DecodeRawCommands parses a JSON array of {"name":...,"param":...}
// objects, the shape a host sends over the wire.
func DecodeRawCommands(data []byte) ([]RawCommand, error) {
	var raw []RawCommand
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed command list: %w", err)
	}
	return raw, nil
}
