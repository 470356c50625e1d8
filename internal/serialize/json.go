// Package serialize encodes reports as JSON through protobuf's structpb.
package serialize

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// MarshalJSON encodes fields as a JSON object. Values must be representable
// by structpb.NewValue.
func MarshalJSON(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("error converting fields: %w", err)
	}
	return protojson.Marshal(s)
}

// MarshalIndentJSON is MarshalJSON with two-space indentation.
func MarshalIndentJSON(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("error converting fields: %w", err)
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
}

// UnMarshalJSON decodes a JSON object into plain Go maps and slices.
func UnMarshalJSON(data []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error parsing json: %w", err)
	}
	return s.AsMap(), nil
}
