package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/numint/internal/record"
)

// marshalParams serializes run params to canonical JSON.
func marshalParams(params map[string]any) (string, error) {
	if params == nil {
		params = map[string]any{}
	}
	data, err := record.MarshalCanonical(params)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}
	return string(data), nil
}

// unmarshalParams decodes stored params. Numbers decode as float64.
func unmarshalParams(data string) (map[string]any, error) {
	if data == "" {
		return map[string]any{}, nil
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(data), &params); err != nil {
		return nil, fmt.Errorf("unmarshal params: %w", err)
	}
	return params, nil
}
