package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process publishers hand over the
// struct itself; anything else (a map decoded from JSON, a pointer) is
// converted by a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return result, fmt.Errorf("decode %T: nil payload", result)
	case nil:
		return result, fmt.Errorf("decode %T: nil payload", result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	return result, nil
}
