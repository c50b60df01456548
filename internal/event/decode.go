package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Payloads published in process
// carry T or *T; anything else, such as a map from a JSON source, is
// converted through encoding/json.
func DecodePayload[T any](input any) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf(ErrMsgNilPayload, out)
		}
		return *v, nil
	case nil:
		return out, fmt.Errorf(ErrMsgNilPayload, out)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(data, &out)
}
