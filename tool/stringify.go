package tool

import (
	"encoding/json"
	"fmt"
)

// Stringify renders a tool result as the text shown to the model.
//
// Strings pass through unchanged, errors and fmt.Stringer values use their
// text, scalars are formatted with fmt and composite values are encoded as
// JSON. A nil result renders as the empty string.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(val)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
