package model

import (
	"encoding/json"

	"lukechampine.com/uint128"
)

// marshalWithWide encodes v and adds 128-bit values as decimal strings so
// JSON consumers never lose precision on them.
func marshalWithWide(v interface{}, wide map[string]uint128.Uint128) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for name, value := range wide {
		quoted, err := json.Marshal(value.String())
		if err != nil {
			return nil, err
		}
		fields[name] = quoted
	}
	return json.Marshal(fields)
}
