package recovery

import (
	"encoding/json"
	"errors"
	"strings"
)

var errTrailingData = errors.New("trailing data after JSON value")

// strictDecode parses s under the full JSON grammar. It either returns the
// complete decoded tree or an error — never a partially built value. Numbers
// come back as json.Number so the coercer controls conversion.
func strictDecode(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return v, nil
}
