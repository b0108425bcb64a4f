package request

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

var intType = reflect.TypeOf(0)

// OptionalInt is an integer payload field that tells apart a missing key,
// an explicit null (or empty string) and a value. Numeric strings are accepted.
type OptionalInt struct {
	Present bool
	Valid   bool
	Value   int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.Valid = false
	o.Value = 0

	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string

		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		s = strings.TrimSpace(s)

		if s == "" {
			return nil
		}

		v, err := strconv.Atoi(s)

		if err != nil {
			return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: intType}
		}

		o.Valid = true
		o.Value = v

		return nil
	}

	var v int

	if err := json.Unmarshal(data, &v); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: intType}
	}

	o.Valid = true
	o.Value = v

	return nil
}

func (o OptionalInt) Ptr() *int {
	if !o.Valid {
		return nil
	}

	v := o.Value

	return &v
}
