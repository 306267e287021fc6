package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// DecodeValue parses data as a single JSON value. Numbers decode as
// json.Number so integer and floating-point literals stay
// distinguishable by TypeName and Matches. Content after the first
// value is an error: a dataset line holds exactly one record.
func DecodeValue(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after JSON value")
	}
	return value, nil
}
