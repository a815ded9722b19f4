package httpx

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
)

// MaxJSONBody caps the size of JSON request bodies.
const MaxJSONBody = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON decodes a single JSON value, rejecting keys that v does not declare.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
