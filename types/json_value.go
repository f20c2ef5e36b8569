package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that stores T as canonical
// JSON. Every state record in this repository is a plain Go struct with
// stable JSON tags.
func JSONValue[T any](name string) codec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

type jsonValue[T any] struct {
	name string
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %s", ErrUnmarshal, c.name, err.Error())
	}
	return v, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValue[T]) ValueType() string {
	return "mintgate/json/" + c.name
}
