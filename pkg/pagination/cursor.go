package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// DecodeCursor reverses EncodeCursor. An empty cursor yields the zero T.
func DecodeCursor[T any](cursor string) (T, error) {
	var position T

	if cursor == "" {
		return position, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return position, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	if err := json.Unmarshal(data, &position); err != nil {
		return position, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	return position, nil
}

// EncodeCursor serializes a page position into an opaque, URL safe token.
func EncodeCursor[T any](position T) string {
	data, _ := json.Marshal(position)

	return base64.RawURLEncoding.EncodeToString(data)
}
