package pagination

import (
	"strings"

	"github.com/Sententiaregum/flux-container/pkg/validation"
)

type Paging struct {
	Limit      int64  `json:"limit" query:"limit" validate:"min=1,max=100"`
	Cursor     string `json:"cursor" query:"cursor"`
	NextCursor string `json:"next_cursor"`
}

func (p *Paging) Validate() error {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	p.Cursor = strings.TrimSpace(p.Cursor)

	return validation.Validate().Struct(p)
}

type offsetCursor struct {
	Offset int `json:"offset"`
}

// Slice pages through an in-memory list and fills p.NextCursor when more
// items follow.
func Slice[T any](items []T, p *Paging) ([]T, error) {
	cursor, err := DecodeCursor[offsetCursor](p.Cursor)
	if err != nil {
		return nil, err
	}

	if cursor.Offset < 0 || cursor.Offset > len(items) {
		cursor.Offset = len(items)
	}

	end := cursor.Offset + int(p.Limit)
	if end >= len(items) {
		p.NextCursor = ""
		return items[cursor.Offset:], nil
	}

	p.NextCursor = EncodeCursor(offsetCursor{Offset: end})

	return items[cursor.Offset:end], nil
}
