package pagination_test

import (
	"testing"

	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagingValidate(t *testing.T) {
	p := pagination.Paging{Cursor: "  abc  "}
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(10), p.Limit)
	assert.Equal(t, "abc", p.Cursor)

	p = pagination.Paging{Limit: 1000}
	assert.Error(t, p.Validate())
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	p := &pagination.Paging{Limit: 2}

	var pages [][]string
	for {
		page, err := pagination.Slice(items, p)
		require.NoError(t, err)
		pages = append(pages, page)
		if p.NextCursor == "" {
			break
		}
		p.Cursor = p.NextCursor
	}

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, pages)
}

func TestSliceInvalidCursor(t *testing.T) {
	_, err := pagination.Slice([]int{1}, &pagination.Paging{Limit: 1, Cursor: "%%%"})
	assert.ErrorIs(t, err, pagination.ErrInvalidCursor)

	_, err = pagination.Slice([]int{1}, &pagination.Paging{Limit: 1, Cursor: "bm90LWpzb24"})
	assert.ErrorIs(t, err, pagination.ErrInvalidCursor)
}

func TestCursorRoundTrip(t *testing.T) {
	type position struct {
		Offset int    `json:"offset"`
		Key    string `json:"key"`
	}

	cursor := pagination.EncodeCursor(position{Offset: 3, Key: "a/b?c"})
	assert.NotContains(t, cursor, "=")

	decoded, err := pagination.DecodeCursor[position](cursor)
	assert.NoError(t, err)
	assert.Equal(t, position{Offset: 3, Key: "a/b?c"}, decoded)

	empty, err := pagination.DecodeCursor[*position]("")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}
