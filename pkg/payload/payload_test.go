package payload_test

import (
	"encoding/json"
	"testing"

	"github.com/Sententiaregum/flux-container/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"[0]", "0"},
		{"foo[0][1]", "foo.0.1"},
		{"foo[0].bar", "foo.0.bar"},
		{"foo.bar", "foo.bar"},
		{"name", "name"},
	}
	for _, tt := range tests {
		got := payload.NormalizePath(tt.path)
		if got != tt.want {
			t.Errorf("NormalizePath(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}

type profile struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"user":  profile{Name: "ben", Roles: []string{"admin", "dev"}},
		"count": 3,
		"nil":   nil,
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"count", 3, true},
		{"nil", nil, true},
		{"user.name", "ben", true},
		{"user.roles[1]", "dev", true},
		{"[user][roles][0]", "admin", true},
		{"user.email", nil, false},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		got, ok := payload.Lookup(data, tt.path)
		assert.Equal(t, tt.found, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

type limits struct {
	N int
}

type account struct {
	limits
	Owner  *profile `json:"owner,omitempty"`
	Secret string   `json:"-"`
	token  string
}

func TestLookupKeepsStoredValues(t *testing.T) {
	inner := limits{N: 1}
	data := map[string]any{
		"user": map[string]any{
			"age":    3,
			"id":     int64(9007199254740993),
			"ratio":  float32(0.5),
			"inner":  inner,
			"notify": func() {},
			"name":   "ben",
		},
		"ids":     []uint8{4, 5},
		"account": &account{limits: limits{N: 7}, Owner: &profile{Name: "ann"}, Secret: "s", token: "t"},
	}

	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"user.age", 3, true},
		{"user.id", int64(9007199254740993), true},
		{"user.ratio", float32(0.5), true},
		{"user.inner", inner, true},
		{"user.inner.N", 1, true},
		{"user.name", "ben", true},
		{"ids[1]", uint8(5), true},
		{"ids[2]", nil, false},
		{"ids.x", nil, false},
		{"account.owner.name", "ann", true},
		{"account.N", 7, true},
		{"account.Secret", nil, false},
		{"account.token", nil, false},
		{"user.age.value", nil, false},
	}

	for _, tt := range tests {
		got, ok := payload.Lookup(data, tt.path)
		assert.Equal(t, tt.found, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	notify, ok := payload.Lookup(data, "user.notify")
	assert.True(t, ok)
	assert.IsType(t, func() {}, notify)
}

func TestLookupRawJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"raw message", json.RawMessage(`{"user":{"roles":["admin","dev"]}}`)},
		{"bytes", []byte(`{"user":{"roles":["admin","dev"]}}`)},
		{"string", `{"user":{"roles":["admin","dev"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := payload.Lookup(tt.payload, "user[roles][1]")
			assert.True(t, ok)
			assert.Equal(t, "dev", got)

			_, ok = payload.Lookup(tt.payload, "user.email")
			assert.False(t, ok)
		})
	}

	_, ok := payload.Lookup("not json", "user")
	assert.False(t, ok)
}

func TestLookupNil(t *testing.T) {
	_, ok := payload.Lookup(nil, "user")
	assert.False(t, ok)

	var owner *profile
	_, ok = payload.Lookup(map[string]any{"owner": owner}, "owner.name")
	assert.False(t, ok)
}

func TestLookupStruct(t *testing.T) {
	got, ok := payload.Lookup(profile{Name: "max"}, "name")
	assert.True(t, ok)
	assert.Equal(t, "max", got)
}

func TestExtract(t *testing.T) {
	t.Run("it should keep parameter order", func(t *testing.T) {
		values, err := payload.Extract(map[string]any{"a": 1, "b": "two"}, []string{"b", "a"})

		require.NoError(t, err)
		assert.Equal(t, []any{"two", 1}, values)
	})

	t.Run("it should name the missing parameter", func(t *testing.T) {
		_, err := payload.Extract(map[string]any{"a": 1}, []string{"a", "b"})

		assert.ErrorIs(t, err, payload.ErrMissingParameter)
		assert.EqualError(t, err, `required payload parameter "b" is missing`)
	})
}

func TestCombine(t *testing.T) {
	got, err := payload.Combine([]string{"foo", "bar"}, []any{1, "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": 1, "bar": "x"}, got)

	_, err = payload.Combine([]string{"foo"}, nil)
	assert.ErrorIs(t, err, payload.ErrLengthMismatch)
}
