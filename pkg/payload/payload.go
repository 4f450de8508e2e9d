// Package payload reads named values out of dispatch payloads.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrMissingParameter = errors.New("required payload parameter is missing")
	ErrLengthMismatch   = errors.New("the length of the keys must match the length of the values")
)

type MissingParameterError struct {
	Param string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("required payload parameter %q is missing", e.Param)
}

func (e MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

var bracketReplacer = strings.NewReplacer("][", ".", "].", ".", "[", ".", "]", "")

// NormalizePath rewrites bracket notation into dot notation:
// foo[0][1] becomes foo.0.1 and foo[0].bar becomes foo.0.bar.
func NormalizePath(path string) string {
	path = strings.TrimPrefix(path, "[")
	path = strings.TrimSuffix(path, "]")

	return bracketReplacer.Replace(path)
}

// Lookup evaluates a property path against payload and returns the value
// stored there. Maps, slices, arrays and structs (by json tag or field name)
// are walked directly; raw JSON payloads ([]byte, json.RawMessage, string)
// are read with gjson.
func Lookup(payload any, path string) (any, bool) {
	path = NormalizePath(path)

	switch raw := payload.(type) {
	case json.RawMessage:
		return lookupJSON(raw, path)
	case []byte:
		return lookupJSON(raw, path)
	case string:
		return lookupJSON([]byte(raw), path)
	}

	current := reflect.ValueOf(payload)
	for _, key := range strings.Split(path, ".") {
		next, ok := child(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}

	if !current.IsValid() {
		return nil, true
	}
	if !current.CanInterface() {
		return nil, false
	}

	return current.Interface(), true
}

func lookupJSON(data []byte, path string) (any, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return nil, false
	}

	return result.Value(), true
}

func child(v reflect.Value, key string) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		value := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		return value, value.IsValid()

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true

	case reflect.Struct:
		return field(v, key)
	}

	return reflect.Value{}, false
}

// field resolves key against the json names of v's exported fields,
// including promoted fields of embedded structs.
func field(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if name == "" && f.Anonymous {
			embedded := v.Field(i)
			if embedded.Kind() == reflect.Pointer {
				if !f.IsExported() || embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if found, ok := field(embedded, key); ok {
					return found, true
				}
				continue
			}
		}

		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if name == key {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

// Extract returns the values of params in payload, in param order.
func Extract(payload any, params []string) ([]any, error) {
	values := make([]any, 0, len(params))
	for _, param := range params {
		v, ok := Lookup(payload, param)
		if !ok {
			return nil, MissingParameterError{Param: param}
		}
		values = append(values, v)
	}

	return values, nil
}

func Combine(keys []string, values []any) (map[string]any, error) {
	if len(keys) != len(values) {
		return nil, ErrLengthMismatch
	}

	combined := make(map[string]any, len(keys))
	for i, key := range keys {
		combined[key] = values[i]
	}

	return combined, nil
}
