// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcmodels

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pion/rtcmodels/pkg/rtcerr"
)

// omitPolicy decides which dictionary members are written on encode.
type omitPolicy int

const (
	// omitDefault skips members that still hold their default value.
	omitDefault omitPolicy = iota + 1

	// neverOmit writes every member, including nulls.
	neverOmit
)

// field maps one dictionary member to its wire name. The default of every
// member is its Go zero value, and an empty list counts as the default of a
// list member.
type field struct {
	wire string

	// value points at the member.
	value any

	// required members have no default. They are always written and must
	// be present on decode.
	required bool

	// excluded members are local bookkeeping only: never written, never read.
	excluded bool
}

// encodeFields writes the members in declaration order as a compact JSON
// object.
func encodeFields(policy omitPolicy, fields []field) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)

	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}

	for _, f := range fields {
		if f.excluded {
			continue
		}
		if policy == omitDefault && !f.required && isDefaultValue(f.value) {
			continue
		}

		raw, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.wire, err)
		}
		if err := enc.WriteToken(jsontext.String(f.wire)); err != nil {
			return nil, err
		}
		if err := enc.WriteValue(raw); err != nil {
			return nil, err
		}
	}

	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}

	// The encoder terminates every top-level value with a newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeFields reads a JSON object and stores every recognized member.
// Unknown keys are ignored and absent optional members keep their default.
func decodeFields(data []byte, fields []field) error {
	var tree map[string]jsontext.Value
	if err := json.Unmarshal(data, &tree); err != nil {
		var syntaxErr *jsontext.SyntacticError
		if errors.As(err, &syntaxErr) {
			return &rtcerr.SyntaxError{Err: err}
		}

		return &rtcerr.TypeError{Err: fmt.Errorf("%w: %w", ErrNotAnObject, err)}
	}
	if tree == nil {
		return &rtcerr.TypeError{Err: ErrNotAnObject}
	}

	for _, f := range fields {
		if f.excluded {
			continue
		}

		raw, ok := tree[f.wire]
		if !ok {
			if f.required {
				return &rtcerr.TypeError{Err: fmt.Errorf("%w: %s", ErrMissingField, f.wire)}
			}

			continue
		}

		if raw.Kind() == 'n' && !isNullable(f.value) {
			return &rtcerr.TypeError{Err: fmt.Errorf("%w: %s is null", ErrFieldType, f.wire)}
		}

		if err := json.Unmarshal(raw, f.value); err != nil {
			return &rtcerr.TypeError{Err: fmt.Errorf("%w: %s: %w", ErrFieldType, f.wire, err)}
		}
	}

	return nil
}

func isDefaultValue(ptr any) bool {
	v := reflect.ValueOf(ptr).Elem()
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func isNullable(ptr any) bool {
	switch reflect.ValueOf(ptr).Elem().Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}
