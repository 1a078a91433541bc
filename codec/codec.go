/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package codec

import (
	"strconv"

	"github.com/tomoncle/enumkit/enum"
)

// Codec bridges an enum's label space and the scalar representation a
// storage or transport layer persists. It holds only a reference to
// the frozen enum, so a Codec is safe for unsynchronized concurrent use.
type Codec struct {
	enum *enum.Enum
}

// New returns a codec over the given enum.
func New(e *enum.Enum) *Codec {
	return &Codec{enum: e}
}

// Enum returns the underlying definition.
func (c *Codec) Enum() *enum.Enum { return c.enum }

// DeclaredType exposes the enum's scalar type so schema-aware callers
// can check column/field compatibility ahead of time.
func (c *Codec) DeclaredType() enum.TypeTag { return c.enum.Type() }

// Cast normalizes flexible external input to a label. The label domain
// is checked before the scalar domain, so input that is already a
// label stays that label even when it also collides with some entry's
// scalar value. Inputs that fit neither shape fail with
// InvalidInputError; well-shaped scalars outside the definition fail
// with enum.NotFoundError.
func (c *Codec) Cast(value interface{}) (string, error) {
	if label, ok := value.(string); ok && c.enum.ContainsLabel(label) {
		return label, nil
	}
	scalar, ok := c.normalize(value)
	if !ok {
		return "", &InvalidInputError{Enum: c.enum.Name(), Value: value}
	}
	return c.enum.FromScalar(scalar)
}

// Dump projects a label to its canonical stored scalar.
func (c *Codec) Dump(label string) (enum.Scalar, error) {
	if !c.enum.ContainsLabel(label) {
		return nil, &UnknownLabelError{Enum: c.enum.Name(), Label: label}
	}
	return c.enum.ToScalar(label), nil
}

// Load materializes a stored scalar back into a label. A scalar with
// no matching entry, e.g. stale data written before an option was
// removed, fails with enum.NotFoundError.
func (c *Codec) Load(value enum.Scalar) (string, error) {
	scalar, ok := c.normalize(value)
	if !ok {
		return "", &InvalidInputError{Enum: c.enum.Name(), Value: value}
	}
	return c.enum.FromScalar(scalar)
}

// Equal compares two entries by label identity, never by scalar value.
func (c *Codec) Equal(a, b string) bool { return a == b }

// normalize coerces driver- and form-shaped input to the declared
// scalar type: []byte and numeric widths from database drivers, and
// string forms from user input.
func (c *Codec) normalize(value interface{}) (enum.Scalar, bool) {
	if b, ok := value.([]byte); ok {
		value = string(b)
	}
	switch c.enum.Type() {
	case enum.String:
		s, ok := value.(string)
		return s, ok
	case enum.Int:
		if n, ok := toInt64(value); ok {
			return int(n), true
		}
	case enum.Int64:
		if n, ok := toInt64(value); ok {
			return n, true
		}
	case enum.Bool:
		switch v := value.(type) {
		case bool:
			return v, true
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, true
			}
		case int64:
			// SQLite stores booleans as 0/1 integers.
			if v == 0 || v == 1 {
				return v == 1, true
			}
		}
	case enum.Float:
		switch v := value.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f, true
			}
		}
	}
	return nil, false
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
