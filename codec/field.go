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
	"database/sql/driver"
	"fmt"
)

// Field is a single enum-typed column value bound to its codec. It
// implements driver.Valuer and sql.Scanner, so Bun models can declare
// enum columns that Dump on write and Load on read. A Field must be
// created through Codec.Field; the zero Field is unbound and errors on
// both paths. Model values scanned by a query must therefore be
// initialized with a bound Field, e.g. `Plan: planCodec.Field("")`.
type Field struct {
	codec *Codec
	label string
}

// Field returns a column value bound to this codec holding the given
// label. An empty label means unset; on write it falls back to the
// enum's default.
func (c *Codec) Field(label string) Field {
	return Field{codec: c, label: label}
}

// Label returns the held label, empty when unset.
func (f Field) Label() string { return f.label }

func (f Field) String() string { return f.label }

// IsSet reports whether the field holds a label.
func (f Field) IsSet() bool { return f.label != "" }

// Set replaces the held label after casting, so both labels and raw
// external scalars are accepted.
func (f *Field) Set(value interface{}) error {
	if f.codec == nil {
		return fmt.Errorf("codec: Set on unbound enum field")
	}
	label, err := f.codec.Cast(value)
	if err != nil {
		return err
	}
	f.label = label
	return nil
}

// Value implements driver.Valuer: the stored form is the entry's
// scalar value. An unset field dumps the enum's default; with no
// default declared the write fails rather than guessing.
func (f Field) Value() (driver.Value, error) {
	if f.codec == nil {
		return nil, fmt.Errorf("codec: Value on unbound enum field")
	}
	label := f.label
	if label == "" {
		def, ok := f.codec.Enum().DefaultLabel()
		if !ok {
			return nil, fmt.Errorf("codec %s: field unset and enum declares no default", f.codec.Enum().Name())
		}
		label = def
	}
	scalar, err := f.codec.Dump(label)
	if err != nil {
		return nil, err
	}
	return driverValue(scalar)
}

// Scan implements sql.Scanner. NULL resolves to the enum's default
// when one is declared and fails otherwise. A non-NULL source is by
// construction the stored scalar written by Value, so it resolves
// through Load, never Cast: a stored scalar that happens to equal
// another entry's label must still resolve by value. Stale stored
// scalars surface as enum.NotFoundError.
func (f *Field) Scan(src interface{}) error {
	if f.codec == nil {
		return fmt.Errorf("codec: Scan on unbound enum field")
	}
	if src == nil {
		def, ok := f.codec.Enum().DefaultLabel()
		if !ok {
			return &InvalidInputError{Enum: f.codec.Enum().Name(), Value: nil}
		}
		f.label = def
		return nil
	}
	label, err := f.codec.Load(src)
	if err != nil {
		return err
	}
	f.label = label
	return nil
}

// driverValue widens a scalar to the types database/sql/driver accepts.
func driverValue(scalar interface{}) (driver.Value, error) {
	switch v := scalar.(type) {
	case string:
		return v, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case bool:
		return v, nil
	case float64:
		return v, nil
	default:
		return nil, fmt.Errorf("codec: scalar %v (%T) is not a driver value", scalar, scalar)
	}
}
