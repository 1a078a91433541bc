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

package enum

import "fmt"

// Scalar is the storage/transport value carried by an entry. Only the
// comparable primitives covered by TypeTag are valid scalars; Build
// rejects anything else.
type Scalar = interface{}

// TypeTag identifies the scalar type shared by every entry of one
// definition.
type TypeTag int

const (
	String TypeTag = iota
	Int
	Int64
	Bool
	Float

	// Invalid marks a value outside the supported primitive set. It is
	// never a valid declared type; it only appears in error reports.
	Invalid TypeTag = -1
)

func (t TypeTag) String() string {
	switch t {
	case Invalid:
		return "unsupported"
	case String:
		return "string"
	case Int:
		return "int"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("TypeTag(%d)", int(t))
	}
}

// ParseTypeTag maps a manifest type name to its TypeTag.
func ParseTypeTag(s string) (TypeTag, error) {
	switch s {
	case "string", "":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "int64", "bigint":
		return Int64, nil
	case "bool", "boolean":
		return Bool, nil
	case "float", "float64", "double":
		return Float, nil
	default:
		return String, fmt.Errorf("enum: unknown scalar type %q", s)
	}
}

// TagOf reports the TypeTag of a scalar value, or false if the value
// is not one of the supported primitives.
func TagOf(v Scalar) (TypeTag, bool) {
	switch v.(type) {
	case string:
		return String, true
	case int:
		return Int, true
	case int64:
		return Int64, true
	case bool:
		return Bool, true
	case float64:
		return Float, true
	default:
		return Invalid, false
	}
}

// Entry pairs a label with its scalar value. Behavior is the optional
// per-entry capability set consulted by Enum.Dispatch.
type Entry struct {
	Label    string
	Value    Scalar
	Behavior Behavior
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%v", e.Label, e.Value)
}
