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

// Enum is a frozen definition: an ordered entry list plus forward
// (label to value) and inverse (value to label) maps built once at
// Build time. Nothing mutates an Enum after Build, so every method is
// safe for unsynchronized concurrent use.
type Enum struct {
	name    string
	typ     TypeTag
	entries []Entry
	index   map[string]int
	forward map[string]Scalar
	inverse map[Scalar]string

	defaultSet bool
	defaultLbl string
	fallback   Behavior
}

func freeze(b *Builder) *Enum {
	e := &Enum{
		name:       b.name,
		typ:        b.declaredType(),
		entries:    make([]Entry, len(b.entries)),
		index:      make(map[string]int, len(b.entries)),
		forward:    make(map[string]Scalar, len(b.entries)),
		inverse:    make(map[Scalar]string, len(b.entries)),
		defaultSet: b.defaultSet,
		defaultLbl: b.defaultLbl,
		fallback:   b.fallback,
	}
	copy(e.entries, b.entries)
	for i, entry := range e.entries {
		e.index[entry.Label] = i
		e.forward[entry.Label] = entry.Value
		e.inverse[entry.Value] = entry.Label
	}
	return e
}

// Name returns the definition name.
func (e *Enum) Name() string { return e.name }

// Type returns the declared scalar type.
func (e *Enum) Type() TypeTag { return e.typ }

// Len returns the number of entries.
func (e *Enum) Len() int { return len(e.entries) }

// Labels returns every label in declaration order. The slice is a
// fresh copy on every call.
func (e *Enum) Labels() []string {
	labels := make([]string, len(e.entries))
	for i, entry := range e.entries {
		labels[i] = entry.Label
	}
	return labels
}

// Values returns every scalar value in declaration order, index-wise
// parallel to Labels.
func (e *Enum) Values() []Scalar {
	values := make([]Scalar, len(e.entries))
	for i, entry := range e.entries {
		values[i] = entry.Value
	}
	return values
}

// Entries returns the entry list in declaration order.
func (e *Enum) Entries() []Entry {
	entries := make([]Entry, len(e.entries))
	copy(entries, e.entries)
	return entries
}

// FromScalar resolves a scalar value to its label. A scalar outside
// the definition yields a NotFoundError, including values whose
// dynamic type is not a supported primitive at all: those can never
// be members, and guarding them here keeps non-comparable inputs
// from panicking on the map lookup.
func (e *Enum) FromScalar(value Scalar) (string, error) {
	if _, ok := TagOf(value); !ok {
		return "", &NotFoundError{Enum: e.name, Value: value}
	}
	label, ok := e.inverse[value]
	if !ok {
		return "", &NotFoundError{Enum: e.name, Value: value}
	}
	return label, nil
}

// ToScalar resolves a member label to its scalar value. Labels only
// ever come from Labels(), so an unknown label is a caller bug and
// panics rather than returning an error.
func (e *Enum) ToScalar(label string) Scalar {
	value, ok := e.forward[label]
	if !ok {
		panic(fmt.Sprintf("enum %s: ToScalar called with unknown label %q", e.name, label))
	}
	return value
}

// Contains reports whether the scalar value belongs to the definition.
func (e *Enum) Contains(value Scalar) bool {
	if _, ok := TagOf(value); !ok {
		return false
	}
	_, ok := e.inverse[value]
	return ok
}

// ContainsLabel reports whether the label belongs to the definition.
func (e *Enum) ContainsLabel(label string) bool {
	_, ok := e.forward[label]
	return ok
}

// DefaultLabel returns the designated default label. A definition
// without a default is a valid configuration, reported via the second
// return value rather than an error.
func (e *Enum) DefaultLabel() (string, bool) {
	return e.defaultLbl, e.defaultSet
}

// DefaultValue returns the scalar value of the default label, if any.
func (e *Enum) DefaultValue() (Scalar, bool) {
	if !e.defaultSet {
		return nil, false
	}
	return e.forward[e.defaultLbl], true
}

func (e *Enum) String() string {
	return fmt.Sprintf("enum %s[%s] (%d entries)", e.name, e.typ, len(e.entries))
}
