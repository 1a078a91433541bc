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

// Builder assembles an enum definition: an ordered entry list, an
// optional declared scalar type (string when omitted), and an optional
// default label. Build validates the definition and freezes it into an
// Enum; a Builder is single-use scratch space and is not safe for
// concurrent use.
type Builder struct {
	name       string
	typ        TypeTag
	typeSet    bool
	entries    []Entry
	defaultSet bool
	defaultLbl string
	fallback   Behavior
}

// NewBuilder starts a definition for the named enum.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Type declares the scalar type shared by every entry.
func (b *Builder) Type(t TypeTag) *Builder {
	b.typ = t
	b.typeSet = true
	return b
}

// Add appends an entry in declaration order.
func (b *Builder) Add(label string, value Scalar) *Builder {
	b.entries = append(b.entries, Entry{Label: label, Value: value})
	return b
}

// AddWith appends an entry carrying a per-entry behavior set.
func (b *Builder) AddWith(label string, value Scalar, behavior Behavior) *Builder {
	b.entries = append(b.entries, Entry{Label: label, Value: value, Behavior: behavior})
	return b
}

// Default designates the fallback label for the definition.
func (b *Builder) Default(label string) *Builder {
	b.defaultLbl = label
	b.defaultSet = true
	return b
}

// Fallback sets the definition-wide behavior consulted when an entry
// has no behavior of its own.
func (b *Builder) Fallback(behavior Behavior) *Builder {
	b.fallback = behavior
	return b
}

// Build validates the definition and returns the frozen Enum. Checks
// run in a fixed order and the first failure aborts the build: empty
// definition, duplicate label, duplicate value, type conformance,
// default membership. On error no Enum is produced.
func (b *Builder) Build() (*Enum, error) {
	if len(b.entries) == 0 {
		return nil, ErrEmptyEnum
	}

	seenLabels := make(map[string]struct{}, len(b.entries))
	for _, e := range b.entries {
		if _, dup := seenLabels[e.Label]; dup {
			return nil, &DuplicateLabelError{Enum: b.name, Label: e.Label}
		}
		seenLabels[e.Label] = struct{}{}
	}

	seenValues := make(map[Scalar]struct{}, len(b.entries))
	for _, e := range b.entries {
		if _, ok := TagOf(e.Value); !ok {
			// Unsupported kinds are caught here rather than in the type
			// check below so they cannot poison the value map.
			return nil, &TypeMismatchError{Enum: b.name, Label: e.Label, Expected: b.declaredType(), Actual: Invalid}
		}
		if _, dup := seenValues[e.Value]; dup {
			return nil, &DuplicateValueError{Enum: b.name, Value: e.Value}
		}
		seenValues[e.Value] = struct{}{}
	}

	declared := b.declaredType()
	for _, e := range b.entries {
		tag, _ := TagOf(e.Value)
		if tag != declared {
			return nil, &TypeMismatchError{Enum: b.name, Label: e.Label, Expected: declared, Actual: tag}
		}
	}

	if b.defaultSet {
		if _, ok := seenLabels[b.defaultLbl]; !ok {
			return nil, &DefaultNotFoundError{Enum: b.name, Label: b.defaultLbl}
		}
	}

	return freeze(b), nil
}

// MustBuild is Build for declarations wired at program start; a
// malformed definition panics instead of limping along half-built.
func (b *Builder) MustBuild() *Enum {
	e, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("enum: %v", err))
	}
	return e
}

func (b *Builder) declaredType() TypeTag {
	if b.typeSet {
		return b.typ
	}
	return String
}
