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

// Package bridge maps an enum's labels to the externally-cased tags a
// schema layer exposes, e.g. GraphQL enum values, and back.
package bridge

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tomoncle/enumkit/enum"
)

// Table is a frozen bidirectional translation between labels and
// external tags. Tags follow SCREAMING_SNAKE by default; individual
// labels can be overridden at construction. Like the enum it wraps, a
// Table never mutates after New and needs no locking.
type Table struct {
	enum    *enum.Enum
	tags    []string
	toTag   map[string]string
	fromTag map[string]string
}

// TagCollisionError reports two labels translating to the same tag.
type TagCollisionError struct {
	Enum string
	Tag  string
}

func (e *TagCollisionError) Error() string {
	return fmt.Sprintf("bridge %s: labels collide on tag %q", e.Enum, e.Tag)
}

// UnknownTagError reports an inbound tag with no label binding.
type UnknownTagError struct {
	Enum string
	Tag  string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("bridge %s: unknown tag %q", e.Enum, e.Tag)
}

// New builds the translation table for an enum. overrides replaces the
// derived tag for specific labels and may be nil; a label in overrides
// that is not in the enum is rejected, as is any tag collision.
func New(e *enum.Enum, overrides map[string]string) (*Table, error) {
	for label := range overrides {
		if !e.ContainsLabel(label) {
			return nil, fmt.Errorf("bridge %s: override for unknown label %q", e.Name(), label)
		}
	}

	labels := e.Labels()
	t := &Table{
		enum:    e,
		tags:    make([]string, len(labels)),
		toTag:   make(map[string]string, len(labels)),
		fromTag: make(map[string]string, len(labels)),
	}
	for i, label := range labels {
		tag, ok := overrides[label]
		if !ok {
			tag = ScreamingSnake(label)
		}
		if _, dup := t.fromTag[tag]; dup {
			return nil, &TagCollisionError{Enum: e.Name(), Tag: tag}
		}
		t.tags[i] = tag
		t.toTag[label] = tag
		t.fromTag[tag] = label
	}
	return t, nil
}

// Tags returns every external tag in declaration order, a fresh copy
// per call.
func (t *Table) Tags() []string {
	tags := make([]string, len(t.tags))
	copy(tags, t.tags)
	return tags
}

// ToTag translates a label to its external tag.
func (t *Table) ToTag(label string) (string, bool) {
	tag, ok := t.toTag[label]
	return tag, ok
}

// FromTag translates an inbound external tag back to a label. Unknown
// tags are an expected runtime condition, e.g. a typo'd query value.
func (t *Table) FromTag(tag string) (string, error) {
	label, ok := t.fromTag[tag]
	if !ok {
		return "", &UnknownTagError{Enum: t.enum.Name(), Tag: tag}
	}
	return label, nil
}

// ScreamingSnake converts CamelCase or snake_case identifiers to
// SCREAMING_SNAKE: "AgeGroup" and "age_group" both become "AGE_GROUP".
func ScreamingSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prev != '_' && (!unicode.IsUpper(prev) || nextLower) {
				b.WriteRune('_')
			}
		}
		if r == '-' || r == ' ' {
			r = '_'
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
