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

import (
	"errors"
	"fmt"
)

// ErrEmptyEnum is returned by Build when a definition declares no entries.
var ErrEmptyEnum = errors.New("enum: definition has no entries")

// DuplicateLabelError reports two entries sharing the same label.
type DuplicateLabelError struct {
	Enum  string
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("enum %s: duplicate label %q", e.Enum, e.Label)
}

// DuplicateValueError reports two entries sharing the same scalar value.
type DuplicateValueError struct {
	Enum  string
	Value Scalar
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("enum %s: duplicate value %v", e.Enum, e.Value)
}

// TypeMismatchError reports an entry whose value does not conform to
// the declared scalar type.
type TypeMismatchError struct {
	Enum     string
	Label    string
	Expected TypeTag
	Actual   TypeTag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("enum %s: entry %q declared %s but has %s value",
		e.Enum, e.Label, e.Expected, e.Actual)
}

// DefaultNotFoundError reports a declared default that matches no entry.
type DefaultNotFoundError struct {
	Enum  string
	Label string
}

func (e *DefaultNotFoundError) Error() string {
	return fmt.Sprintf("enum %s: default %q is not among the entries", e.Enum, e.Label)
}

// NotFoundError reports an inverse lookup for a scalar that matches no
// entry. This is an expected runtime condition, e.g. stale stored data.
type NotFoundError struct {
	Enum  string
	Value Scalar
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enum %s: no entry with value %v", e.Enum, e.Value)
}
