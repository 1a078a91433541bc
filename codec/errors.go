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

import "fmt"

// UnknownLabelError reports a Dump call with a label outside the
// enum's label set.
type UnknownLabelError struct {
	Enum  string
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("codec %s: unknown label %q", e.Enum, e.Label)
}

// InvalidInputError reports a Cast input whose shape cannot be
// normalized to either a label or a scalar of the declared type.
type InvalidInputError struct {
	Enum  string
	Value interface{}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("codec %s: cannot cast %v (%T)", e.Enum, e.Value, e.Value)
}
