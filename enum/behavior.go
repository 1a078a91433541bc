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

// Behavior is a per-entry capability set: named operations meaningful
// for one label only, e.g. a display string or a computed property.
type Behavior map[string]func(Entry) interface{}

// Dispatch invokes the named operation for the entry carrying the
// label. Resolution order: the entry's own behavior, then the
// definition-wide fallback. The second return value is false when the
// label is unknown or neither table defines the operation.
func (e *Enum) Dispatch(label, op string) (interface{}, bool) {
	i, ok := e.index[label]
	if !ok {
		return nil, false
	}
	entry := e.entries[i]
	if fn, ok := entry.Behavior[op]; ok {
		return fn(entry), true
	}
	if fn, ok := e.fallback[op]; ok {
		return fn(entry), true
	}
	return nil, false
}
