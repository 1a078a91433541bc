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

// Package enumkit turns declarative descriptions of closed option sets
// into validated, immutable enum types with bidirectional label/value
// lookup, an optional default, and persistence codecs for SQL storage.
//
// Definitions are assembled once through enum.NewBuilder or a YAML
// manifest, validated, and frozen; everything after that point is
// read-only and safe for concurrent use. The codec package adapts a
// frozen enum to database columns, and the bridge package exposes its
// labels to schema layers under external naming conventions.
package enumkit
