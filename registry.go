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

package enumkit

import (
	"sync"

	"github.com/tomoncle/enumkit/codec"
	"github.com/tomoncle/enumkit/enum"
)

var defaultRegistry = NewRegistry()

// Registry stores frozen enums by name together with their codecs.
// Registering an existing name rebinds it to the new construction; the
// previously registered enum itself is never mutated, so callers
// holding it keep a consistent view.
type Registry interface {
	Register(e *enum.Enum)
	Lookup(name string) (*enum.Enum, bool)
	Codec(name string) (*codec.Codec, bool)
	Names() []string
}

type enumRegistry struct {
	mutex  sync.RWMutex
	order  []string
	enums  map[string]*enum.Enum
	codecs map[string]*codec.Codec
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &enumRegistry{
		enums:  make(map[string]*enum.Enum),
		codecs: make(map[string]*codec.Codec),
	}
}

func (r *enumRegistry) Register(e *enum.Enum) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	name := e.Name()
	if _, exists := r.enums[name]; !exists {
		r.order = append(r.order, name)
	}
	r.enums[name] = e
	r.codecs[name] = codec.New(e)
}

func (r *enumRegistry) Lookup(name string) (*enum.Enum, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

func (r *enumRegistry) Codec(name string) (*codec.Codec, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	c, ok := r.codecs[name]
	return c, ok
}

func (r *enumRegistry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Define starts a builder for a new enum definition.
func Define(name string) *enum.Builder {
	return enum.NewBuilder(name)
}

// Register adds a frozen enum to the default registry.
func Register(e *enum.Enum) {
	defaultRegistry.Register(e)
}

// Lookup finds an enum in the default registry.
func Lookup(name string) (*enum.Enum, bool) {
	return defaultRegistry.Lookup(name)
}

// Codec finds the codec of a registered enum.
func Codec(name string) (*codec.Codec, bool) {
	return defaultRegistry.Codec(name)
}

// Names lists registered enum names in registration order.
func Names() []string {
	return defaultRegistry.Names()
}
