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
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	color := Define("color").Add("Red", "red").Add("Blue", "blue").MustBuild()
	level := Define("level").Add("Basic", "basic").MustBuild()
	r.Register(color)
	r.Register(level)

	if !reflect.DeepEqual(r.Names(), []string{"color", "level"}) {
		t.Fatalf("Names() = %v", r.Names())
	}

	got, ok := r.Lookup("color")
	if !ok || got != color {
		t.Fatalf("Lookup(color) = %v, %v", got, ok)
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("Lookup(nope) should miss")
	}

	c, ok := r.Codec("level")
	if !ok {
		t.Fatalf("Codec(level) missing")
	}
	if label, err := c.Load("basic"); err != nil || label != "Basic" {
		t.Fatalf("Load(basic) = %q, %v", label, err)
	}
}

func TestRegistryRebind(t *testing.T) {
	r := NewRegistry()

	first := Define("color").Add("Red", "red").MustBuild()
	r.Register(first)
	second := Define("color").Add("Red", "red").Add("Blue", "blue").MustBuild()
	r.Register(second)

	// Rebinding keeps the name's registration slot and never touches
	// the previously built enum.
	if !reflect.DeepEqual(r.Names(), []string{"color"}) {
		t.Fatalf("Names() = %v", r.Names())
	}
	got, _ := r.Lookup("color")
	if got != second {
		t.Fatalf("Lookup returned stale binding")
	}
	if first.Len() != 1 {
		t.Fatalf("earlier construction was mutated")
	}
}

func TestDefaultRegistry(t *testing.T) {
	e := Define("test_default_registry").Add("On", "on").MustBuild()
	Register(e)
	if _, ok := Lookup("test_default_registry"); !ok {
		t.Fatalf("default registry lookup failed")
	}
	if _, ok := Codec("test_default_registry"); !ok {
		t.Fatalf("default registry codec missing")
	}
	found := false
	for _, name := range Names() {
		if name == "test_default_registry" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() missing registered enum")
	}
}
