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

import (
	"errors"
	"testing"

	"github.com/tomoncle/enumkit/enum"
)

func TestFieldValue(t *testing.T) {
	c := ageGroupCodec(t)

	f := c.Field("Minor")
	v, err := f.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != int64(0) {
		t.Fatalf("Value() = %v (%T), want int64 0", v, v)
	}
}

func TestFieldValueDefault(t *testing.T) {
	c := ageGroupCodec(t)
	v, err := c.Field("").Value()
	if err != nil {
		t.Fatalf("Value on unset field: %v", err)
	}
	if v != int64(1) {
		t.Fatalf("unset field dumped %v, want default scalar 1", v)
	}
}

func TestFieldValueNoDefault(t *testing.T) {
	c := colorCodec(t)
	if _, err := c.Field("").Value(); err == nil {
		t.Fatalf("expected error writing unset field without default")
	}
}

func TestFieldScan(t *testing.T) {
	c := colorCodec(t)

	f := c.Field("")
	if err := f.Scan("blue"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if f.Label() != "Blue" {
		t.Fatalf("Scan set label %q", f.Label())
	}
	if err := f.Scan([]byte("red")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if f.Label() != "Red" {
		t.Fatalf("Scan set label %q", f.Label())
	}
}

func TestFieldScanResolvesByValue(t *testing.T) {
	// Red's stored scalar is the string "Blue", which is also another
	// entry's label. Scan receives stored scalars, so it must resolve
	// by value and give back Red, not treat "Blue" as a label.
	e, err := enum.NewBuilder("tricky").
		Add("Red", "Blue").
		Add("Blue", "Red").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	c := New(e)

	f := c.Field("Red")
	v, err := f.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "Blue" {
		t.Fatalf("Value() = %v, want stored scalar Blue", v)
	}

	g := c.Field("")
	if err := g.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if g.Label() != "Red" {
		t.Fatalf("wrote Red, read back %q: Scan must round-trip through the scalar domain", g.Label())
	}
}

func TestFieldScanStale(t *testing.T) {
	c := colorCodec(t)
	f := c.Field("")
	err := f.Scan("magenta")
	var notFound *enum.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for stale stored value, got %v", err)
	}
}

func TestFieldScanNull(t *testing.T) {
	withDefault := ageGroupCodec(t)
	f := withDefault.Field("")
	if err := f.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) with default: %v", err)
	}
	if f.Label() != "Adult" {
		t.Fatalf("Scan(nil) resolved %q, want default Adult", f.Label())
	}

	noDefault := colorCodec(t)
	g := noDefault.Field("")
	var invalid *InvalidInputError
	if err := g.Scan(nil); !errors.As(err, &invalid) {
		t.Fatalf("Scan(nil) without default: expected InvalidInputError, got %v", err)
	}
}

func TestFieldSet(t *testing.T) {
	c := ageGroupCodec(t)
	f := c.Field("")
	if f.IsSet() {
		t.Fatalf("fresh field reported set")
	}
	if err := f.Set(0); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if !f.IsSet() || f.Label() != "Minor" {
		t.Fatalf("Set(0) resolved %q", f.Label())
	}
	if err := f.Set("bogus"); err == nil {
		t.Fatalf("expected error setting out-of-domain value")
	}
}

func TestUnboundField(t *testing.T) {
	var f Field
	if _, err := f.Value(); err == nil {
		t.Fatalf("expected error on unbound Value")
	}
	if err := f.Scan("x"); err == nil {
		t.Fatalf("expected error on unbound Scan")
	}
}
