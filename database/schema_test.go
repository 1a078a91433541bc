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

package database

import (
	"testing"

	"github.com/tomoncle/enumkit/enum"
)

func TestColumnDDLString(t *testing.T) {
	e, err := enum.NewBuilder("plan").
		Add("Basic", "basic").
		Add("Premium", "premium").
		Default("Basic").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := ColumnDDL(e, "plan")
	want := "plan VARCHAR(7) NOT NULL DEFAULT 'basic' CHECK (plan IN ('basic', 'premium'))"
	if got != want {
		t.Fatalf("ColumnDDL = %q, want %q", got, want)
	}
}

func TestColumnDDLInt(t *testing.T) {
	e, err := enum.NewBuilder("age_group").
		Type(enum.Int).
		Add("Minor", 0).
		Add("Adult", 1).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := ColumnDDL(e, "age_group")
	want := "age_group INTEGER NOT NULL CHECK (age_group IN (0, 1))"
	if got != want {
		t.Fatalf("ColumnDDL = %q, want %q", got, want)
	}
}

func TestColumnTypes(t *testing.T) {
	cases := []struct {
		tag   enum.TypeTag
		value enum.Scalar
		want  string
	}{
		{enum.Int64, int64(1), "BIGINT"},
		{enum.Bool, true, "BOOLEAN"},
		{enum.Float, 1.5, "DOUBLE PRECISION"},
	}
	for _, tc := range cases {
		e, err := enum.NewBuilder("t").Type(tc.tag).Add("A", tc.value).Build()
		if err != nil {
			t.Fatalf("build %s: %v", tc.tag, err)
		}
		if got := ColumnType(e); got != tc.want {
			t.Fatalf("ColumnType(%s) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestCheckConstraintSkipped(t *testing.T) {
	e, err := enum.NewBuilder("flag").Type(enum.Bool).Add("On", true).Add("Off", false).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if check := CheckConstraint(e, "flag"); check != "" {
		t.Fatalf("boolean enum should not emit a check, got %q", check)
	}
}

func TestSQLLiteralQuoting(t *testing.T) {
	e, err := enum.NewBuilder("quote").Add("It", "it's").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := CheckConstraint(e, "q")
	want := "CHECK (q IN ('it''s'))"
	if got != want {
		t.Fatalf("CheckConstraint = %q, want %q", got, want)
	}
}
