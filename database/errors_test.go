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
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsSQLErrorMySQL(t *testing.T) {
	cases := map[uint16]SQLError{
		1054: NoColumnErr,
		1062: DuplicateKeyErr,
		1048: NotNullViolationErr,
		3819: CheckConstraintViolationErr,
		1265: DataTruncatedErr,
		1146: NoTableErr,
		9999: UnknownErr,
	}
	for number, want := range cases {
		err := fmt.Errorf("query failed: %w", &mysql.MySQLError{Number: number, Message: "x"})
		ok, kind := IsSQLError(err)
		if !ok || kind != want {
			t.Fatalf("number %d classified as %v, %v; want %v", number, ok, kind, want)
		}
	}
}

func TestIsSQLErrorMessageSniffing(t *testing.T) {
	cases := map[string]SQLError{
		"ERROR: value violates check constraint (SQLSTATE 23514)": CheckConstraintViolationErr,
		"constraint failed: CHECK constraint failed: plan":         CheckConstraintViolationErr,
		"no such table: subscriptions":                             NoTableErr,
		"UNIQUE constraint failed: subscriptions.id":               DuplicateKeyErr,
		"NOT NULL constraint failed: subscriptions.plan":           NotNullViolationErr,
		"no such column: plam":                                     NoColumnErr,
	}
	for msg, want := range cases {
		ok, kind := IsSQLError(errors.New(msg))
		if !ok || kind != want {
			t.Fatalf("%q classified as %v, %v; want %v", msg, ok, kind, want)
		}
	}
}

func TestIsSQLErrorUnrecognized(t *testing.T) {
	if ok, _ := IsSQLError(errors.New("connection refused")); ok {
		t.Fatalf("unrelated error classified as SQL error")
	}
	if ok, _ := IsSQLError(nil); ok {
		t.Fatalf("nil error classified as SQL error")
	}
}

func TestIsInvalidOption(t *testing.T) {
	if !IsInvalidOption(errors.New("CHECK constraint failed: subscriptions")) {
		t.Fatalf("check violation not recognized as invalid option")
	}
	if IsInvalidOption(errors.New("no such table: subscriptions")) {
		t.Fatalf("unrelated failure recognized as invalid option")
	}
}
