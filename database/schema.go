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
	"fmt"
	"strconv"
	"strings"

	"github.com/tomoncle/enumkit/enum"
)

// ColumnDDL returns the column definition fragment for an enum-typed
// column: type from the declared scalar type, NOT NULL, a DEFAULT for
// enums declaring one, and a CHECK constraint enumerating the legal
// values. The fragment is plain SQL accepted by MySQL, PostgreSQL and
// SQLite.
func ColumnDDL(e *enum.Enum, column string) string {
	var b strings.Builder
	b.WriteString(column)
	b.WriteString(" ")
	b.WriteString(ColumnType(e))
	b.WriteString(" NOT NULL")
	if value, ok := e.DefaultValue(); ok {
		b.WriteString(" DEFAULT ")
		b.WriteString(sqlLiteral(value))
	}
	if check := CheckConstraint(e, column); check != "" {
		b.WriteString(" ")
		b.WriteString(check)
	}
	return b.String()
}

// ColumnType maps the enum's declared scalar type to a column type.
// VARCHAR width is sized to the longest value.
func ColumnType(e *enum.Enum) string {
	switch e.Type() {
	case enum.String:
		width := 1
		for _, v := range e.Values() {
			if n := len(v.(string)); n > width {
				width = n
			}
		}
		return fmt.Sprintf("VARCHAR(%d)", width)
	case enum.Int:
		return "INTEGER"
	case enum.Int64:
		return "BIGINT"
	case enum.Bool:
		return "BOOLEAN"
	case enum.Float:
		return "DOUBLE PRECISION"
	default:
		return "VARCHAR(255)"
	}
}

// CheckConstraint returns the CHECK clause restricting a column to the
// enum's values, or "" for boolean and float enums where the column
// type itself, or float comparison semantics, make the check useless.
func CheckConstraint(e *enum.Enum, column string) string {
	switch e.Type() {
	case enum.Bool, enum.Float:
		return ""
	}
	literals := make([]string, 0, e.Len())
	for _, v := range e.Values() {
		literals = append(literals, sqlLiteral(v))
	}
	return fmt.Sprintf("CHECK (%s IN (%s))", column, strings.Join(literals, ", "))
}

func sqlLiteral(value enum.Scalar) string {
	switch v := value.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
