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
	"sync"

	"github.com/tomoncle/enumkit/utils"
)

var (
	globalLogger   Logger
	globalLoggerMu sync.RWMutex
)

// Logger is the indirection this package logs through, so embedding
// applications can route database messages into their own logger.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// InitLogger installs a custom logger; the first installation wins.
func InitLogger(log Logger) {
	if log == nil {
		return
	}
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		globalLogger = log
	}
}

// GetLogger returns the installed logger, falling back to a logrus
// logger named "database".
func GetLogger() Logger {
	globalLoggerMu.RLock()
	l := globalLogger
	globalLoggerMu.RUnlock()
	if l != nil {
		return l
	}
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger == nil {
		globalLogger = &logrusAdapter{log: utils.NewLogger("database")}
	}
	return globalLogger
}

type logrusAdapter struct {
	log *utils.Logger
}

func formatFields(msg string, fields []interface{}) string {
	if len(fields) == 0 {
		return msg
	}
	out := msg
	for i := 0; i+1 < len(fields); i += 2 {
		out += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		out += fmt.Sprintf(" %v", fields[len(fields)-1])
	}
	return out
}

func (a *logrusAdapter) Debug(msg string, fields ...interface{}) {
	a.log.Debug(formatFields(msg, fields))
}

func (a *logrusAdapter) Info(msg string, fields ...interface{}) {
	a.log.Info(formatFields(msg, fields))
}

func (a *logrusAdapter) Warn(msg string, fields ...interface{}) {
	a.log.Warn(formatFields(msg, fields))
}

func (a *logrusAdapter) Error(msg string, fields ...interface{}) {
	a.log.Error(formatFields(msg, fields))
}
