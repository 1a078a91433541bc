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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomoncle/enumkit/enum"
	"github.com/tomoncle/enumkit/utils"
)

var logger = utils.NewLogger("enumkit")

// Manifest is the YAML declaration surface:
//
//	enums:
//	  - name: color
//	    type: string
//	    default: Blue
//	    entries:
//	      - label: Red
//	        value: red
//	      - label: Blue
//	        value: blue
type Manifest struct {
	Enums []ManifestEnum `yaml:"enums"`
}

// ManifestEnum declares one enum: name, optional scalar type (string
// when omitted), optional default label, ordered entries.
type ManifestEnum struct {
	Name    string          `yaml:"name"`
	Type    string          `yaml:"type"`
	Default string          `yaml:"default"`
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry declares one label/value pair.
type ManifestEntry struct {
	Label string      `yaml:"label"`
	Value interface{} `yaml:"value"`
}

// ParseManifest builds every enum declared in a YAML document. The
// first malformed declaration aborts the whole parse with no enums
// returned: a bad definition must block the surrounding system from
// starting rather than leave a half-usable set.
func ParseManifest(data []byte) ([]*enum.Enum, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("enumkit: parse manifest: %w", err)
	}
	if len(m.Enums) == 0 {
		return nil, fmt.Errorf("enumkit: manifest declares no enums")
	}

	enums := make([]*enum.Enum, 0, len(m.Enums))
	for _, decl := range m.Enums {
		e, err := decl.build()
		if err != nil {
			return nil, err
		}
		enums = append(enums, e)
	}
	return enums, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) ([]*enum.Enum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("enumkit: read manifest: %w", err)
	}
	return ParseManifest(data)
}

// RegisterManifest loads a manifest and registers every enum in the
// default registry. Definition errors are logged loudly and returned.
func RegisterManifest(path string) error {
	enums, err := LoadManifest(path)
	if err != nil {
		logger.Errorf("manifest %s rejected: %v", path, err)
		return err
	}
	for _, e := range enums {
		Register(e)
		logger.Infof("registered %v from %s", e, path)
	}
	return nil
}

func (d ManifestEnum) build() (*enum.Enum, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("enumkit: manifest enum without a name")
	}
	tag, err := enum.ParseTypeTag(d.Type)
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", d.Name, err)
	}

	b := enum.NewBuilder(d.Name).Type(tag)
	for _, entry := range d.Entries {
		if entry.Label == "" {
			return nil, fmt.Errorf("enum %s: entry without a label", d.Name)
		}
		if entry.Value == nil {
			return nil, fmt.Errorf("enum %s: entry %q without a value", d.Name, entry.Label)
		}
		b.Add(entry.Label, coerceScalar(tag, entry.Value))
	}
	if d.Default != "" {
		b.Default(d.Default)
	}
	e, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("enumkit: manifest: %w", err)
	}
	return e, nil
}

// coerceScalar aligns YAML's decoded kinds with the declared tag where
// the conversion is lossless, e.g. YAML integers decode as int even
// for an int64 enum. Anything that does not line up is left alone for
// the validator to reject.
func coerceScalar(tag enum.TypeTag, value interface{}) enum.Scalar {
	switch tag {
	case enum.Int64:
		if n, ok := value.(int); ok {
			return int64(n)
		}
	case enum.Float:
		if n, ok := value.(int); ok {
			return float64(n)
		}
	}
	return value
}
