/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package model defines the contracts that every dxenigma definition type
// MUST implement.
//
// Definition types describe a machine without being one: the rotor kind,
// the rotor descriptor, the machine configuration and the per-message
// setting. They are plain values, produced by the text and YAML loaders and
// consumed by the enigma package, which turns them into live cipher objects.
//
// Every definition implements Model: it validates itself, round-trips
// through JSON and YAML, names its type, reports whether it is empty, and
// offers a redacted string for logs. Redaction matters here because a
// message setting (rotor order, positions, rings, plugboard) is the daily
// key of the machine and MUST NOT appear in production logs.
//
// Model values are immutable once validated and safe for concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the contracts required for dxenigma
// definition types.
//
// Example implementation:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error {
//	    if m.Field == "" {
//	        return errors.New("field required")
//	    }
//	    return nil
//	}
//
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Field == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be fast, deterministic and free of side effects. It checks
// structure only: a rotor descriptor can be validated without an alphabet,
// so checks that need one (notch symbols, cycle symbols, derangement) are
// left to the cipher constructors.
type Validatable interface {
	// Validate returns nil if the instance is valid, or an error describing
	// the first or all violations.
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON and
// YAML.
//
// Marshal methods MUST validate before encoding and unmarshal methods MUST
// validate after decoding, so that invalid definitions never cross a
// serialization boundary. Implementations use the local type alias pattern
// to avoid recursing into their own methods:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that offer a safe representation for
// logs.
//
// Redacted MUST hide key material (rotor positions, ring settings,
// plugboard) while keeping enough to correlate log entries. String MAY show
// everything and MUST NOT be used for production logging.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns the full representation.
	String() string
}

// Identifiable is implemented by types that name themselves.
//
// TypeName returns a constant CamelCase name without package prefix, used in
// error messages and structured logs.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can report emptiness.
type ZeroCheckable interface {
	// IsZero reports whether the instance holds no meaningful data.
	IsZero() bool
}
