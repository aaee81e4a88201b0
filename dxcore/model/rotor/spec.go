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

package rotor

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Spec describes one rotor of a machine configuration.
//
// In the configuration text a descriptor reads
//
//	name type[notches] (cycle) (cycle) ...
//
// where type is R, N or M and notches follow M directly, e.g.
// "I MQ (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ)".
//
// Spec checks structure only. Whether the notch and cycle symbols belong to
// the alphabet, and whether a reflector's wiring is a derangement, is
// decided when the rotor is built.
type Spec struct {
	// Name identifies the rotor in setting lines. It MUST NOT be empty,
	// contain whitespace, or start with '(' or '*'.
	Name string `json:"name" yaml:"name"`

	// Kind selects the rotor variant. It MUST be set.
	Kind Kind `json:"kind" yaml:"kind"`

	// Notches lists the notch symbols of a moving rotor. Other kinds MUST
	// leave it empty.
	Notches string `json:"notches,omitempty" yaml:"notches,omitempty"`

	// Cycles is the wiring in cycle notation. Empty means identity.
	Cycles string `json:"cycles" yaml:"cycles"`
}

var _ model.Model = (*Spec)(nil)

// Validate checks the name, the kind and the notch field.
func (s Spec) Validate() error {
	if s.Name == "" {
		return &errors.ValidationError{Type: "Spec", Field: "Name", Reason: "must not be empty"}
	}
	if strings.IndexFunc(s.Name, unicode.IsSpace) >= 0 {
		return &errors.ValidationError{Type: "Spec", Field: "Name", Reason: "must not contain whitespace", Value: s.Name}
	}
	if s.Name[0] == '(' || s.Name[0] == '*' {
		return &errors.ValidationError{Type: "Spec", Field: "Name", Reason: "must not start with '(' or '*'", Value: s.Name}
	}
	if s.Kind.IsZero() {
		return &errors.ValidationError{Type: "Spec", Field: "Kind", Reason: "must be set"}
	}
	if !s.Kind.Valid() {
		return &errors.ValidationError{Type: "Spec", Field: "Kind", Reason: "unknown rotor kind", Value: int(s.Kind)}
	}
	if s.Notches != "" && s.Kind != Moving {
		return &errors.ValidationError{Type: "Spec", Field: "Notches", Reason: "only moving rotors have notches", Value: s.Notches}
	}
	if strings.IndexFunc(s.Notches, unicode.IsSpace) >= 0 {
		return &errors.ValidationError{Type: "Spec", Field: "Notches", Reason: "must not contain whitespace", Value: s.Notches}
	}
	return nil
}

// Line returns the descriptor in configuration-text form.
func (s Spec) Line() string {
	head := s.Name + " " + string(s.Kind.Letter()) + s.Notches
	if s.Cycles == "" {
		return head
	}
	return head + " " + s.Cycles
}

// String returns the configuration-text form.
func (s Spec) String() string { return s.Line() }

// Redacted omits the wiring.
func (s Spec) Redacted() string {
	return fmt.Sprintf("Spec{Name:%s Kind:%s}", s.Name, s.Kind)
}

func (s Spec) TypeName() string { return "Spec" }

// IsZero reports whether s has no name and no wiring.
func (s Spec) IsZero() bool {
	return s.Name == "" && s.Notches == "" && s.Cycles == "" && s.Kind.IsZero()
}

// MarshalJSON validates s before encoding.
func (s Spec) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Spec
	return json.Marshal((alias)(s))
}

// UnmarshalJSON decodes and validates s.
func (s *Spec) UnmarshalJSON(data []byte) error {
	type alias Spec
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := Spec(tmp).Validate(); err != nil {
		return err
	}
	*s = Spec(tmp)
	return nil
}

// MarshalYAML validates s before encoding.
func (s Spec) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Spec
	return (alias)(s), nil
}

// UnmarshalYAML decodes and validates s.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	type alias Spec
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	if err := Spec(tmp).Validate(); err != nil {
		return err
	}
	*s = Spec(tmp)
	return nil
}
