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

package machine

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Setting is the key of one message: which rotors go in which slots, where
// they start, how their rings are set, and how the plugboard is wired.
//
// The text form is
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//	* B Beta III IV I AXLE AAAA (HQ)
//
// with one name per slot from left to right, then one position symbol per
// non-reflector slot, then an optional ring setting of the same length, then
// the plugboard in cycle notation.
type Setting struct {
	Rotors    []string `json:"rotors" yaml:"rotors"`
	Positions string   `json:"positions" yaml:"positions"`
	Rings     string   `json:"rings,omitempty" yaml:"rings,omitempty"`
	Plugboard string   `json:"plugboard,omitempty" yaml:"plugboard,omitempty"`
}

var _ model.Model = (*Setting)(nil)

// Validate checks the shape of s. It cannot check symbols or rotor names,
// which depend on the machine the setting is applied to.
func (s Setting) Validate() error {
	if len(s.Rotors) == 0 {
		return dxerrors.ErrWrongRotorCount.With("no rotors named")
	}
	for i, name := range s.Rotors {
		if name == "" || strings.ContainsAny(name, " \t\r\n") || name[0] == '(' || name[0] == '*' {
			return dxerrors.ErrMalformedSetting.With("rotor name %d: %q", i, name)
		}
	}

	n := utf8.RuneCountInString(s.Positions)
	if n == 0 {
		return dxerrors.ErrWrongSettingLength.With("no positions")
	}
	if n != len(s.Rotors)-1 {
		return dxerrors.ErrWrongSettingLength.With("%d positions for %d rotors", n, len(s.Rotors))
	}
	if s.Rings != "" && utf8.RuneCountInString(s.Rings) != n {
		return dxerrors.ErrWrongSettingLength.With("ring setting has %d symbols, positions have %d",
			utf8.RuneCountInString(s.Rings), n)
	}

	if p := strings.TrimSpace(s.Plugboard); p != "" && p[0] != '(' {
		return dxerrors.ErrMalformedSetting.With("plugboard %q", s.Plugboard)
	}
	return nil
}

// Line renders s as a setting line.
func (s Setting) Line() string {
	parts := make([]string, 0, len(s.Rotors)+4)
	parts = append(parts, "*")
	parts = append(parts, s.Rotors...)
	parts = append(parts, s.Positions)
	if s.Rings != "" {
		parts = append(parts, s.Rings)
	}
	if s.Plugboard != "" {
		parts = append(parts, s.Plugboard)
	}
	return strings.Join(parts, " ")
}

// String returns the setting line. It is key material; log Redacted instead.
func (s Setting) String() string { return s.Line() }

// Redacted keeps only the shape of the key.
func (s Setting) Redacted() string {
	return fmt.Sprintf("Setting{Rotors:%d Positions:[REDACTED] Rings:[REDACTED] Plugs:%d}",
		len(s.Rotors), strings.Count(s.Plugboard, "("))
}

func (s Setting) TypeName() string { return "Setting" }

// IsZero reports whether s is empty.
func (s Setting) IsZero() bool {
	return len(s.Rotors) == 0 && s.Positions == "" && s.Rings == "" && s.Plugboard == ""
}

// MarshalJSON validates s before encoding.
func (s Setting) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Setting
	return json.Marshal((alias)(s))
}

// UnmarshalJSON decodes and validates s.
func (s *Setting) UnmarshalJSON(data []byte) error {
	type alias Setting
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := Setting(tmp).Validate(); err != nil {
		return err
	}
	*s = Setting(tmp)
	return nil
}

// MarshalYAML validates s before encoding.
func (s Setting) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type alias Setting
	return (alias)(s), nil
}

// UnmarshalYAML decodes and validates s.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	type alias Setting
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	if err := Setting(tmp).Validate(); err != nil {
		return err
	}
	*s = Setting(tmp)
	return nil
}
