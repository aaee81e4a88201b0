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

// Package rotor defines the serializable description of a rotor: its kind
// and its descriptor as written in a machine configuration.
package rotor

import (
	"encoding/json"

	"dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind selects the rotor variant a descriptor builds.
//
// In the configuration text the kind is the first character of the type
// token: 'R' for Reflecting, 'N' for Fixed, 'M' for Moving. The zero Kind
// is unset and fails validation, so a document that omits the kind is
// rejected rather than read as some default variant.
type Kind int

const (
	// Reflecting is the leftmost, non-rotating rotor whose wiring must be
	// a derangement. Its position is always the first symbol.
	Reflecting Kind = iota + 1

	// Fixed is a non-rotating, non-reflecting rotor. Its position is set
	// by hand for each message and never changes while encoding.
	Fixed

	// Moving is a rotor that advances as keys are pressed and carries
	// notches.
	Moving
)

var _ model.Model = (*Kind)(nil)

// String constants for Kind values used in YAML and JSON documents.
const (
	ReflectingStr = "reflecting"
	FixedStr      = "fixed"
	MovingStr     = "moving"
)

// String returns the canonical lowercase name, or "unknown".
func (k Kind) String() string {
	switch k {
	case Reflecting:
		return ReflectingStr
	case Fixed:
		return FixedStr
	case Moving:
		return MovingStr
	default:
		return "unknown"
	}
}

// Letter returns the type letter used in the configuration text, or 0 for
// an invalid Kind.
func (k Kind) Letter() byte {
	switch k {
	case Reflecting:
		return 'R'
	case Fixed:
		return 'N'
	case Moving:
		return 'M'
	default:
		return 0
	}
}

// ParseKind converts a textual representation into a Kind.
//
// Accepted inputs are the canonical names, their capitalized forms, and the
// single type letters of the configuration text:
//
//	"reflecting", "Reflecting", "R" -> Reflecting
//	"fixed", "Fixed", "N"           -> Fixed
//	"moving", "Moving", "M"         -> Moving
func ParseKind(s string) (Kind, error) {
	switch s {
	case ReflectingStr, "Reflecting", "REFLECTING", "R":
		return Reflecting, nil
	case FixedStr, "Fixed", "FIXED", "N":
		return Fixed, nil
	case MovingStr, "Moving", "MOVING", "M":
		return Moving, nil
	default:
		return 0, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// Valid reports whether k is one of the defined constants.
func (k Kind) Valid() bool {
	return k == Reflecting || k == Fixed || k == Moving
}

// Rotates reports whether rotors of this kind advance.
func (k Kind) Rotates() bool {
	return k == Moving
}

// MarshalJSON encodes a valid Kind as its canonical string.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts the strings understood by ParseKind and the
// numbers 1 (Reflecting), 2 (Fixed) and 3 (Moving).
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(str)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	if !Kind(i).Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	*k = Kind(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) TypeName() string { return "Kind" }
func (k Kind) Redacted() string { return k.String() }

// IsZero reports whether k is unset.
func (k Kind) IsZero() bool {
	return k == 0
}

// Validate returns a *ValidationError for the unset Kind and a
// *MarshalError for other values outside the constants.
func (k Kind) Validate() error {
	if k.IsZero() {
		return &errors.ValidationError{Type: "Kind", Reason: "must be set"}
	}
	if !k.Valid() {
		return &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return nil
}

// MarshalYAML encodes a valid Kind as its canonical string.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
