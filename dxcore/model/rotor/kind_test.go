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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"Reflecting", Reflecting, "reflecting"},
		{"Fixed", Fixed, "fixed"},
		{"Moving", Moving, "moving"},
		{"Unknown", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"reflecting", "reflecting", Reflecting, false},
		{"Reflecting", "Reflecting", Reflecting, false},
		{"R", "R", Reflecting, false},
		{"fixed", "fixed", Fixed, false},
		{"FIXED", "FIXED", Fixed, false},
		{"N", "N", Fixed, false},
		{"moving", "moving", Moving, false},
		{"M", "M", Moving, false},

		{"empty", "", Fixed, true},
		{"lowercase letter", "m", Fixed, true},
		{"invalid", "rotating", Fixed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseKind() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_Letter(t *testing.T) {
	for kind, want := range map[Kind]byte{Reflecting: 'R', Fixed: 'N', Moving: 'M', Kind(7): 0} {
		if got := kind.Letter(); got != want {
			t.Errorf("%v.Letter() = %q, want %q", kind, got, want)
		}
	}
	for _, kind := range []Kind{Reflecting, Fixed, Moving} {
		parsed, err := ParseKind(string(kind.Letter()))
		if err != nil || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", kind.Letter(), parsed, err, kind)
		}
	}
}

func TestKind_Predicates(t *testing.T) {
	if !Moving.Rotates() || Fixed.Rotates() || Reflecting.Rotates() {
		t.Error("only Moving should rotate")
	}
	if Kind(0).Valid() || Kind(-1).Valid() || Kind(4).Valid() {
		t.Error("out-of-range kinds should be invalid")
	}
	if Kind(4).Validate() == nil {
		t.Error("Validate(4) = nil, want error")
	}
	var unset Kind
	if unset.Validate() == nil {
		t.Error("Validate(unset) = nil, want error")
	}
	if !unset.IsZero() || Reflecting.IsZero() || Moving.IsZero() {
		t.Error("IsZero should hold only for the unset kind")
	}
}

func TestKind_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"string", `"moving"`, Moving, false},
		{"letter", `"N"`, Fixed, false},
		{"number", `1`, Reflecting, false},
		{"number moving", `3`, Moving, false},
		{"unset number", `0`, Reflecting, true},
		{"bad number", `5`, Reflecting, true},
		{"bad string", `"spinning"`, Reflecting, true},
		{"bool", `true`, Reflecting, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k Kind
			err := json.Unmarshal([]byte(tt.input), &k)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && k != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, k, tt.want)
			}
		})
	}

	data, err := json.Marshal(Fixed)
	if err != nil || string(data) != `"fixed"` {
		t.Errorf("Marshal(Fixed) = %s, %v", data, err)
	}
	if _, err := json.Marshal(Kind(42)); err == nil {
		t.Error("Marshal(42) = nil error")
	}
}

func TestKind_TextAndYAML(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("M")); err != nil || k != Moving {
		t.Errorf("UnmarshalText(M) = %v, %v", k, err)
	}
	text, err := Reflecting.MarshalText()
	if err != nil || string(text) != "reflecting" {
		t.Errorf("MarshalText() = %s, %v", text, err)
	}

	var doc struct {
		Kind Kind `yaml:"kind"`
	}
	if err := yaml.Unmarshal([]byte("kind: fixed\n"), &doc); err != nil || doc.Kind != Fixed {
		t.Errorf("yaml.Unmarshal = %v, %v", doc.Kind, err)
	}
	if err := yaml.Unmarshal([]byte("kind: wobbly\n"), &doc); err == nil {
		t.Error("yaml.Unmarshal(wobbly) = nil error")
	}
	doc.Kind = Moving
	out, err := yaml.Marshal(doc)
	if err != nil || string(out) != "kind: moving\n" {
		t.Errorf("yaml.Marshal = %q, %v", out, err)
	}
}
