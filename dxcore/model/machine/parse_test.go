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
	"errors"
	"reflect"
	"testing"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
)

const enigmaText = `ABCDEFGHIJKLMNOPQRSTUVWXYZ
5 3
 I MQ      (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ)
 II ME     (FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT)
 III MV    (ABDHPEJT) (CFLVMZOYQIRWUKXSG)
 IV MJ     (AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)
 V MZ      (AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)
 Beta N    (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
 Gamma N   (AFNIRLBSQWVXGUZDKMTPCOYJHE)
 B R       (AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ)
           (VW)
 C R       (AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX)
           (UY)
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(enigmaText)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Alphabet != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" || cfg.Slots != 5 || cfg.Pawls != 3 {
		t.Errorf("header = %q %d %d", cfg.Alphabet, cfg.Slots, cfg.Pawls)
	}
	if len(cfg.Rotors) != 9 {
		t.Fatalf("len(Rotors) = %d, want 9", len(cfg.Rotors))
	}

	tests := []struct {
		name string
		want rotor.Spec
	}{
		{"I", rotor.Spec{Name: "I", Kind: rotor.Moving, Notches: "Q", Cycles: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ)"}},
		{"V", rotor.Spec{Name: "V", Kind: rotor.Moving, Notches: "Z", Cycles: "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)"}},
		{"Gamma", rotor.Spec{Name: "Gamma", Kind: rotor.Fixed, Cycles: "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"}},
		{"B", rotor.Spec{Name: "B", Kind: rotor.Reflecting,
			Cycles: "(AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ) (VW)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.Rotor(tt.name)
			if !ok {
				t.Fatalf("Rotor(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("Rotor(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseConfig_Layout(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"counts on separate lines", "ABCD\n2\n1\nR1 R (AC) (BD)\nM1 MA (ABCD)\n"},
		{"leading blank lines", "\n\n  ABCD  \n2 1\nR1 R (AC) (BD)\nM1 MA (ABCD)"},
		{"cycle spread over lines", "ABCD\n2 1\nR1 R (AC)\n(BD)\nM1 MA\n(ABCD)\n"},
		{"spaces inside cycles", "ABCD\n2 1\nR1 R ( A C ) (B D)\nM1 MA (ABCD)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.text)
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if cfg.Alphabet != "ABCD" || cfg.Slots != 2 || cfg.Pawls != 1 || len(cfg.Rotors) != 2 {
				t.Errorf("ParseConfig() = %+v", cfg)
			}
			if cfg.Rotors[0].Kind != rotor.Reflecting || cfg.Rotors[1].Notches != "A" {
				t.Errorf("rotors = %+v", cfg.Rotors)
			}
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", dxerrors.ErrTruncated},
		{"blank", "  \n\n", dxerrors.ErrTruncated},
		{"no slot count", "ABCD\n", dxerrors.ErrTruncated},
		{"no pawl count", "ABCD\n2\n", dxerrors.ErrTruncated},
		{"slot count not a number", "ABCD\nfive 1\n", dxerrors.ErrInvalidRotorCount},
		{"pawl count not a number", "ABCD\n2 x\n", dxerrors.ErrInvalidPawlCount},
		{"one slot", "ABCD\n1 0\nR1 R (AC) (BD)\n", dxerrors.ErrInvalidRotorCount},
		{"pawls equal slots", "ABCD\n2 2\nR1 R (AC) (BD)\nM1 MA (ABCD)\n", dxerrors.ErrInvalidPawlCount},
		{"too few rotors", "ABCD\n3 1\nR1 R (AC) (BD)\nM1 MA (ABCD)\n", dxerrors.ErrInsufficientRotors},
		{"duplicate rotor", "ABCD\n2 1\nR1 R (AC) (BD)\nR1 MA (ABCD)\n", dxerrors.ErrDuplicateRotorName},
		{"missing type", "ABCD\n2 1\nR1 R (AC) (BD)\nM1", dxerrors.ErrBadRotorDescriptor},
		{"cycle instead of name", "ABCD\n2 1\n(AC) R\n", dxerrors.ErrBadRotorDescriptor},
		{"unknown type", "ABCD\n2 1\nR1 X (AC) (BD)\nM1 MA (ABCD)\n", dxerrors.ErrBadRotorDescriptor},
		{"notches on reflector", "ABCD\n2 1\nR1 RA (AC) (BD)\nM1 MA (ABCD)\n", dxerrors.ErrBadRotorDescriptor},
		{"unbalanced cycle", "ABCD\n2 1\nR1 R (AC) (BD\nM1 MA (ABCD)\n", dxerrors.ErrBadRotorDescriptor},
		{"star name", "ABCD\n2 1\n* R (AC) (BD)\nM1 MA (ABCD)\n", dxerrors.ErrBadRotorDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfig_TextRoundTrip(t *testing.T) {
	cfg, err := ParseConfig(enigmaText)
	if err != nil {
		t.Fatal(err)
	}
	again, err := ParseConfig(cfg.Text())
	if err != nil {
		t.Fatalf("ParseConfig(Text()) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, again) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", cfg, again)
	}
}

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name string
		line string
		k    int
		want Setting
	}{
		{
			"positions and plugboard", "* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)", 5,
			Setting{Rotors: []string{"B", "Beta", "III", "IV", "I"}, Positions: "AXLE",
				Plugboard: "(HQ) (EX) (IP) (TR) (BY)"},
		},
		{
			"ring setting", "* B Beta III IV I AXLE BBBB (HQ)", 5,
			Setting{Rotors: []string{"B", "Beta", "III", "IV", "I"}, Positions: "AXLE", Rings: "BBBB",
				Plugboard: "(HQ)"},
		},
		{
			"no plugboard", "*  R1   M1 A", 2,
			Setting{Rotors: []string{"R1", "M1"}, Positions: "A"},
		},
		{
			"spaces inside plugboard cycle", "* R1 M1 A ( A B )", 2,
			Setting{Rotors: []string{"R1", "M1"}, Positions: "A", Plugboard: "( A B )"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetting(tt.line, tt.k)
			if err != nil {
				t.Fatalf("ParseSetting() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSetting() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSetting_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", dxerrors.ErrMissingSetting},
		{"no star", "B Beta III IV I AXLE", dxerrors.ErrMissingSetting},
		{"star glued to name", "*B Beta III IV I AXLE", dxerrors.ErrMissingSetting},
		{"too few names", "* B Beta III", dxerrors.ErrWrongRotorCount},
		{"plugboard among names", "* B Beta (AB) IV I AXLE", dxerrors.ErrWrongRotorCount},
		{"no positions", "* B Beta III IV I", dxerrors.ErrWrongSettingLength},
		{"plugboard instead of positions", "* B Beta III IV I (AB)", dxerrors.ErrWrongSettingLength},
		{"short positions", "* B Beta III IV I AXL", dxerrors.ErrWrongSettingLength},
		{"long rings", "* B Beta III IV I AXLE AAAAA", dxerrors.ErrWrongSettingLength},
		{"extra token", "* B Beta III IV I AXLE AAAA ZZZZ", dxerrors.ErrMalformedSetting},
		{"token after plugboard", "* B Beta III IV I AXLE (AB) CD", dxerrors.ErrMalformedSetting},
		{"unbalanced plugboard", "* B Beta III IV I AXLE (AB", dxerrors.ErrMalformedSetting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSetting(tt.line, 5)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSetting(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestParseSetting_LineRoundTrip(t *testing.T) {
	line := "* B Beta III IV I AXLE BCDE (HQ) (EX)"
	s, err := ParseSetting(line, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Line(); got != line {
		t.Errorf("Line() = %q, want %q", got, line)
	}
}
