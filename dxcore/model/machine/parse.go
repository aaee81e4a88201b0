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
	"strconv"
	"strings"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"golang.org/x/text/unicode/norm"
)

// ParseConfig reads the configuration-text form:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	 I MQ      (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ)
//	 Beta N    (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	 B R       (AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ)
//	           (VW)
//
// The first non-blank line is the alphabet. The slot and pawl counts follow
// as whitespace-separated integers and may share a line. Each rotor
// descriptor is a name, a type token, and the cycles of its wiring, which
// may continue over several lines. The text is NFC-normalized first.
//
// Errors: ErrTruncated when the alphabet or a count is missing,
// ErrInvalidRotorCount and ErrInvalidPawlCount for counts that are not
// integers, ErrBadRotorDescriptor for a malformed descriptor, and whatever
// Config.Validate reports for the result.
func ParseConfig(text string) (Config, error) {
	text = norm.NFC.String(text)

	alphabet, rest, ok := firstLine(text)
	if !ok {
		return Config{}, dxerrors.ErrTruncated.With("no alphabet line")
	}

	toks := strings.Fields(rest)
	if len(toks) == 0 {
		return Config{}, dxerrors.ErrTruncated.With("no rotor slot count")
	}
	slots, err := strconv.Atoi(toks[0])
	if err != nil {
		return Config{}, dxerrors.ErrInvalidRotorCount.With("%q is not a number", toks[0])
	}
	if len(toks) == 1 {
		return Config{}, dxerrors.ErrTruncated.With("no pawl count")
	}
	pawls, err := strconv.Atoi(toks[1])
	if err != nil {
		return Config{}, dxerrors.ErrInvalidPawlCount.With("%q is not a number", toks[1])
	}

	cfg := Config{Alphabet: alphabet, Slots: slots, Pawls: pawls}
	for i := 2; i < len(toks); {
		spec, next, err := parseRotor(toks, i)
		if err != nil {
			return Config{}, err
		}
		cfg.Rotors = append(cfg.Rotors, spec)
		i = next
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// firstLine returns the first non-blank line of text, trimmed, and the text
// after it.
func firstLine(text string) (line, rest string, ok bool) {
	for text != "" {
		line, rest, _ = strings.Cut(text, "\n")
		if l := strings.TrimSpace(line); l != "" {
			return l, rest, true
		}
		text = rest
	}
	return "", "", false
}

// parseRotor reads the descriptor starting at toks[i] and returns the index
// of the first token after it.
func parseRotor(toks []string, i int) (rotor.Spec, int, error) {
	name := toks[i]
	if name[0] == '(' || name[0] == ')' {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("expected rotor name, got %q", name)
	}
	i++
	if i == len(toks) {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("rotor %s has no type", name)
	}

	typ := toks[i]
	kind, err := rotor.ParseKind(typ[:1])
	if err != nil {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("rotor %s has type %q", name, typ)
	}
	notches := typ[1:]
	if kind != rotor.Moving && notches != "" {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("rotor %s: only moving rotors have notches", name)
	}
	i++

	cycles, i, ok := collectCycles(toks, i)
	if !ok {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("rotor %s has unbalanced cycles", name)
	}

	spec := rotor.Spec{Name: name, Kind: kind, Notches: notches, Cycles: cycles}
	if err := spec.Validate(); err != nil {
		return rotor.Spec{}, 0, dxerrors.ErrBadRotorDescriptor.With("rotor %s: %v", name, err)
	}
	return spec, i, nil
}

// collectCycles joins the tokens from toks[i] that belong to cycle notation:
// every token that opens a group, and every token inside an open group. It
// returns false if a group is left open.
func collectCycles(toks []string, i int) (string, int, bool) {
	var parts []string
	depth := 0
	for ; i < len(toks); i++ {
		tok := toks[i]
		if depth == 0 && tok[0] != '(' {
			break
		}
		depth += strings.Count(tok, "(") - strings.Count(tok, ")")
		parts = append(parts, tok)
	}
	return strings.Join(parts, " "), i, depth == 0
}

// ParseSetting reads a setting line for a machine with k slots:
//
//	* B Beta III IV I AXLE [RINGS] (HQ) (EX) ...
//
// Errors: ErrMissingSetting when the line does not start with a lone "*",
// ErrWrongRotorCount when fewer than k rotor names follow,
// ErrWrongSettingLength when the position setting is missing or has the
// wrong length, and ErrMalformedSetting for tokens after the ring setting
// that are not plugboard cycles.
func ParseSetting(line string, k int) (Setting, error) {
	toks := strings.Fields(norm.NFC.String(line))
	if len(toks) == 0 || toks[0] != "*" {
		return Setting{}, dxerrors.ErrMissingSetting.With("%q", line)
	}
	toks = toks[1:]

	var s Setting
	for len(s.Rotors) < k {
		if len(toks) == 0 || toks[0][0] == '(' {
			return Setting{}, dxerrors.ErrWrongRotorCount.With("%d rotor names for %d slots", len(s.Rotors), k)
		}
		s.Rotors = append(s.Rotors, toks[0])
		toks = toks[1:]
	}

	if len(toks) == 0 || toks[0][0] == '(' {
		return Setting{}, dxerrors.ErrWrongSettingLength.With("no position setting")
	}
	s.Positions = toks[0]
	toks = toks[1:]

	if len(toks) > 0 && toks[0][0] != '(' {
		s.Rings = toks[0]
		toks = toks[1:]
	}

	plugs, n, ok := collectCycles(toks, 0)
	if n != len(toks) {
		return Setting{}, dxerrors.ErrMalformedSetting.With("unexpected %q", toks[n])
	}
	if !ok {
		return Setting{}, dxerrors.ErrMalformedSetting.With("unbalanced plugboard %q", plugs)
	}
	s.Plugboard = plugs

	if err := s.Validate(); err != nil {
		return Setting{}, err
	}
	return s, nil
}
