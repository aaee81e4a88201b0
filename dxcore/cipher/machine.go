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

package cipher

import (
	"strings"
	"unicode"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
)

// Machine is a rotor cipher machine: numRotors slots, a plugboard, and a
// catalog of rotors to fill the slots from.
//
// Slot 0 is the leftmost slot and holds the reflector. Slot numRotors-1 is
// the rightmost slot, the one turned by every keypress. A Machine is not
// safe for concurrent use: Convert mutates the installed rotors.
type Machine struct {
	alphabet  *Alphabet
	numRotors int
	numPawls  int
	catalog   *Catalog
	slots     []Rotor
	plugboard *Permutation
}

// NewMachine returns a machine over alphabet a with numRotors slots and
// numPawls pawls, able to install any rotor of catalog.
//
// numRotors must be greater than 1 (ErrInvalidRotorCount), numPawls must be
// in [0, numRotors) (ErrInvalidPawlCount), and the catalog must hold at
// least numRotors rotors (ErrInsufficientRotors). The plugboard starts as
// the identity.
func NewMachine(a *Alphabet, numRotors, numPawls int, catalog *Catalog) (*Machine, error) {
	if numRotors <= 1 {
		return nil, dxerrors.ErrInvalidRotorCount.With("%d", numRotors)
	}
	if numPawls < 0 || numPawls >= numRotors {
		return nil, dxerrors.ErrInvalidPawlCount.With("%d pawls for %d slots", numPawls, numRotors)
	}
	if catalog.Len() < numRotors {
		return nil, dxerrors.ErrInsufficientRotors.With("%d rotors for %d slots", catalog.Len(), numRotors)
	}
	return &Machine{
		alphabet:  a,
		numRotors: numRotors,
		numPawls:  numPawls,
		catalog:   catalog,
		plugboard: IdentityPermutation(a),
	}, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// Catalog returns the rotor catalog.
func (m *Machine) Catalog() *Catalog { return m.catalog }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls. Stepping does not consult it.
func (m *Machine) NumPawls() int { return m.numPawls }

// Plugboard returns the current plugboard.
func (m *Machine) Plugboard() *Permutation { return m.plugboard }

// Installed returns the names of the installed rotors, leftmost first, or
// nil before InsertRotors succeeded.
func (m *Machine) Installed() []string {
	if m.slots == nil {
		return nil
	}
	names := make([]string, len(m.slots))
	for i, r := range m.slots {
		names[i] = r.Name()
	}
	return names
}

// Rotor returns the rotor installed in slot i, or nil.
func (m *Machine) Rotor(i int) Rotor {
	if i < 0 || i >= len(m.slots) {
		return nil
	}
	return m.slots[i]
}

// Positions returns the current settings of slots 1..numRotors-1 as
// symbols, in the same form SetRotors accepts.
func (m *Machine) Positions() string {
	if m.slots == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range m.slots[1:] {
		b.WriteRune(m.alphabet.symbols[r.Setting()])
	}
	return b.String()
}

// InsertRotors installs the named rotors, leftmost first. It fails with
// ErrWrongRotorCount unless exactly NumRotors names are given and with
// ErrUnknownRotorName when a name is not in the catalog. On failure the
// previously installed rotors stay in place.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return dxerrors.ErrWrongRotorCount.With("got %d, want %d", len(names), m.numRotors)
	}
	slots := make([]Rotor, m.numRotors)
	for i, name := range names {
		r, err := m.catalog.Lookup(name)
		if err != nil {
			return err
		}
		slots[i] = r
	}
	m.slots = slots
	return nil
}

// SetRotors sets the positions of slots 1..numRotors-1 from the symbols of
// setting, one symbol per slot.
func (m *Machine) SetRotors(setting string) error {
	return m.eachSlot(setting, Rotor.SetSettingSymbol)
}

// SetRings applies the ring settings of slots 1..numRotors-1 from the
// symbols of setting, one symbol per slot.
func (m *Machine) SetRings(setting string) error {
	return m.eachSlot(setting, Rotor.SetRingSymbol)
}

func (m *Machine) eachSlot(setting string, set func(Rotor, rune) error) error {
	if m.slots == nil {
		return dxerrors.ErrRotorsNotInserted
	}
	symbols := []rune(setting)
	if len(symbols) != m.numRotors-1 {
		return dxerrors.ErrWrongSettingLength.With("%q has %d symbols, want %d", setting, len(symbols), m.numRotors-1)
	}
	for _, c := range symbols {
		if !m.alphabet.Contains(c) {
			return dxerrors.ErrUnknownSymbol.With("%q in setting %q", c, setting)
		}
	}
	for i, c := range symbols {
		if err := set(m.slots[i+1], c); err != nil {
			return err
		}
	}
	return nil
}

// SetPlugboard replaces the plugboard. Any permutation is accepted.
func (m *Machine) SetPlugboard(p *Permutation) {
	m.plugboard = p
}

// Convert encodes the symbol at index c and returns the result index.
//
// The plugboard is applied, the rotors step, the signal passes right to
// left through every slot including the reflector, back left to right
// through slots 1..numRotors-1, and through the plugboard again.
func (m *Machine) Convert(c int) (int, error) {
	if m.slots == nil {
		return 0, dxerrors.ErrRotorsNotInserted
	}
	if c < 0 || c >= m.alphabet.Size() {
		return 0, dxerrors.ErrIndexOutOfRange.With("%d not in [0,%d)", c, m.alphabet.Size())
	}

	curr := m.plugboard.Permute(c)
	m.step()
	for i := m.numRotors - 1; i >= 0; i-- {
		curr = m.slots[i].ConvertForward(curr)
	}
	for i := 1; i < m.numRotors; i++ {
		curr = m.slots[i].ConvertBackward(curr)
	}
	return m.plugboard.Permute(curr), nil
}

// step advances the rotors for one keypress.
//
// Slots are visited left to right. When a rotating rotor has a rotating
// right neighbour at a notch, both advance, except that the rightmost rotor
// is only moved by the final unconditional step. A middle rotor at its own
// notch thus steps again with its left neighbour (the double step), and a
// rotor can advance twice in one keypress when it and its right neighbour
// are both at a notch.
func (m *Machine) step() {
	last := m.numRotors - 1
	for i := 0; i < last; i++ {
		left, right := m.slots[i], m.slots[i+1]
		if left.Rotates() && right.Rotates() && right.AtNotch() {
			left.Advance()
			if i+1 < last {
				right.Advance()
			}
		}
	}
	m.slots[last].Advance()
}

// ConvertString encodes msg symbol by symbol, skipping whitespace. Rotor
// state carries over from one symbol to the next. A symbol outside the
// alphabet aborts the conversion with ErrUnknownSymbol; the symbols before
// it have already stepped the rotors.
func (m *Machine) ConvertString(msg string) (string, error) {
	var b strings.Builder
	b.Grow(len(msg))
	for _, r := range msg {
		if unicode.IsSpace(r) {
			continue
		}
		i, err := m.alphabet.ToIndex(r)
		if err != nil {
			return "", err
		}
		o, err := m.Convert(i)
		if err != nil {
			return "", err
		}
		b.WriteRune(m.alphabet.symbols[o])
	}
	return b.String(), nil
}
