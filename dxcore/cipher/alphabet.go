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

// Package cipher implements the rotor cipher engine: the symbol alphabet,
// cycle-notation permutations, the three rotor variants and the machine
// that steps them and composes them with a plugboard.
//
// Every type in this package is deterministic and performs no I/O. Alphabet,
// Permutation and Catalog are immutable once constructed and may be shared
// across goroutines. Rotors installed in a Machine and the Machine itself
// carry mutable rotational state and are not safe for concurrent use; see
// the enigma package for a synchronized session.
package cipher

import (
	"strings"
	"unicode"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
)

// DefaultSymbols is the alphabet of the historical machines.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is a bijection between an ordered set of distinct symbols and the
// indices 0..Size()-1.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the symbols of s, in order.
//
// Symbols must be distinct. Whitespace, parentheses and '*' are rejected
// because the configuration and setting formats use them as delimiters.
func NewAlphabet(s string) (*Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) == 0 {
		return nil, dxerrors.ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == '*' {
			return nil, dxerrors.ErrInvalidSymbol.With("%q at position %d", r, i)
		}
		if _, dup := index[r]; dup {
			return nil, dxerrors.ErrDuplicateSymbol.With("%q", r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: symbols, index: index}, nil
}

// DefaultAlphabet returns the alphabet A..Z.
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is a symbol of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToIndex returns the index of symbol r.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, dxerrors.ErrUnknownSymbol.With("%q", r)
	}
	return i, nil
}

// ToSymbol returns the symbol at index i.
func (a *Alphabet) ToSymbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, dxerrors.ErrIndexOutOfRange.With("%d not in [0,%d)", i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// Wrap reduces i modulo the alphabet size into 0..Size()-1, also for
// negative i.
func (a *Alphabet) Wrap(i int) int {
	n := len(a.symbols)
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// Symbols returns a copy of the ordered symbols.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the symbols as one string.
func (a *Alphabet) String() string {
	var b strings.Builder
	for _, r := range a.symbols {
		b.WriteRune(r)
	}
	return b.String()
}
