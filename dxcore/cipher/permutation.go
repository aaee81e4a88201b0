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

// Permutation is a bijection over the index space of an Alphabet.
//
// A Permutation is described in cycle notation: "(ABC)(DE)" maps A->B,
// B->C, C->A, D->E and E->D. Whitespace between and inside groups is
// ignored. Symbols that appear in no group are fixed points.
//
// Permutation is immutable and safe for concurrent use.
type Permutation struct {
	alphabet *Alphabet
	forward  []int
	inverse  []int
}

// NewPermutation parses cycles over alphabet a.
//
// It fails with ErrSymbolNotInAlphabet when a group names a symbol the
// alphabet lacks, with ErrDuplicateMapping when a symbol appears more than
// once across all groups, and with ErrMalformedCycle for unbalanced or
// nested parentheses, empty groups, or symbols outside any group.
func NewPermutation(cycles string, a *Alphabet) (*Permutation, error) {
	p := IdentityPermutation(a)
	seen := make([]bool, a.Size())

	var (
		open  bool
		cycle []int
	)
	for pos, r := range cycles {
		switch {
		case r == '(':
			if open {
				return nil, dxerrors.ErrMalformedCycle.With("nested '(' at offset %d", pos)
			}
			open = true
			cycle = cycle[:0]
		case r == ')':
			if !open {
				return nil, dxerrors.ErrMalformedCycle.With("unmatched ')' at offset %d", pos)
			}
			if len(cycle) == 0 {
				return nil, dxerrors.ErrMalformedCycle.With("empty group at offset %d", pos)
			}
			p.addCycle(cycle)
			open = false
		case unicode.IsSpace(r):
		case !open:
			return nil, dxerrors.ErrMalformedCycle.With("%q outside of a group", r)
		default:
			i, ok := a.index[r]
			if !ok {
				return nil, dxerrors.ErrSymbolNotInAlphabet.With("%q", r)
			}
			if seen[i] {
				return nil, dxerrors.ErrDuplicateMapping.With("%q", r)
			}
			seen[i] = true
			cycle = append(cycle, i)
		}
	}
	if open {
		return nil, dxerrors.ErrMalformedCycle.With("unterminated group")
	}

	return p, nil
}

// IdentityPermutation returns the permutation with no cycles over a.
func IdentityPermutation(a *Alphabet) *Permutation {
	n := a.Size()
	p := &Permutation{
		alphabet: a,
		forward:  make([]int, n),
		inverse:  make([]int, n),
	}
	for i := range n {
		p.forward[i] = i
		p.inverse[i] = i
	}
	return p
}

func (p *Permutation) addCycle(cycle []int) {
	for k, from := range cycle {
		to := cycle[(k+1)%len(cycle)]
		p.forward[from] = to
		p.inverse[to] = from
	}
}

// Alphabet returns the alphabet the permutation operates on.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Size returns the alphabet size.
func (p *Permutation) Size() int {
	return len(p.forward)
}

// Wrap reduces i modulo Size().
func (p *Permutation) Wrap(i int) int {
	return p.alphabet.Wrap(i)
}

// Permute returns the image of index i, taken modulo Size().
func (p *Permutation) Permute(i int) int {
	return p.forward[p.Wrap(i)]
}

// Invert returns the preimage of index i, taken modulo Size().
func (p *Permutation) Invert(i int) int {
	return p.inverse[p.Wrap(i)]
}

// PermuteSymbol returns the image of symbol r.
func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbols[p.forward[i]], nil
}

// InvertSymbol returns the preimage of symbol r.
func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbols[p.inverse[i]], nil
}

// IsDerangement reports whether no index maps to itself.
func (p *Permutation) IsDerangement() bool {
	for i, j := range p.forward {
		if i == j {
			return false
		}
	}
	return true
}

// Cycles returns the canonical cycle notation: one group per cycle of
// length two or more, each group starting at its lowest index, groups in
// order of that index. Fixed points are omitted.
func (p *Permutation) Cycles() string {
	var b strings.Builder
	done := make([]bool, len(p.forward))
	for start := range p.forward {
		if done[start] || p.forward[start] == start {
			continue
		}
		b.WriteByte('(')
		for i := start; !done[i]; i = p.forward[i] {
			done[i] = true
			b.WriteRune(p.alphabet.symbols[i])
		}
		b.WriteByte(')')
	}
	return b.String()
}

// String returns Cycles().
func (p *Permutation) String() string {
	return p.Cycles()
}
