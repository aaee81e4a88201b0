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
	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
)

// Rotor is a permutation mounted at a rotational position.
//
// The setting is the rotor's current angular offset in 0..size-1. Inputs to
// ConvertForward and ConvertBackward are shifted by the setting before the
// wiring is applied and shifted back afterwards, which models the wiring
// having been turned by that many contacts.
//
// Three variants implement Rotor: FixedRotor, MovingRotor and
// ReflectingRotor. Only MovingRotor advances or reports a notch.
type Rotor interface {
	// Name is the catalog name of the rotor.
	Name() string

	// Permutation returns the rotor's wiring.
	Permutation() *Permutation

	// Rotates reports whether the rotor can advance.
	Rotates() bool

	// Reflects reports whether the rotor is a reflector.
	Reflects() bool

	// AtNotch reports whether the rotor sits at one of its notches, in
	// which case the rotor to its left advances on the next keypress.
	AtNotch() bool

	// Advance turns the rotor by one position. It is a no-op for rotors
	// that do not rotate.
	Advance()

	// Setting returns the current rotational position.
	Setting() int

	// Ring returns the remembered ring offset. It is always 0 for rotors
	// without notches.
	Ring() int

	// SetSetting sets the rotational position.
	SetSetting(posn int) error

	// SetSettingSymbol sets the rotational position to the index of r.
	SetSettingSymbol(r rune) error

	// SetRing applies a ring offset: the setting becomes setting-posn.
	SetRing(posn int) error

	// SetRingSymbol applies the ring offset given by the index of r.
	SetRingSymbol(r rune) error

	// ConvertForward maps a contact entering from the right.
	ConvertForward(p int) int

	// ConvertBackward maps a contact entering from the left.
	ConvertBackward(e int) int

	// Clone returns a rotor with the same wiring and an independent copy
	// of the mutable state.
	Clone() Rotor
}

// wiring is the state every rotor variant carries.
type wiring struct {
	name    string
	perm    *Permutation
	setting int
}

func (w *wiring) Name() string              { return w.name }
func (w *wiring) Permutation() *Permutation { return w.perm }
func (w *wiring) Setting() int              { return w.setting }

func (w *wiring) ConvertForward(p int) int {
	return w.perm.Wrap(w.perm.Permute(p+w.setting) - w.setting)
}

func (w *wiring) ConvertBackward(e int) int {
	return w.perm.Wrap(w.perm.Invert(e+w.setting) - w.setting)
}

func (w *wiring) checkPosition(posn int) error {
	if posn < 0 || posn >= w.perm.Size() {
		return dxerrors.ErrIndexOutOfRange.With("rotor %s: position %d not in [0,%d)", w.name, posn, w.perm.Size())
	}
	return nil
}

func (w *wiring) symbolIndex(r rune) (int, error) {
	return w.perm.Alphabet().ToIndex(r)
}

// FixedRotor is a rotor that never advances and has no notches. It can be
// set to any position by hand.
type FixedRotor struct {
	wiring
}

var _ Rotor = (*FixedRotor)(nil)

// NewFixedRotor returns a non-rotating rotor named name with wiring perm.
func NewFixedRotor(name string, perm *Permutation) *FixedRotor {
	return &FixedRotor{wiring: wiring{name: name, perm: perm}}
}

func (r *FixedRotor) Rotates() bool  { return false }
func (r *FixedRotor) Reflects() bool { return false }
func (r *FixedRotor) AtNotch() bool  { return false }
func (r *FixedRotor) Advance()       {}
func (r *FixedRotor) Ring() int      { return 0 }

func (r *FixedRotor) SetSetting(posn int) error {
	if err := r.checkPosition(posn); err != nil {
		return err
	}
	r.setting = posn
	return nil
}

func (r *FixedRotor) SetSettingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetSetting(i)
}

func (r *FixedRotor) SetRing(posn int) error {
	if err := r.checkPosition(posn); err != nil {
		return err
	}
	r.setting = r.perm.Wrap(r.setting - posn)
	return nil
}

func (r *FixedRotor) SetRingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetRing(i)
}

func (r *FixedRotor) Clone() Rotor {
	c := *r
	return &c
}

// MovingRotor is a rotor that advances one position per step and carries
// notches that drive its left neighbour.
type MovingRotor struct {
	wiring
	notches []int
	ring    int
}

var _ Rotor = (*MovingRotor)(nil)

// NewMovingRotor returns a rotating rotor with the given notch symbols. Each
// notch must be a symbol of the permutation's alphabet, otherwise
// ErrInvalidNotch is returned. An empty notch string is allowed and yields a
// rotor that never drives its neighbour.
func NewMovingRotor(name string, perm *Permutation, notches string) (*MovingRotor, error) {
	r := &MovingRotor{wiring: wiring{name: name, perm: perm}}
	for _, c := range notches {
		i, err := perm.Alphabet().ToIndex(c)
		if err != nil {
			return nil, dxerrors.ErrInvalidNotch.With("rotor %s: %q", name, c)
		}
		r.notches = append(r.notches, i)
	}
	return r, nil
}

// Notches returns the notch symbols in declaration order.
func (r *MovingRotor) Notches() string {
	out := make([]rune, len(r.notches))
	for k, i := range r.notches {
		out[k] = r.perm.Alphabet().symbols[i]
	}
	return string(out)
}

func (r *MovingRotor) Rotates() bool  { return true }
func (r *MovingRotor) Reflects() bool { return false }
func (r *MovingRotor) Ring() int      { return r.ring }

// AtNotch reports whether (notch - ring) mod size equals the setting for
// any notch.
func (r *MovingRotor) AtNotch() bool {
	for _, n := range r.notches {
		if r.perm.Wrap(n-r.ring) == r.setting {
			return true
		}
	}
	return false
}

// Advance increments the setting modulo the alphabet size.
func (r *MovingRotor) Advance() {
	r.setting = r.perm.Wrap(r.setting + 1)
}

func (r *MovingRotor) SetSetting(posn int) error {
	if err := r.checkPosition(posn); err != nil {
		return err
	}
	r.setting = posn
	return nil
}

func (r *MovingRotor) SetSettingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetSetting(i)
}

// SetRing shifts the setting back by posn and remembers posn so that notch
// positions follow the ring.
func (r *MovingRotor) SetRing(posn int) error {
	if err := r.checkPosition(posn); err != nil {
		return err
	}
	r.setting = r.perm.Wrap(r.setting - posn)
	r.ring = posn
	return nil
}

func (r *MovingRotor) SetRingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetRing(i)
}

func (r *MovingRotor) Clone() Rotor {
	c := *r
	return &c
}

// ReflectingRotor is the leftmost rotor. Its wiring must be a derangement
// and its setting is permanently 0.
type ReflectingRotor struct {
	wiring
}

var _ Rotor = (*ReflectingRotor)(nil)

// NewReflectingRotor returns a reflector. perm must have no fixed points,
// otherwise ErrInvalidReflector is returned.
func NewReflectingRotor(name string, perm *Permutation) (*ReflectingRotor, error) {
	if !perm.IsDerangement() {
		return nil, dxerrors.ErrInvalidReflector.With("rotor %s: %s", name, perm.Cycles())
	}
	return &ReflectingRotor{wiring: wiring{name: name, perm: perm}}, nil
}

func (r *ReflectingRotor) Rotates() bool  { return false }
func (r *ReflectingRotor) Reflects() bool { return true }
func (r *ReflectingRotor) AtNotch() bool  { return false }
func (r *ReflectingRotor) Advance()       {}
func (r *ReflectingRotor) Ring() int      { return 0 }

// SetSetting accepts only position 0.
func (r *ReflectingRotor) SetSetting(posn int) error {
	if posn != 0 {
		return dxerrors.ErrReflectorFixedPosition.With("rotor %s: position %d", r.name, posn)
	}
	return nil
}

func (r *ReflectingRotor) SetSettingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetSetting(i)
}

// SetRing fails unless the resulting setting is still 0.
func (r *ReflectingRotor) SetRing(posn int) error {
	if err := r.checkPosition(posn); err != nil {
		return err
	}
	return r.SetSetting(r.perm.Wrap(r.setting - posn))
}

func (r *ReflectingRotor) SetRingSymbol(c rune) error {
	i, err := r.symbolIndex(c)
	if err != nil {
		return err
	}
	return r.SetRing(i)
}

func (r *ReflectingRotor) Clone() Rotor {
	c := *r
	return &c
}
