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

// Catalog is the pool of rotors a machine can be assembled from.
//
// The rotors held by a Catalog are prototypes: the catalog never hands them
// out. Lookup returns a fresh clone, so every installation owns its own
// setting and ring, and one Catalog can back any number of machines.
type Catalog struct {
	rotors []Rotor
	byName map[string]int
}

// NewCatalog returns a catalog holding rotors in the given order. Names must
// be unique; a repeated name fails with ErrDuplicateRotorName.
func NewCatalog(rotors ...Rotor) (*Catalog, error) {
	c := &Catalog{
		rotors: make([]Rotor, 0, len(rotors)),
		byName: make(map[string]int, len(rotors)),
	}
	for _, r := range rotors {
		if _, dup := c.byName[r.Name()]; dup {
			return nil, dxerrors.ErrDuplicateRotorName.With("%q", r.Name())
		}
		c.byName[r.Name()] = len(c.rotors)
		c.rotors = append(c.rotors, r.Clone())
	}
	return c, nil
}

// Len returns the number of rotors in the catalog.
func (c *Catalog) Len() int {
	return len(c.rotors)
}

// Names returns the rotor names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.rotors))
	for i, r := range c.rotors {
		names[i] = r.Name()
	}
	return names
}

// Lookup returns a new instance of the rotor named name, matched exactly.
func (c *Catalog) Lookup(name string) (Rotor, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, dxerrors.ErrUnknownRotorName.With("%q", name)
	}
	return c.rotors[i].Clone(), nil
}
