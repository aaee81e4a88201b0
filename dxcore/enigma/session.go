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

package enigma

import (
	"sync"

	"dirpx.dev/dxenigma/dxcore/cipher"
	"dirpx.dev/dxenigma/dxcore/model/machine"
)

// Session owns a machine and serializes every operation on it.
//
// Each call holds the lock for its whole duration, so an Encode observes
// one consistent rotor state and advances it atomically. Interleaving
// between calls from different goroutines is still up to the caller.
type Session struct {
	mu sync.Mutex
	m  *cipher.Machine
}

// NewSession returns a session over m. The caller MUST NOT use m directly
// afterwards.
func NewSession(m *cipher.Machine) *Session {
	return &Session{m: m}
}

// ApplySetting parses line and applies it.
func (s *Session) ApplySetting(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ApplySetting(s.m, line)
}

// Apply applies a parsed setting.
func (s *Session) Apply(setting machine.Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Apply(s.m, setting)
}

// Encode converts text, advancing the rotors.
func (s *Session) Encode(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Encode(s.m, text)
}

// Positions returns the current positions of the non-reflector slots.
func (s *Session) Positions() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Positions()
}

// NumRotors returns the slot count of the machine.
func (s *Session) NumRotors() int {
	return s.m.NumRotors()
}
