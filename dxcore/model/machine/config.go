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

// Package machine defines the two documents that drive a rotor machine: the
// Config, which describes the hardware (alphabet, slots, pawls and the
// rotors on the shelf), and the Setting, which is the per-message key (rotor
// order, positions, ring settings and plugboard).
//
// Both have a plain-text form, read by ParseConfig and ParseSetting, and a
// JSON/YAML form through the model.Model contract. Neither builds a machine;
// that is the job of the enigma package.
package machine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"dirpx.dev/dxenigma/dxcore/model/semver"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the configuration schema this package reads and writes.
var SchemaVersion = semver.MustParseVersion("1.0.0")

// Config describes a machine.
//
// The zero Version means the document was not stamped (the text form never
// is) and is read as SchemaVersion.
type Config struct {
	Version  semver.Version `json:"version" yaml:"version,omitempty"`
	Alphabet string         `json:"alphabet" yaml:"alphabet"`
	Slots    int            `json:"slots" yaml:"slots"`
	Pawls    int            `json:"pawls" yaml:"pawls"`
	Rotors   []rotor.Spec   `json:"rotors" yaml:"rotors"`
}

var _ model.Model = (*Config)(nil)

// Validate reports every structural problem at once. Machine-level
// constraints are reported as *dxerrors.Error values and match their
// sentinels under errors.Is:
//
//	unsupported version      -> ErrUnsupportedVersion
//	empty alphabet           -> ErrEmptyAlphabet
//	Slots <= 1               -> ErrInvalidRotorCount
//	Pawls < 0, Pawls >= Slots -> ErrInvalidPawlCount
//	fewer rotors than slots  -> ErrInsufficientRotors
//	repeated rotor name      -> ErrDuplicateRotorName
//
// Rotor descriptors are checked with model.ValidateAll.
func (c Config) Validate() error {
	var err error

	if !c.Version.IsZero() {
		if verr := c.Version.Validate(); verr != nil {
			err = multierr.Append(err, verr)
		} else if !SchemaVersion.Compatible(c.Version) {
			err = multierr.Append(err, dxerrors.ErrUnsupportedVersion.With("%s (supported: %d.x up to %s)",
				c.Version, SchemaVersion.Major, SchemaVersion))
		}
	}

	if c.Alphabet == "" {
		err = multierr.Append(err, dxerrors.ErrEmptyAlphabet)
	}
	if c.Slots <= 1 {
		err = multierr.Append(err, dxerrors.ErrInvalidRotorCount.With("%d", c.Slots))
	}
	if c.Pawls < 0 || (c.Slots > 1 && c.Pawls >= c.Slots) {
		err = multierr.Append(err, dxerrors.ErrInvalidPawlCount.With("%d pawls for %d slots", c.Pawls, c.Slots))
	}
	if c.Slots > 1 && len(c.Rotors) < c.Slots {
		err = multierr.Append(err, dxerrors.ErrInsufficientRotors.With("%d rotors for %d slots", len(c.Rotors), c.Slots))
	}

	err = multierr.Append(err, model.ValidateAll(c.Rotors))

	seen := make(map[string]bool, len(c.Rotors))
	for _, r := range c.Rotors {
		if r.Name == "" {
			continue
		}
		if seen[r.Name] {
			err = multierr.Append(err, dxerrors.ErrDuplicateRotorName.With("%s", r.Name))
		}
		seen[r.Name] = true
	}

	return err
}

// EffectiveVersion returns Version, or SchemaVersion when Version is zero.
func (c Config) EffectiveVersion() semver.Version {
	if c.Version.IsZero() {
		return SchemaVersion
	}
	return c.Version
}

// Text renders c in the configuration-text form read by ParseConfig.
func (c Config) Text() string {
	var b strings.Builder
	b.WriteString(c.Alphabet)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(c.Slots))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(c.Pawls))
	b.WriteByte('\n')
	for _, r := range c.Rotors {
		b.WriteByte(' ')
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns the configuration-text form.
func (c Config) String() string { return c.Text() }

// Redacted summarizes c without wiring.
func (c Config) Redacted() string {
	return fmt.Sprintf("Config{Version:%s Symbols:%d Slots:%d Pawls:%d Rotors:%d}",
		c.EffectiveVersion(), len([]rune(c.Alphabet)), c.Slots, c.Pawls, len(c.Rotors))
}

func (c Config) TypeName() string { return "Config" }

// IsZero reports whether c is the zero Config.
func (c Config) IsZero() bool {
	return c.Version.IsZero() && c.Alphabet == "" && c.Slots == 0 && c.Pawls == 0 && len(c.Rotors) == 0
}

// MarshalJSON validates c before encoding.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Config
	return json.Marshal((alias)(c))
}

// UnmarshalJSON decodes and validates c.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := Config(tmp).Validate(); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// MarshalYAML validates c before encoding.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Config
	return (alias)(c), nil
}

// UnmarshalYAML decodes and validates c.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type alias Config
	var tmp alias
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	if err := Config(tmp).Validate(); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}
