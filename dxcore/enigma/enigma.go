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

// Package enigma connects the definition types of dxcore/model/machine to
// the cipher engine of dxcore/cipher.
//
// A machine is loaded once from its configuration, in text form with
// LoadConfiguration or YAML form with LoadYAML, and then keyed per message
// with ApplySetting before Encode:
//
//	m, err := enigma.LoadConfiguration(configText)
//	if err != nil { ... }
//	if err := enigma.ApplySetting(m, "* B Beta III IV I AXLE (HQ) (EX)"); err != nil { ... }
//	out, err := enigma.Encode(m, "FROM HIS SHOULDER")
//
// Session serializes those calls for use from several goroutines, and
// Processor drives a machine over a whole stream of setting and message
// lines.
package enigma

import (
	"fmt"
	"path/filepath"
	"strings"

	"dirpx.dev/dxenigma/dxcore/cipher"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/machine"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"golang.org/x/text/unicode/norm"
)

// LoadConfiguration parses a configuration in text form and builds the
// machine it describes.
func LoadConfiguration(text string) (*cipher.Machine, error) {
	cfg, err := machine.ParseConfig(text)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

// LoadYAML decodes a configuration in YAML form and builds the machine it
// describes. Documents stamped with an incompatible schema version fail
// with ErrUnsupportedVersion.
func LoadYAML(data []byte) (*cipher.Machine, error) {
	return load(data, FormatYAML)
}

// LoadJSON is LoadYAML for the JSON form.
func LoadJSON(data []byte) (*cipher.Machine, error) {
	return load(data, FormatJSON)
}

func load(data []byte, f Format) (*cipher.Machine, error) {
	cfg, err := DecodeConfig(data, f)
	if err != nil {
		return nil, err
	}
	return Build(cfg)
}

// Format names an encoding of a machine configuration.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format of a configuration file from its extension.
// Anything other than .yaml, .yml and .json is text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseFormat accepts "text", "yaml" and "json".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown configuration format %q", s)
	}
}

// DecodeConfig reads and validates a configuration without building it.
func DecodeConfig(data []byte, f Format) (machine.Config, error) {
	var cfg machine.Config
	var err error
	switch f {
	case FormatText:
		return machine.ParseConfig(string(data))
	case FormatYAML:
		err = model.FromYAML(data, &cfg)
	case FormatJSON:
		err = model.FromJSON(data, &cfg)
	default:
		err = fmt.Errorf("unknown configuration format %q", f)
	}
	if err != nil {
		return machine.Config{}, err
	}
	return cfg, nil
}

// EncodeConfig writes cfg in format f. YAML and JSON documents are stamped
// with the schema version the configuration was read as.
func EncodeConfig(cfg machine.Config, f Format) ([]byte, error) {
	cfg.Version = cfg.EffectiveVersion()
	switch f {
	case FormatText:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return []byte(cfg.Text()), nil
	case FormatYAML:
		return model.ToYAML(cfg)
	case FormatJSON:
		data, err := model.ToJSON(cfg)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown configuration format %q", f)
	}
}

// Build creates the alphabet, the rotors and the machine described by cfg.
// The rotors become the machine's catalog; nothing is installed yet.
func Build(cfg machine.Config) (*cipher.Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := cipher.NewAlphabet(norm.NFC.String(cfg.Alphabet))
	if err != nil {
		return nil, err
	}

	rotors := make([]cipher.Rotor, 0, len(cfg.Rotors))
	for _, spec := range cfg.Rotors {
		r, err := buildRotor(spec, a)
		if err != nil {
			return nil, fmt.Errorf("rotor %s: %w", spec.Name, err)
		}
		rotors = append(rotors, r)
	}

	catalog, err := cipher.NewCatalog(rotors...)
	if err != nil {
		return nil, err
	}
	return cipher.NewMachine(a, cfg.Slots, cfg.Pawls, catalog)
}

func buildRotor(spec rotor.Spec, a *cipher.Alphabet) (cipher.Rotor, error) {
	perm, err := cipher.NewPermutation(norm.NFC.String(spec.Cycles), a)
	if err != nil {
		return nil, err
	}

	switch {
	case spec.Kind.Rotates():
		r, err := cipher.NewMovingRotor(spec.Name, perm, norm.NFC.String(spec.Notches))
		if err != nil {
			return nil, err
		}
		return r, nil
	case spec.Kind == rotor.Reflecting:
		r, err := cipher.NewReflectingRotor(spec.Name, perm)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return cipher.NewFixedRotor(spec.Name, perm), nil
	}
}

// ApplySetting parses a setting line and applies it to m.
func ApplySetting(m *cipher.Machine, line string) error {
	s, err := machine.ParseSetting(line, m.NumRotors())
	if err != nil {
		return err
	}
	return Apply(m, s)
}

// Apply installs the rotors named by s, sets their positions and rings, and
// replaces the plugboard. An empty plugboard means no plugs.
//
// The plugboard is checked before the machine is touched. A failure in a
// later step leaves the machine with the new rotors installed; apply a
// correct setting before encoding again.
func Apply(m *cipher.Machine, s machine.Setting) error {
	plugboard := cipher.IdentityPermutation(m.Alphabet())
	if s.Plugboard != "" {
		p, err := cipher.NewPermutation(s.Plugboard, m.Alphabet())
		if err != nil {
			return fmt.Errorf("plugboard: %w", err)
		}
		plugboard = p
	}

	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Positions); err != nil {
		return err
	}
	if s.Rings != "" {
		if err := m.SetRings(s.Rings); err != nil {
			return err
		}
	}
	m.SetPlugboard(plugboard)
	return nil
}

// Encode converts text on m, skipping whitespace. Encoding and decoding are
// the same operation.
func Encode(m *cipher.Machine, text string) (string, error) {
	return m.ConvertString(norm.NFC.String(text))
}
