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

// Package semver provides the semantic version type used to stamp
// dxenigma configuration documents.
//
// A YAML machine configuration carries a "version" field. Readers accept a
// document when its major version equals the one they were built for (see
// Compatible); minor and patch increments only add optional fields.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model"
	bsemver "github.com/blang/semver/v4"

	"gopkg.in/yaml.v3"
)

// Version is a Semantic Versioning 2.0.0 version:
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// Parsing and precedence are delegated to github.com/blang/semver/v4. The
// zero value is 0.0.0 and means "no version given".
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Metadata   string
}

var _ model.Model = (*Version)(nil)

// ParseVersion parses s, accepting an optional leading "v".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	bv, err := bsemver.Parse(s)
	if err != nil {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s}
	}

	return fromBlangSemver(bv), nil
}

// MustParseVersion is ParseVersion for constants; it panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical form, without a leading "v".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlangSemver() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate checks that the components are non-negative and that the
// prerelease and metadata identifiers are well formed.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &dxerrors.ValidationError{Type: "Version", Reason: "components must be non-negative", Value: v.String()}
	}
	if _, err := v.toBlangSemver(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// Compare returns -1, 0 or +1 following SemVer precedence. Build metadata
// is ignored. Invalid versions compare by their numeric core only.
func (v Version) Compare(other Version) int {
	bv, err1 := v.toBlangSemver()
	bo, err2 := other.toBlangSemver()
	if err1 == nil && err2 == nil {
		return bv.Compare(bo)
	}
	for _, d := range [][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// Compatible reports whether a reader built for v can load a document
// stamped with other: the major versions must match, and other must not be
// newer than v within that major.
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major && other.Compare(v) <= 0
}

func (v Version) TypeName() string { return "Version" }
func (v Version) Redacted() string { return v.String() }

// IsZero reports whether v is 0.0.0 with no prerelease or metadata.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a YAML string.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar via ParseVersion.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
