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

package errors

import "fmt"

// Kind classifies a machine error by the stage that rejected the input.
type Kind int

const (
	// ConfigError reports a malformed or inconsistent machine configuration:
	// alphabet, rotor and pawl counts, rotor descriptors, notches and
	// reflectors.
	ConfigError Kind = iota + 1

	// SettingError reports a message setting that does not fit the machine:
	// wrong rotor names or counts, wrong setting or ring lengths.
	SettingError

	// PermutationError reports invalid cycle notation.
	PermutationError

	// RotorError reports an illegal operation on an installed rotor.
	RotorError

	// LookupError reports a symbol or index outside the alphabet.
	LookupError
)

// String returns the lowercase human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "config error"
	case SettingError:
		return "setting error"
	case PermutationError:
		return "permutation error"
	case RotorError:
		return "rotor error"
	case LookupError:
		return "lookup error"
	default:
		return "unknown error"
	}
}

// Code is the stable identifier of a machine error. Codes are kebab-case and
// never change once published; messages may.
type Code string

const (
	CodeDuplicateSymbol    Code = "duplicate-symbol"
	CodeInvalidSymbol      Code = "invalid-symbol"
	CodeEmptyAlphabet      Code = "empty-alphabet"
	CodeInvalidRotorCount  Code = "invalid-rotor-count"
	CodeInvalidPawlCount   Code = "invalid-pawl-count"
	CodeInsufficientRotors Code = "insufficient-rotors"
	CodeTruncated          Code = "truncated"
	CodeBadRotorDescriptor Code = "bad-rotor-descriptor"
	CodeDuplicateRotorName Code = "duplicate-rotor-name"
	CodeInvalidNotch       Code = "invalid-notch"
	CodeInvalidReflector   Code = "invalid-reflector"
	CodeUnsupportedVersion Code = "unsupported-version"

	CodeWrongSettingLength Code = "wrong-setting-length"
	CodeUnknownRotorName   Code = "unknown-rotor-name"
	CodeWrongRotorCount    Code = "wrong-rotor-count"
	CodeRotorsNotInserted  Code = "rotors-not-inserted"
	CodeMissingSetting     Code = "missing-setting"
	CodeMalformedSetting   Code = "malformed-setting"

	CodeSymbolNotInAlphabet Code = "symbol-not-in-alphabet"
	CodeDuplicateMapping    Code = "duplicate-mapping"
	CodeMalformedCycle      Code = "malformed-cycle"

	CodeReflectorFixedPosition Code = "reflector-fixed-position"

	CodeUnknownSymbol   Code = "unknown-symbol"
	CodeIndexOutOfRange Code = "index-out-of-range"
)

var messages = map[Code]string{
	CodeDuplicateSymbol:        "duplicate symbol in alphabet",
	CodeInvalidSymbol:          "symbol cannot be used in an alphabet",
	CodeEmptyAlphabet:          "alphabet has no symbols",
	CodeInvalidRotorCount:      "wrong number of rotor slots",
	CodeInvalidPawlCount:       "wrong number of pawls",
	CodeInsufficientRotors:     "not enough rotors available for machine",
	CodeTruncated:              "configuration truncated",
	CodeBadRotorDescriptor:     "bad rotor description",
	CodeDuplicateRotorName:     "rotor name already defined",
	CodeInvalidNotch:           "notch is not in alphabet",
	CodeInvalidReflector:       "reflector permutation is not a derangement",
	CodeUnsupportedVersion:     "unsupported configuration version",
	CodeWrongSettingLength:     "wrong setting length",
	CodeUnknownRotorName:       "unknown rotor name",
	CodeWrongRotorCount:        "wrong number of rotors",
	CodeRotorsNotInserted:      "no rotors inserted",
	CodeMissingSetting:         "input does not start with a setting line",
	CodeMalformedSetting:       "malformed setting line",
	CodeSymbolNotInAlphabet:    "cycle symbol is not in alphabet",
	CodeDuplicateMapping:       "symbol mapped more than once",
	CodeMalformedCycle:         "malformed cycle notation",
	CodeReflectorFixedPosition: "reflector has only one position",
	CodeUnknownSymbol:          "symbol is not in alphabet",
	CodeIndexOutOfRange:        "index out of alphabet range",
}

// Error is the machine error. Kind and Code identify the failure; Detail
// carries the offending input for humans.
//
// Two *Error values match under errors.Is when their Kind and Code are
// equal, so the package-level sentinels (ErrDuplicateSymbol, ...) match any
// error derived from them with With.
type Error struct {
	Kind   Kind
	Code   Code
	Detail string
}

// Error implements the error interface.
//
// The message format is:
//
//	"dxenigma: {kind}: {message}: {detail}"
func (e *Error) Error() string {
	msg, ok := messages[e.Code]
	if !ok {
		msg = string(e.Code)
	}
	s := "dxenigma: " + e.Kind.String() + ": " + msg
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// Is reports whether target is an *Error with the same Kind and Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// With returns a copy of e carrying a formatted detail.
func (e *Error) With(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Detail: fmt.Sprintf(format, args...)}
}

// Sentinels, grouped by Kind.
var (
	ErrDuplicateSymbol    = &Error{Kind: ConfigError, Code: CodeDuplicateSymbol}
	ErrInvalidSymbol      = &Error{Kind: ConfigError, Code: CodeInvalidSymbol}
	ErrEmptyAlphabet      = &Error{Kind: ConfigError, Code: CodeEmptyAlphabet}
	ErrInvalidRotorCount  = &Error{Kind: ConfigError, Code: CodeInvalidRotorCount}
	ErrInvalidPawlCount   = &Error{Kind: ConfigError, Code: CodeInvalidPawlCount}
	ErrInsufficientRotors = &Error{Kind: ConfigError, Code: CodeInsufficientRotors}
	ErrTruncated          = &Error{Kind: ConfigError, Code: CodeTruncated}
	ErrBadRotorDescriptor = &Error{Kind: ConfigError, Code: CodeBadRotorDescriptor}
	ErrDuplicateRotorName = &Error{Kind: ConfigError, Code: CodeDuplicateRotorName}
	ErrInvalidNotch       = &Error{Kind: ConfigError, Code: CodeInvalidNotch}
	ErrInvalidReflector   = &Error{Kind: ConfigError, Code: CodeInvalidReflector}
	ErrUnsupportedVersion = &Error{Kind: ConfigError, Code: CodeUnsupportedVersion}

	ErrWrongSettingLength = &Error{Kind: SettingError, Code: CodeWrongSettingLength}
	ErrUnknownRotorName   = &Error{Kind: SettingError, Code: CodeUnknownRotorName}
	ErrWrongRotorCount    = &Error{Kind: SettingError, Code: CodeWrongRotorCount}
	ErrRotorsNotInserted  = &Error{Kind: SettingError, Code: CodeRotorsNotInserted}
	ErrMissingSetting     = &Error{Kind: SettingError, Code: CodeMissingSetting}
	ErrMalformedSetting   = &Error{Kind: SettingError, Code: CodeMalformedSetting}

	ErrSymbolNotInAlphabet = &Error{Kind: PermutationError, Code: CodeSymbolNotInAlphabet}
	ErrDuplicateMapping    = &Error{Kind: PermutationError, Code: CodeDuplicateMapping}
	ErrMalformedCycle      = &Error{Kind: PermutationError, Code: CodeMalformedCycle}

	ErrReflectorFixedPosition = &Error{Kind: RotorError, Code: CodeReflectorFixedPosition}

	ErrUnknownSymbol   = &Error{Kind: LookupError, Code: CodeUnknownSymbol}
	ErrIndexOutOfRange = &Error{Kind: LookupError, Code: CodeIndexOutOfRange}
)
