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

// Package errors provides the error types shared by every dxenigma package.
//
// Two families live here:
//
//   - Serialization carriers (ParseError, MarshalError, UnmarshalError,
//     ValidationError) used by the model packages when enum-like values and
//     configuration documents are parsed, encoded or validated.
//
//   - The machine error, *Error, which classifies every failure the cipher
//     engine and its loaders can report into one of five kinds (see Kind)
//     and identifies it by a stable Code. Callers match those with the
//     standard library:
//
//     if errors.Is(err, dxerrors.ErrDuplicateSymbol) { ... }
//
//     var merr *dxerrors.Error
//     if errors.As(err, &merr) && merr.Kind == dxerrors.SettingError { ... }
//
// All failures are deterministic validation failures. None of them is
// transient and none should be retried with the same input.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Kind"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Kind").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxenigma: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// numeric cast that produced an unknown rotor kind.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxenigma: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data keeps the raw payload for callers that want to log it. It is left out
// of Error() because configuration documents may carry message keys.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxenigma: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods of model types when a
// structural constraint does not hold (for example, an empty rotor name).
//
// Constraints that belong to the machine error taxonomy (rotor counts, pawl
// counts, setting lengths) are reported as *Error instead, so that callers
// can match them with errors.Is regardless of which layer detected them.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxenigma: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxenigma: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxenigma: invalid " + e.Type + ": " + e.Reason
}
