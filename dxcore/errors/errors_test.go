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

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Kind type",
			&ParseError{Type: "Kind", Value: "rotating"},
			"dxenigma: invalid Kind value: rotating",
		},
		{
			"empty value",
			&ParseError{Type: "Kind", Value: ""},
			"dxenigma: invalid Kind value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Kind", Value: 99},
			"dxenigma: cannot marshal invalid Kind value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Kind", Value: -1},
			"dxenigma: cannot marshal invalid Kind value: -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "Config", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"}
	want := "dxenigma: cannot unmarshal Config: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Spec", Field: "Name", Reason: "must not be empty"},
			"dxenigma: invalid Spec.Name: must not be empty",
		},
		{
			"without field",
			&ValidationError{Type: "Setting", Reason: "no rotors"},
			"dxenigma: invalid Setting: no rotors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"sentinel",
			ErrDuplicateSymbol,
			"dxenigma: config error: duplicate symbol in alphabet",
		},
		{
			"with detail",
			ErrWrongSettingLength.With("got %d symbols, want %d", 3, 4),
			"dxenigma: setting error: wrong setting length: got 3 symbols, want 4",
		},
		{
			"unknown code",
			&Error{Kind: RotorError, Code: "custom"},
			"dxenigma: rotor error: custom",
		},
		{
			"unknown kind",
			&Error{Code: CodeUnknownSymbol},
			"dxenigma: unknown error: symbol is not in alphabet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	derived := ErrUnknownRotorName.With("%q", "Zeta")
	wrapped := fmt.Errorf("apply setting: %w", derived)

	if !stderrors.Is(derived, ErrUnknownRotorName) {
		t.Error("derived error should match its sentinel")
	}
	if !stderrors.Is(wrapped, ErrUnknownRotorName) {
		t.Error("wrapped error should match its sentinel")
	}
	if stderrors.Is(wrapped, ErrWrongRotorCount) {
		t.Error("wrapped error should not match a different code")
	}
	if stderrors.Is(derived, &Error{Kind: ConfigError, Code: CodeUnknownRotorName}) {
		t.Error("errors with the same code but a different kind should not match")
	}

	var merr *Error
	if !stderrors.As(wrapped, &merr) {
		t.Fatal("errors.As should find *Error")
	}
	if merr.Kind != SettingError {
		t.Errorf("Kind = %v, want %v", merr.Kind, SettingError)
	}
	if merr.Detail != `"Zeta"` {
		t.Errorf("Detail = %q, want %q", merr.Detail, `"Zeta"`)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ConfigError, "config error"},
		{SettingError, "setting error"},
		{PermutationError, "permutation error"},
		{RotorError, "rotor error"},
		{LookupError, "lookup error"},
		{Kind(0), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*Error)(nil)
}
