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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	dxerrors "dirpx.dev/dxenigma/dxcore/errors"
	"dirpx.dev/dxenigma/dxcore/model/machine"
)

// DefaultGroupSize is the number of symbols per output group.
const DefaultGroupSize = 5

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Processor runs a stream of setting lines and messages through a machine.
//
// The input is read line by line:
//
//   - a line whose first non-blank character is '*' is a setting line and
//     rekeys the machine;
//   - a blank line is copied to the output as an empty line;
//   - any other line is a message: it is converted and written in groups of
//     GroupSize symbols.
//
// The first non-blank line MUST be a setting line.
type Processor struct {
	session *Session

	// GroupSize is the number of symbols per output group. Zero or less
	// writes each converted line as one group.
	GroupSize int

	// Logger receives a debug record for every setting change. Settings are
	// logged redacted. Nil disables logging.
	Logger *slog.Logger
}

// NewProcessor returns a processor over s with DefaultGroupSize.
func NewProcessor(s *Session) *Processor {
	return &Processor{session: s, GroupSize: DefaultGroupSize}
}

// Process reads r to the end and writes the converted messages to w.
//
// It stops at the first error: a missing leading setting line
// (ErrMissingSetting), a setting that cannot be applied, a symbol outside
// the alphabet, a read or write failure, or cancellation of ctx. Lines
// converted before the error have been written to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("write output: %w", ferr)
		}
	}()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	keyed := false
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "*"):
			if err := p.rekey(ctx, trimmed, lineNo); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			keyed = true

		case trimmed == "":
			if !keyed {
				continue
			}
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

		default:
			if !keyed {
				return fmt.Errorf("line %d: %w", lineNo, dxerrors.ErrMissingSetting)
			}
			out, err := p.session.Encode(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, err := bw.WriteString(FormatGroups(out, p.GroupSize) + "\n"); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if !keyed {
		return dxerrors.ErrMissingSetting.With("no input")
	}
	return nil
}

func (p *Processor) rekey(ctx context.Context, line string, lineNo int) error {
	s, err := machine.ParseSetting(line, p.session.NumRotors())
	if err != nil {
		return err
	}
	if err := p.session.Apply(s); err != nil {
		return err
	}
	if p.Logger != nil {
		p.Logger.DebugContext(ctx, "machine rekeyed",
			slog.Int("line", lineNo),
			slog.String("setting", s.Redacted()))
	}
	return nil
}

// FormatGroups splits s into groups of n symbols separated by single
// spaces. The last group may be shorter. n <= 0 returns s unchanged.
func FormatGroups(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	count := 0
	for _, r := range s {
		if count == n {
			b.WriteByte(' ')
			count = 0
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
