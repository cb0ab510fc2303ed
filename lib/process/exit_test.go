// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code int }

func (e codedError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e codedError) ExitCode() int { return e.code }

func TestReport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantOutput string
	}{
		{name: "nil", err: nil, wantCode: 0, wantOutput: ""},
		{name: "plain", err: errors.New("reading config: no such file"), wantCode: 1, wantOutput: "error: reading config: no such file\n"},
		{name: "coded", err: codedError{code: 3}, wantCode: 3, wantOutput: "error: exit status 3\n"},
		{name: "wrapped coded", err: fmt.Errorf("launch: %w", codedError{code: 4}), wantCode: 4, wantOutput: "error: launch: exit status 4\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			code := Report(&output, test.err)
			if code != test.wantCode {
				t.Errorf("Report() = %d, want %d", code, test.wantCode)
			}
			if output.String() != test.wantOutput {
				t.Errorf("output = %q, want %q", output.String(), test.wantOutput)
			}
		})
	}
}
