package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skx/toycc/diag"
)

// We try to compile several bogus programs.
func TestBogusInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind diag.Kind
	}{
		{"empty program is fine", "", ""},
		{"missing semicolon", "print 1", diag.UnexpectedEndOfInput},
		{"bad character", "print 3 $;", diag.UnexpectedCharacter},
		{"undefined variable", "x = 1;", diag.UndefinedVariable},
		{"print3 without assign", "print3;", diag.UnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.src)
			_, err := c.Compile()

			if tt.kind == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var derr *diag.Error
			require.ErrorAs(t, err, &derr)
			require.Equal(t, tt.kind, derr.Kind)
		})
	}
}

// Test some valid programs compile and produce output that looks
// like AArch64 assembly, without pinning down every byte (keeping
// this test resilient to internal refactors of the generator).
func TestValidPrograms(t *testing.T) {
	tests := []string{
		"print 6 * 7;",
		"print 10 - 3 - 2;",
		"let x = 1; let x = x + 1; print x;",
		"print -9223372036854775807 - 1 + -1;", // i64::MIN - 1 wraps to i64::MAX
		"print -7 % 3;",
		"let x = 0; print 1 / x;",
	}

	for _, src := range tests {
		c := New(src)
		out, err := c.Compile()
		require.NoError(t, err)
		require.Contains(t, out, "_main:")
	}
}

func TestDebugFlagPropagatesToOutput(t *testing.T) {
	c := New("print 1;")
	c.SetDebug(true)
	out, err := c.Compile()
	require.NoError(t, err)
	require.Contains(t, out, "brk #0")
}
