package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skx/toycc/ast"
	"github.com/skx/toycc/parser"
	"github.com/skx/toycc/resolver"
)

func lowerSrc(t *testing.T, src string) []Instruction {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NoError(t, resolver.Resolve(prog))
	return Lower(prog)
}

func TestLowerPreservesStatementOrderAndKind(t *testing.T) {
	instrs := lowerSrc(t, "let x = 1; x = 2; print x;")
	require.Len(t, instrs, 3)
	require.Equal(t, StoreLet, instrs[0].Kind)
	require.Equal(t, 0, instrs[0].Slot)
	require.Equal(t, StoreAssign, instrs[1].Kind)
	require.Equal(t, 0, instrs[1].Slot)
	require.Equal(t, Print, instrs[2].Kind)
}

func TestLowerKeepsExpressionTreeIntact(t *testing.T) {
	instrs := lowerSrc(t, "print 1 + 2 * 3;")
	require.Len(t, instrs, 1)

	bin, ok := instrs[0].X.(*ast.Bin)
	require.True(t, ok)
	require.Equal(t, ast.Add, bin.Op)

	rhs, ok := bin.Y.(*ast.Bin)
	require.True(t, ok)
	require.Equal(t, ast.Mul, rhs.Op)
}
