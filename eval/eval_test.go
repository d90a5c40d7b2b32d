package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/parser"
)

// run lexes, parses, and evaluates src against a fresh Evaluator,
// returning everything printed to stdout and the first diagnostic
// encountered (nil on success).
func run(t *testing.T, src string) (string, *Evaluator, error) {
	t.Helper()
	l := lexer.New(src)
	toks := l.Scan()
	require.Empty(t, l.Errors())

	p := parser.New(toks)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())

	var buf bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&buf)
	if d := ev.Run(stmts); d != nil {
		return buf.String(), ev, d
	}
	return buf.String(), ev, nil
}

func TestArithmeticAndPrecedence(t *testing.T) {
	out, _, err := run(t, "print 1 + 2 * 3; print (1 + 2) * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n9\n", out)
}

func TestIntAndRealAreDistinctTypes(t *testing.T) {
	out, _, err := run(t, "int x = 1; real y = 1.5; print x; print y - 0.5;")
	require.NoError(t, err)
	assert.Equal(t, "1\n1\n", out)
}

func TestRealPrintsShortestRoundTrip(t *testing.T) {
	out, _, err := run(t, "real x = 2.0; print x;")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestBlockScopeShadowingAndRestoration(t *testing.T) {
	out, _, err := run(t, `
		int x = 1;
		{
			int x = 2;
			print x;
		}
		print x;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestIfElseChoosesBranch(t *testing.T) {
	out, _, err := run(t, `if (1 < 2) { print 1; } else { print 2; }`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, _, err := run(t, `
		int i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForLoopIsInclusiveAndScopedToOwnVariable(t *testing.T) {
	out, _, err := run(t, `for i = 1 to 3 do print i;`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestRepeatRunsAtLeastOnce(t *testing.T) {
	out, _, err := run(t, `
		int i = 0;
		repeat
			print i;
			i = i + 1;
		until (i == 1);
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestAssignmentTypeMismatchIsTypeError(t *testing.T) {
	out, _, err := run(t, `int x = 1; x = 1.5;`)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "Error")
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	_, _, err := run(t, `print y;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestIntegerDivisionByZeroIsArithmeticError(t *testing.T) {
	_, _, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestRealDivisionByZeroFollowsHostSemantics(t *testing.T) {
	out, _, err := run(t, `print 1.0 / 0.0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n", out)
}

func TestMixedTypeEqualityIsTypeError(t *testing.T) {
	_, _, err := run(t, `print 1 == 1.0;`)
	require.Error(t, err)
}

func TestLogicalShortCircuitOr(t *testing.T) {
	out, _, err := run(t, `
		int x = 0;
		if (true or (x == 1 / 0)) { print 1; }
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestUnaryNegationAppliesToIntAndReal(t *testing.T) {
	out, _, err := run(t, `print -5; print -2.5;`)
	require.NoError(t, err)
	assert.Equal(t, "-5\n-2.5\n", out)
}

func TestRedeclarationInSameScopeOverwrites(t *testing.T) {
	out, _, err := run(t, `int x = 1; int x = 2; print x;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEnvironmentPersistsAcrossRunCalls(t *testing.T) {
	l := lexer.New("int x = 10;")
	p := parser.New(l.Scan())
	ev := NewEvaluator()
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	require.Nil(t, ev.Run(p.Parse()))

	l2 := lexer.New("print x;")
	p2 := parser.New(l2.Scan())
	require.Nil(t, ev.Run(p2.Parse()))
	assert.Equal(t, "10\n", buf.String())
}
