package sexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	shouldEqual(t, Number(1), Number(1))
	shouldEqual(t, Number(2.5), Number(2.5))
	shouldEqual(t, Number(-0.0), Number(0))
	shouldEqual(t, Boolean(true), Boolean(true))
	shouldEqual(t, Boolean(false), Boolean(false))
	shouldEqual(t, Nil, Nil)
}

func TestNotEqual(t *testing.T) {
	shouldNotEqual(t, Number(1), Number(2))
	shouldNotEqual(t, Number(2.5), Number(3.6))
	shouldNotEqual(t, Number(math.NaN()), Number(math.NaN()))
	shouldNotEqual(t, Boolean(true), Boolean(false))
}

func TestTypeMismatch(t *testing.T) {
	shouldNotCompare(t, Number(1), Boolean(true))
	shouldNotCompare(t, Boolean(false), Number(0))
	shouldNotCompare(t, Nil, Number(0))
	shouldNotCompare(t, Boolean(false), Nil)
}

func TestPrintValue(t *testing.T) {
	assert.Equal(t, "1.000000", Print(Number(1)))
	assert.Equal(t, "-18.000000", Print(Number(-18)))
	assert.Equal(t, "0.333333", Print(Number(1.0/3)))
	assert.Equal(t, "true", Print(Boolean(true)))
	assert.Equal(t, "false", Print(Boolean(false)))
	assert.Equal(t, "nil", Print(Nil))
}

func shouldEqual(t *testing.T, val1, val2 Value) {
	t.Helper()
	eq, err := Equals(val1, val2)
	require.NoError(t, err)
	assert.True(t, eq, "\n%v | %v - Expected: equal", val1, val2)
}

func shouldNotEqual(t *testing.T, val1, val2 Value) {
	t.Helper()
	eq, err := Equals(val1, val2)
	require.NoError(t, err)
	assert.False(t, eq, "\n%v | %v - Expected: not equal", val1, val2)
}

func shouldNotCompare(t *testing.T, val1, val2 Value) {
	t.Helper()
	_, err := Equals(val1, val2)
	assert.True(t, IsKind(err, TypeError), "\n%v | %v - Expected: type error", val1, val2)
}
