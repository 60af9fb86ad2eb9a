package test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// D parses a decimal literal. It panics on malformed input.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ND returns a valid NullDecimal for a decimal literal.
func ND(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(D(s))
}

// AssertDecimal asserts that two decimals are numerically equal.
//
// assert.Equal compares the internal representation, which differs for
// e.g. 10 and 10.00.
func AssertDecimal(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...any) bool {
	t.Helper()

	if expected.Equal(actual) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("Not equal:\nexpected: %s\nactual  : %s", expected, actual), msgAndArgs...)
}
