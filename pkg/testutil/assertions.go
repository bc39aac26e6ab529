package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertUnitInterval checks that v lies in [0, 1].
func AssertUnitInterval(t *testing.T, v float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.GreaterOrEqual(t, v, 0.0, msgAndArgs...)
	assert.LessOrEqual(t, v, 1.0, msgAndArgs...)
}

// AssertMultipleOf checks that v is an exact multiple of step.
func AssertMultipleOf(t *testing.T, v, step int64, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotZero(t, step)
	assert.Zero(t, v%step, msgAndArgs...)
}
