package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertEqualNilable compares two nilable values, treating two nils as equal.
func AssertEqualNilable[T comparable](t *testing.T, expected, actual *T, msg string) {
	t.Helper()
	if expected == nil && actual == nil {
		return
	}
	if expected == nil || actual == nil {
		t.Errorf("%s: one value is nil while the other is not (expected=%v, actual=%v)", msg, expected, actual)
		return
	}
	assert.Equal(t, *expected, *actual, msg)
}

// AssertEqualIfExpectedNotNil asserts equality only when an expected value was
// provided, for partial-update style requests.
func AssertEqualIfExpectedNotNil[T comparable](t *testing.T, expected *T, actual T, msg string) {
	t.Helper()
	if expected == nil {
		return
	}
	assert.Equal(t, *expected, actual, msg)
}
