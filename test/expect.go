// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"testing"
)

// ExpectEquality fails the test if value does not equal expected.
func ExpectEquality[T comparable](t *testing.T, value T, expected T) bool {
	t.Helper()
	if value != expected {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expected)
		return false
	}
	return true
}

// ExpectInequality fails the test if value equals notExpected.
func ExpectInequality[T comparable](t *testing.T, value T, notExpected T) bool {
	t.Helper()
	if value == notExpected {
		t.Errorf("inequality test of type %T failed: '%v' equals '%v'", value, value, notExpected)
		return false
	}
	return true
}

// ExpectSuccess fails the test if v indicates failure. Supported types are
// bool, error and nil.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		t.Errorf("expected success (error: %v)", v)
		return false
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectFailure fails the test if v indicates success. Supported types are
// bool, error and nil.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}
