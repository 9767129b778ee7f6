// Package testutil provides shared test utilities for the numeric and HTTP
// test suites.
package testutil

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

// AssertInDelta checks that got is within delta of want.
func AssertInDelta(t *testing.T, got, want, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > delta {
		t.Errorf("got %g, want %g ± %g", got, want, delta)
	}
}

// AssertRelError checks the relative error |got-want| / |want| against tol.
// want must be non-zero.
func AssertRelError(t *testing.T, got, want, tol float64) {
	t.Helper()
	if want == 0 {
		t.Fatal("AssertRelError needs non-zero want; use AssertInDelta")
	}
	if rel := math.Abs(got-want) / math.Abs(want); math.IsNaN(got) || rel > tol {
		t.Errorf("got %g, want %g (rel error %g > %g)", got, want, math.Abs(got-want)/math.Abs(want), tol)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// NewTestRequest creates a test HTTP request.
func NewTestRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// NewTestRecorder creates a test response recorder.
func NewTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
