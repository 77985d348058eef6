package ltest

import (
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// T is the narrow testing surface shared by *testing.T and property-test
// runs, so fixtures like httptest servers work under both.
type T interface {
	Helper()
	Fatalf(format string, args ...interface{})
	Cleanup(func())
	assert.TestingT
}

// RapidT adapts a *rapid.T to T. Failures route to the embedded rapid.T so
// that a failing draw is shrunk; cleanups are collected per draw and released
// by RunCleanup, since rapid runs many draws inside one test.
type RapidT struct {
	*rapid.T
	cleanups []func()
}

func NewRapidT(t *rapid.T) *RapidT {
	return &RapidT{T: t}
}

func (r *RapidT) Helper() {}

func (r *RapidT) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

// RunCleanup releases the fixtures of one draw, last registered first.
// Callers defer it at the top of the property body.
func (r *RapidT) RunCleanup() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
}

var _ T = &RapidT{}
