// Package lhttptest carries shared generators and assertions for http
// round-trip tests.
package lhttptest

import (
	"net/http"
	"net/textproto"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func MethodGenerator() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
	})
}

// UrlSegmentGenerator yields a single path segment, possibly empty.
func UrlSegmentGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z0-9-]*`)
}

// HeadersGenerator yields headers with canonical keys and arbitrary values.
// Values are not constrained to survive a wire round trip.
func HeadersGenerator() *rapid.Generator[http.Header] {
	return rapid.Map(
		rapid.MapOf(
			rapid.Map(rapid.StringMatching(`\w+`), textproto.CanonicalMIMEHeaderKey),
			rapid.SliceOf(rapid.String()),
		),
		func(v map[string][]string) http.Header { return v })
}

// CheckHeaders asserts that every key in want arrived in got with the same
// values.
func CheckHeaders(t assert.TestingT, want, got http.Header) {
	for k, values := range want {
		assert.ElementsMatchf(t, values, got.Values(k), "values don't match for key %s", k)
	}
}
