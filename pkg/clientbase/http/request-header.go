package cbhttp

import (
	"net/http"
)

func ensureHeader(r *Request) http.Header {
	if r.Header == nil {
		r.Header = http.Header{}
	}
	return r.Header
}

// AddHeader appends value under key, keeping any existing values.
func AddHeader(key, value string) RequestOption {
	return func(r *Request) *Request {
		ensureHeader(r).Add(key, value)
		return r
	}
}

// SetHeader replaces any existing values for key.
func SetHeader(key, value string) RequestOption {
	return func(r *Request) *Request {
		ensureHeader(r).Set(key, value)
		return r
	}
}

// Header replaces the whole header set with a copy of h.
func Header(h http.Header) RequestOption {
	return func(r *Request) *Request {
		if h != nil {
			r.Header = h.Clone()
		}
		return r
	}
}
