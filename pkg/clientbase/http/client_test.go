package cbhttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	lgzip "github.com/Puiching-Memory/LMT4SwanLab/pkg/gzip"
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
	lhttptest "github.com/Puiching-Memory/LMT4SwanLab/pkg/http/test"
)

func newTestInstance(t assert.TestingT) *Instance {
	instance, err := NewInstance(&Config{Timeout: 10 * time.Second})
	assert.NoError(t, err)
	return instance
}

// wireHeaderGenerator produces headers that survive a real HTTP round trip:
// canonical keys outside the reserved names and values without whitespace that
// a server would trim.
func wireHeaderGenerator() *rapid.Generator[http.Header] {
	return rapid.Map(
		rapid.MapOfN(
			rapid.Map(
				rapid.StringMatching(`X-[A-Za-z0-9]{1,8}`),
				textproto.CanonicalMIMEHeaderKey,
			),
			rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9._-]{1,12}`), 1, 3),
			0, 4,
		),
		func(v map[string][]string) http.Header { return v })
}

func TestDo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		method := lhttptest.MethodGenerator().Draw(t, "method")
		segment := lhttptest.UrlSegmentGenerator().Draw(t, "segment")
		headers := wireHeaderGenerator().Draw(t, "headers")

		var gotMethod, gotPath string
		var gotHeader http.Header
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotHeader = r.Header.Clone()
			_, _ = w.Write([]byte("payload"))
		}))
		defer server.Close()

		instance := newTestInstance(t)
		response, herr := instance.Do(NewRequest(context.Background(), method, server.URL+"/"+segment, Header(headers)))
		assert.Nil(t, herr)

		body, err := io.ReadAll(response)
		assert.NoError(t, err)
		assert.NoError(t, response.Close())
		assert.Equal(t, "payload", string(body))

		assert.Equal(t, method, gotMethod)
		assert.Equal(t, "/"+segment, gotPath)
		lhttptest.CheckHeaders(t, headers, gotHeader)
	})
}

func TestDoStatusError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.IntRange(400, 599).Draw(t, "code")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte("boom"))
		}))
		defer server.Close()

		instance := newTestInstance(t)
		response, herr := instance.Do(NewRequest(context.Background(), http.MethodGet, server.URL))

		// Property: a non-2xx response is surfaced as an error carrying the
		// status code and the response body.
		assert.Nil(t, response)
		assert.NotNil(t, herr)
		assert.Equal(t, code, herr.Code)
		assert.Equal(t, "boom", herr.Message)
		assert.NoError(t, herr.Err)
	})
}

func TestDoJsonBody(t *testing.T) {
	payload := `{"name":"run"}` + "\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		assert.Equal(t, int64(len(payload)), r.ContentLength)
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, payload, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	instance := newTestInstance(t)
	herr := instance.DoNoResponse(NewRequest(context.Background(), http.MethodPost, server.URL,
		BodyObj(map[string]string{"name": "run"}),
		ContentLength(int64(len(payload))),
	))
	assert.Nil(t, herr)
}

func TestDoGzipBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))
		reader, err := lgzip.NewDecompressReader(r.Body)
		assert.NoError(t, err)
		body, err := io.ReadAll(reader)
		assert.NoError(t, err)
		assert.Equal(t, "metrics payload", string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	instance := newTestInstance(t)
	herr := instance.DoNoResponse(NewRequest(context.Background(), http.MethodPost, server.URL,
		GzipBody(strings.NewReader("metrics payload")),
	))
	assert.Nil(t, herr)
}

func TestDoQueryObj(t *testing.T) {
	type listQuery struct {
		Detail bool `json:"detail"`
		Page   int  `json:"page"`
		Size   int  `json:"size"`
	}

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	instance := newTestInstance(t)
	herr := instance.DoNoResponse(NewRequest(context.Background(), http.MethodGet, server.URL,
		QueryObj(listQuery{Detail: true, Page: 2, Size: 10}),
	))
	assert.Nil(t, herr)

	assert.Equal(t, "true", gotQuery.Get("detail"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "10", gotQuery.Get("size"))
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	payload := `{"name":"run"}` + "\n"

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, payload, string(body), "attempt %d must resend the body", calls)
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	retries := 0
	instance := newTestInstance(t)
	response, herr := instance.Do(NewRequest(context.Background(), http.MethodPost, server.URL,
		BodyObj(map[string]string{"name": "run"}),
		RetryAttempts(3),
		RetryFixedDelay(time.Millisecond),
		RetryIf(func(herr *lhttp.HttpError) bool {
			return herr != nil && herr.Code == http.StatusServiceUnavailable
		}),
		OnRetry(func(n uint, herr *lhttp.HttpError) {
			retries++
		}),
	))
	assert.Nil(t, herr)

	body, err := io.ReadAll(response)
	assert.NoError(t, err)
	assert.NoError(t, response.Close())
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retries)
}

func TestDoRetriesExhausted(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	instance := newTestInstance(t)
	response, herr := instance.Do(NewRequest(context.Background(), http.MethodGet, server.URL,
		RetryAttempts(3),
		RetryFixedDelay(time.Millisecond),
		RetryIf(func(herr *lhttp.HttpError) bool {
			return herr != nil && herr.Code == http.StatusServiceUnavailable
		}),
	))

	assert.Nil(t, response)
	assert.NotNil(t, herr)
	assert.Equal(t, http.StatusServiceUnavailable, herr.Code)
	assert.Equal(t, 3, calls)
}

func TestDoSkipsRetryOnNonRetryableError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	instance := newTestInstance(t)
	_, herr := instance.Do(NewRequest(context.Background(), http.MethodGet, server.URL,
		RetryAttempts(3),
		RetryFixedDelay(time.Millisecond),
		RetryIf(RetryIfBaseError),
	))

	// Property: RetryIfBaseError only retries transport-level failures, a
	// well-formed HTTP error response is returned immediately.
	assert.NotNil(t, herr)
	assert.Equal(t, http.StatusBadRequest, herr.Code)
	assert.Equal(t, 1, calls)
}

func TestDoShortCircuitsOnBuildError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	instance := newTestInstance(t)
	response, herr := instance.Do(NewRequest(context.Background(), http.MethodPost, server.URL,
		BodyObj(make(chan int)),
	))

	assert.Nil(t, response)
	assert.NotNil(t, herr)
	assert.Error(t, herr.Err)
	assert.Equal(t, 0, calls)
}

func TestDoContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	instance := newTestInstance(t)
	response, herr := instance.Do(NewRequest(context.Background(), http.MethodGet, server.URL, Context(ctx)))

	assert.Nil(t, response)
	assert.NotNil(t, herr)
	assert.Error(t, herr.Err)
}

func TestAvoidRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("arrived"))
	}))
	defer server.Close()

	following := newTestInstance(t)
	response, herr := following.Do(NewRequest(context.Background(), http.MethodGet, server.URL+"/old"))
	assert.Nil(t, herr)
	body, err := io.ReadAll(response)
	assert.NoError(t, err)
	assert.NoError(t, response.Close())
	assert.Equal(t, "arrived", string(body))

	avoiding, err := NewInstance(&Config{Timeout: 10 * time.Second, AvoidRedirects: true})
	assert.NoError(t, err)
	response, herr = avoiding.Do(NewRequest(context.Background(), http.MethodGet, server.URL+"/old"))
	assert.Nil(t, response)
	assert.NotNil(t, herr)
	assert.Equal(t, http.StatusFound, herr.Code)
}

func TestWithMiddleware(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var order []string
	tag := func(name string) MiddlewareFunc {
		return func(next RunnerFunc) RunnerFunc {
			return func(r *Request) (*Response, *lhttp.HttpError) {
				order = append(order, name)
				return next(r)
			}
		}
	}

	instance := newTestInstance(t)
	wrapped := instance.With(tag("outer"), tag("inner"))

	herr := wrapped.DoNoResponse(NewRequest(context.Background(), http.MethodGet, server.URL))
	assert.Nil(t, herr)
	assert.Equal(t, []string{"outer", "inner"}, order)

	// The original instance is left without middleware.
	herr = instance.DoNoResponse(NewRequest(context.Background(), http.MethodGet, server.URL))
	assert.Nil(t, herr)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRequestClone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		headers := lhttptest.HeadersGenerator().Draw(t, "headers")

		original := NewRequest(context.Background(), http.MethodGet, "http://example.com",
			Header(headers),
			Query(url.Values{"page": {"1"}}),
			ContentLength(42),
		)
		clone := original.Clone()

		assert.Equal(t, original.Method, clone.Method)
		assert.Equal(t, original.URI, clone.URI)
		assert.Equal(t, original.Header, clone.Header)
		assert.Equal(t, original.Query, clone.Query)
		assert.Equal(t, original.ContentLength, clone.ContentLength)

		// Property: mutating the clone leaves the original untouched.
		clone.Header.Set("X-Clone-Probe", "1")
		clone.Query.Set("probe", "x")
		assert.Empty(t, original.Header.Get("X-Clone-Probe"))
		assert.Empty(t, original.Query.Get("probe"))
	})
}
