package cbhttp

import (
	"bytes"
	"encoding/json"
	"io"

	lgzip "github.com/Puiching-Memory/LMT4SwanLab/pkg/gzip"
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
)

// BodyObj encodes obj as the json request body.
func BodyObj(obj interface{}) RequestOption {
	return func(r *Request) *Request {
		buffer := &bytes.Buffer{}

		if err := json.NewEncoder(buffer).Encode(obj); err != nil {
			r.HErr = &lhttp.HttpError{Err: err}
			return r
		}

		r.Body = io.NopCloser(buffer)
		return AddHeader("content-type", "application/json")(r)
	}
}

func Body(reader io.Reader) RequestOption {
	if readcloser, ok := reader.(io.ReadCloser); ok {
		return func(r *Request) *Request {
			r.Body = readcloser
			return r
		}
	}
	return func(r *Request) *Request {
		r.Body = io.NopCloser(reader)
		return r
	}
}

// GzipBody streams reader through gzip as the request body.
func GzipBody(reader io.Reader) RequestOption {
	return func(r *Request) *Request {
		return Body(lgzip.NewCompressReader(reader))(AddHeader("Content-Encoding", "gzip")(r))
	}
}
