package cbhttp

import lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"

type Client interface {
	Do(r *Request, m ...MiddlewareFunc) (*Response, *lhttp.HttpError)
}
