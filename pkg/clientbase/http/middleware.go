package cbhttp

import (
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
)

type RunnerFunc func(r *Request) (*Response, *lhttp.HttpError)
type MiddlewareFunc func(next RunnerFunc) RunnerFunc
