package clientbase

import (
	"github.com/google/wire"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
	interceptors_inflight "github.com/Puiching-Memory/LMT4SwanLab/pkg/interceptors/in-flight"
)

// WireSet provides the outbound connection bundle.
var WireSet = wire.NewSet(
	NewConfigFromEnv,
	NewConnections,
)

type Connections struct {
	Cfg        *Config
	HttpClient *cbhttp.Instance
}

func NewConnections(cfg *Config, httpClient *cbhttp.Instance, limiter *interceptors_inflight.Interceptor) (*Connections, error) {
	c := &Connections{
		Cfg: cfg,
	}

	c.HttpClient = httpClient.With(limiter.ToClientMiddleware(), userAgent(cfg.UserAgent))

	return c, nil
}

func (c *Connections) Close() {
	c.HttpClient.Close()
}

func userAgent(agent string) cbhttp.MiddlewareFunc {
	return func(next cbhttp.RunnerFunc) cbhttp.RunnerFunc {
		return func(r *cbhttp.Request) (*cbhttp.Response, *lhttp.HttpError) {
			if r.Header.Get("User-Agent") == "" {
				r = cbhttp.SetHeader("user-agent", agent)(r)
			}
			return next(r)
		}
	}
}
