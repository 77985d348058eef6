package openapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/secret"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase"
	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	cbhttpmiddleware "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http/middleware"
	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
)

const pageSize = 10

type Client struct {
	cfg         *config.Config
	secrets     secret.Store
	connections *clientbase.Connections

	mu      sync.RWMutex
	session *Session

	loginGroup singleflight.Group
}

var _ Api = &Client{}

func NewClient(cfg *config.Config, secrets secret.Store, connections *clientbase.Connections) *Client {
	return &Client{
		cfg:         cfg,
		secrets:     secrets,
		connections: connections,
	}
}

func (c *Client) apiUrl(format string, args ...interface{}) string {
	return c.cfg.ApiHost + fmt.Sprintf(format, args...)
}

func pathSegment(segment string) string {
	return url.PathEscape(segment)
}

func resolveUser(username string, s *Session) string {
	if username != "" {
		return username
	}
	return s.Username
}

// requestBuilder produces a fresh request for one attempt. It is invoked
// again for the replay after a session renewal so that the body and the
// credential are rebuilt rather than reused.
type requestBuilder func(s *Session) *cbhttp.Request

func (c *Client) authedRequest(ctx context.Context, method, uri string, s *Session, options ...cbhttp.RequestOption) *cbhttp.Request {
	opts := append([]cbhttp.RequestOption{cbhttp.SetHeader("cookie", fmt.Sprintf("sid=%s", s.Sid))}, options...)
	return cbhttp.NewRequest(ctx, method, uri, opts...)
}

// doEnvelope performs one authenticated, envelope-wrapped exchange. A 401
// triggers exactly one session renewal and one replay; if the renewal fails
// the original 401 is surfaced, and a second consecutive 401 becomes an
// AuthenticationError.
func (c *Client) doEnvelope(ctx context.Context, build requestBuilder, target interface{}) error {
	s, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	env, herr := c.exchange(build(s))
	if herr != nil && herr.Code == http.StatusUnauthorized {
		c.invalidate(s)
		fresh, lerr := c.ensureSession(ctx)
		if lerr != nil {
			return fromHttpError(herr)
		}
		env, herr = c.exchange(build(fresh))
		if herr != nil && herr.Code == http.StatusUnauthorized {
			return &AuthenticationError{Message: fmt.Sprintf("still unauthorized after renewing session: %s", herr.Message)}
		}
	}
	if herr != nil {
		return fromHttpError(herr)
	}
	return env.unwrap(target)
}

func (c *Client) exchange(req *cbhttp.Request) (*envelope, *lhttp.HttpError) {
	var env envelope
	if herr := c.connections.HttpClient.DoNoResponse(req, cbhttpmiddleware.JsonDecoder(&env)); herr != nil {
		return nil, herr
	}
	return &env, nil
}
