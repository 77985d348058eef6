package openapi

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	cbhttpmiddleware "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http/middleware"
)

// ensureSession returns the current session, logging in first when none has
// been established yet.
func (c *Client) ensureSession(ctx context.Context) (*Session, error) {
	c.mu.RLock()
	s := c.session
	c.mu.RUnlock()
	if s != nil {
		return s, nil
	}
	return c.login(ctx)
}

// login serializes concurrent login attempts. All callers arriving while a
// login is in flight share its outcome instead of issuing duplicates.
func (c *Client) login(ctx context.Context) (*Session, error) {
	result, err, _ := c.loginGroup.Do("login", func() (interface{}, error) {
		return c.doLogin(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Session), nil
}

func (c *Client) doLogin(ctx context.Context) (*Session, error) {
	key, err := c.secrets.ApiKey()
	if err != nil {
		return nil, &AuthenticationError{Message: fmt.Sprintf("api key is not available: %s", err)}
	}

	req := cbhttp.NewRequest(ctx, "POST", c.apiUrl("/login/api_key"),
		cbhttp.SetHeader("authorization", key))

	var login loginResponse
	if herr := c.connections.HttpClient.DoNoResponse(req, cbhttpmiddleware.JsonDecoder(&login)); herr != nil {
		switch herr.Code {
		case http.StatusUnauthorized:
			return nil, &AuthenticationError{Message: "login failed: api key is invalid"}
		case http.StatusForbidden:
			return nil, &AuthenticationError{Message: "login failed: account is not verified"}
		}
		return nil, fromHttpError(herr)
	}

	session := &Session{
		Sid:       login.Sid,
		ExpiredAt: login.ExpiredAt,
		Username:  login.UserInfo.Username,
		ApiHost:   c.cfg.ApiHost,
		WebHost:   c.cfg.WebHost,
		ApiKey:    key,
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	log.Debugf("logged in to %s as %s", session.ApiHost, session.Username)
	return session, nil
}

// invalidate drops the session that produced a 401. It leaves the state
// untouched when another caller has already renewed it.
func (c *Client) invalidate(stale *Session) {
	c.mu.Lock()
	if c.session == stale {
		c.session = nil
	}
	c.mu.Unlock()
}
