package openapi

import (
	"encoding/json"
)

// envelope is the uniform response wrapper used by the backend. A non-empty
// errmsg or a code outside [200,300) signals an application-level failure
// regardless of the HTTP status.
type envelope struct {
	Code   int             `json:"code"`
	Errmsg string          `json:"errmsg"`
	Data   json.RawMessage `json:"data"`
}

func (e *envelope) unwrap(target interface{}) error {
	if e.Errmsg != "" || e.Code < 200 || e.Code >= 300 {
		return &ApplicationError{Code: e.Code, Errmsg: e.Errmsg}
	}
	if target == nil {
		return nil
	}
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return &TransportError{Message: "response data is empty"}
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}
