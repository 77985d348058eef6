package openapi

import (
	"context"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
)

type pageQuery struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// ListExperiments returns every experiment of a project, walking the
// paginated run-list endpoint. The list endpoint already returns fully
// populated records, so no per-field defaulting is applied here.
func (c *Client) ListExperiments(ctx context.Context, project string, username string) ([]Experiment, error) {
	if project == "" {
		return nil, NewValidationError("project name is required")
	}

	experiments := make([]Experiment, 0)
	for page := 1; ; page++ {
		var resp experimentListResponse
		err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
			return c.authedRequest(ctx, "GET", c.apiUrl("/project/%s/%s/runs", pathSegment(resolveUser(username, s)), pathSegment(project)), s,
				cbhttp.QueryObj(&pageQuery{Page: page, Size: pageSize}))
		}, &resp)
		if err != nil {
			return nil, err
		}

		if len(resp.List) == 0 {
			break
		}
		experiments = append(experiments, resp.List...)
		if len(experiments) >= resp.Total {
			break
		}
	}
	return experiments, nil
}

// GetExperiment fetches a single experiment. The single-resource endpoint
// may omit optional fields that the list endpoint populates, so the record
// is normalized before it is returned.
func (c *Client) GetExperiment(ctx context.Context, project string, expId string, username string) (*Experiment, error) {
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}

	var exp Experiment
	err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "GET", c.apiUrl("/project/%s/%s/runs/%s", pathSegment(resolveUser(username, s)), pathSegment(project), pathSegment(expId)), s)
	}, &exp)
	if err != nil {
		return nil, err
	}
	exp.normalize()
	return &exp, nil
}

// DeleteExperiment removes a single experiment from a project.
func (c *Client) DeleteExperiment(ctx context.Context, project string, expId string, username string) error {
	if project == "" {
		return NewValidationError("project name is required")
	}
	if expId == "" {
		return NewValidationError("experiment id is required")
	}
	return c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "DELETE", c.apiUrl("/project/%s/%s/runs/%s", pathSegment(resolveUser(username, s)), pathSegment(project), pathSegment(expId)), s)
	}, nil)
}
