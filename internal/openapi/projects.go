package openapi

import (
	"context"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
)

type projectPageQuery struct {
	Detail bool `json:"detail"`
	Page   int  `json:"page"`
	Size   int  `json:"size"`
}

// ListProjects returns every project in the given user's scope, walking the
// paginated endpoint until a page comes back empty or the server-reported
// total is reached. An empty username targets the authenticated user.
func (c *Client) ListProjects(ctx context.Context, username string, detail bool) ([]Project, error) {
	projects := make([]Project, 0)
	for page := 1; ; page++ {
		var resp projectListResponse
		err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
			return c.authedRequest(ctx, "GET", c.apiUrl("/project/%s", pathSegment(resolveUser(username, s))), s,
				cbhttp.QueryObj(&projectPageQuery{Detail: detail, Page: page, Size: pageSize}))
		}, &resp)
		if err != nil {
			return nil, err
		}

		if len(resp.List) == 0 {
			break
		}
		for i := range resp.List {
			projects = append(projects, resp.List[i].toProject())
		}
		if len(projects) >= resp.Total {
			break
		}
	}
	return projects, nil
}

// DeleteProject removes a project from the given user's scope.
func (c *Client) DeleteProject(ctx context.Context, project string, username string) error {
	if project == "" {
		return NewValidationError("project name is required")
	}
	return c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "DELETE", c.apiUrl("/project/%s/%s", pathSegment(resolveUser(username, s)), pathSegment(project)), s)
	}, nil)
}

// getProject fetches a single project, primarily to resolve its unique id.
func (c *Client) getProject(ctx context.Context, project string, username string) (*Project, error) {
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	var raw rawProject
	err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "GET", c.apiUrl("/project/%s/%s", pathSegment(resolveUser(username, s)), pathSegment(project)), s)
	}, &raw)
	if err != nil {
		return nil, err
	}
	result := raw.toProject()
	return &result, nil
}
