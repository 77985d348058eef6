package openapi

import (
	"context"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
)

// ListWorkspaces returns the workspaces the authenticated user belongs to.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var resp workspaceListResponse
	err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "GET", c.apiUrl("/group/"), s)
	}, &resp)
	if err != nil {
		return nil, err
	}

	workspaces := make([]Workspace, 0, len(resp.List))
	workspaces = append(workspaces, resp.List...)
	return workspaces, nil
}
