package openapi

import (
	"context"
	"fmt"
)

// ApiMock serves canned records for tests of the layers above the client.
type ApiMock struct {
	Workspaces  []Workspace
	Projects    map[string][]Project
	Experiments map[string][]Experiment
	Summaries   map[string]Summary
	Metrics     map[string]MetricsData
	Deleted     []string
	Err         error
}

var _ Api = &ApiMock{}

func (m *ApiMock) ListWorkspaces(_ context.Context) ([]Workspace, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Workspaces, nil
}

func (m *ApiMock) ListProjects(_ context.Context, username string, _ bool) ([]Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Projects[username], nil
}

func (m *ApiMock) DeleteProject(_ context.Context, project string, username string) error {
	if m.Err != nil {
		return m.Err
	}
	if project == "" {
		return NewValidationError("project name is required")
	}
	m.Deleted = append(m.Deleted, fmt.Sprintf("project:%s/%s", username, project))
	return nil
}

func (m *ApiMock) ListExperiments(_ context.Context, project string, _ string) ([]Experiment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	return m.Experiments[project], nil
}

func (m *ApiMock) GetExperiment(_ context.Context, project string, expId string, _ string) (*Experiment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}
	for i := range m.Experiments[project] {
		if m.Experiments[project][i].Cuid == expId {
			exp := m.Experiments[project][i]
			exp.normalize()
			return &exp, nil
		}
	}
	return nil, &TransportError{Status: 404, Message: "experiment not found"}
}

func (m *ApiMock) DeleteExperiment(_ context.Context, project string, expId string, username string) error {
	if m.Err != nil {
		return m.Err
	}
	if project == "" {
		return NewValidationError("project name is required")
	}
	if expId == "" {
		return NewValidationError("experiment id is required")
	}
	m.Deleted = append(m.Deleted, fmt.Sprintf("experiment:%s/%s/%s", username, project, expId))
	return nil
}

func (m *ApiMock) GetSummary(_ context.Context, project string, expId string, _ string) (Summary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}
	if summary, ok := m.Summaries[expId]; ok {
		return summary, nil
	}
	return Summary{}, nil
}

func (m *ApiMock) GetMetrics(_ context.Context, expId string, keys []string) (MetricsData, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}
	result := make(MetricsData)
	seen := make(map[string]bool)
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if rows, ok := m.Metrics[expId][key]; ok {
			result[key] = rows
		}
	}
	return result, nil
}
