package openapi

import (
	"context"
)

type WorkspaceStore interface {
	ListWorkspaces(ctx context.Context) ([]Workspace, error)
}

type ProjectStore interface {
	ListProjects(ctx context.Context, username string, detail bool) ([]Project, error)
	DeleteProject(ctx context.Context, project string, username string) error
}

type ExperimentStore interface {
	ListExperiments(ctx context.Context, project string, username string) ([]Experiment, error)
	GetExperiment(ctx context.Context, project string, expId string, username string) (*Experiment, error)
	DeleteExperiment(ctx context.Context, project string, expId string, username string) error
}

type MetricStore interface {
	GetSummary(ctx context.Context, project string, expId string, username string) (Summary, error)
	GetMetrics(ctx context.Context, expId string, keys []string) (MetricsData, error)
}

type Api interface {
	WorkspaceStore
	ProjectStore
	ExperimentStore
	MetricStore
}
