package tools

import (
	"context"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/openapi"
)

func definitions() []Definition {
	return []Definition{
		listWorkspacesTool(),
		listProjectsTool(),
		deleteProjectTool(),
		listExperimentsTool(),
		getExperimentTool(),
		deleteExperimentTool(),
		getSummaryTool(),
		getMetricsTool(),
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func usernameProperty() map[string]interface{} {
	return stringProperty("Workspace username owning the project. Defaults to the authenticated user.")
}

func requireProject(args Arguments) error {
	if args.Project == "" {
		return openapi.NewValidationError("missing required argument: project")
	}
	return nil
}

func requireExperiment(args Arguments) error {
	if args.ExpId == "" {
		return openapi.NewValidationError("missing required argument: exp_id")
	}
	return nil
}

func listWorkspacesTool() Definition {
	return Definition{
		Name:        "swanlab_list_workspaces",
		Description: "List the workspaces the authenticated user belongs to.",
		InputSchema: objectSchema(map[string]interface{}{}),
		ReadOnly:    true,
		Call: func(ctx context.Context, api openapi.Api, _ Arguments) (interface{}, error) {
			return api.ListWorkspaces(ctx)
		},
		Format: formatWorkspaces,
	}
}

func listProjectsTool() Definition {
	return Definition{
		Name:        "swanlab_list_projects",
		Description: "List the projects of a workspace, with usage counters unless detail is disabled.",
		InputSchema: objectSchema(map[string]interface{}{
			"username": usernameProperty(),
			"detail": map[string]interface{}{
				"type":        "boolean",
				"description": "Include usage counters for each project. Defaults to true.",
			},
		}),
		ReadOnly: true,
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			detail := true
			if args.Detail != nil {
				detail = *args.Detail
			}
			return api.ListProjects(ctx, args.Username, detail)
		},
		Format: formatProjects,
	}
}

func deleteProjectTool() Definition {
	return Definition{
		Name:        "swanlab_delete_project",
		Description: "Delete a project and every experiment in it. This cannot be undone.",
		InputSchema: objectSchema(map[string]interface{}{
			"project":  stringProperty("Name of the project to delete."),
			"username": usernameProperty(),
		}, "project"),
		Validate: requireProject,
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			if err := api.DeleteProject(ctx, args.Project, args.Username); err != nil {
				return nil, err
			}
			return map[string]string{"project": args.Project, "status": "deleted"}, nil
		},
		Format: formatDeleted("project"),
	}
}

func listExperimentsTool() Definition {
	return Definition{
		Name:        "swanlab_list_experiments",
		Description: "List the experiments (runs) of a project.",
		InputSchema: objectSchema(map[string]interface{}{
			"project":  stringProperty("Name of the project whose experiments to list."),
			"username": usernameProperty(),
		}, "project"),
		ReadOnly: true,
		Validate: requireProject,
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			return api.ListExperiments(ctx, args.Project, args.Username)
		},
		Format: formatExperiments,
	}
}

func getExperimentTool() Definition {
	return Definition{
		Name:        "swanlab_get_experiment",
		Description: "Get one experiment with its full configuration and metadata.",
		InputSchema: objectSchema(map[string]interface{}{
			"project":  stringProperty("Name of the project containing the experiment."),
			"exp_id":   stringProperty("Unique id (CUID) of the experiment."),
			"username": usernameProperty(),
		}, "project", "exp_id"),
		ReadOnly: true,
		Validate: func(args Arguments) error {
			if err := requireProject(args); err != nil {
				return err
			}
			return requireExperiment(args)
		},
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			return api.GetExperiment(ctx, args.Project, args.ExpId, args.Username)
		},
		Format: formatExperiment,
	}
}

func deleteExperimentTool() Definition {
	return Definition{
		Name:        "swanlab_delete_experiment",
		Description: "Delete one experiment from a project. This cannot be undone.",
		InputSchema: objectSchema(map[string]interface{}{
			"project":  stringProperty("Name of the project containing the experiment."),
			"exp_id":   stringProperty("Unique id (CUID) of the experiment to delete."),
			"username": usernameProperty(),
		}, "project", "exp_id"),
		Validate: func(args Arguments) error {
			if err := requireProject(args); err != nil {
				return err
			}
			return requireExperiment(args)
		},
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			if err := api.DeleteExperiment(ctx, args.Project, args.ExpId, args.Username); err != nil {
				return nil, err
			}
			return map[string]string{"exp_id": args.ExpId, "status": "deleted"}, nil
		},
		Format: formatDeleted("experiment"),
	}
}

func getSummaryTool() Definition {
	return Definition{
		Name:        "swanlab_get_summary",
		Description: "Get per-metric summary statistics (latest, minimum, maximum) for an experiment.",
		InputSchema: objectSchema(map[string]interface{}{
			"project":  stringProperty("Name of the project containing the experiment."),
			"exp_id":   stringProperty("Unique id (CUID) of the experiment."),
			"username": usernameProperty(),
		}, "project", "exp_id"),
		ReadOnly: true,
		Validate: func(args Arguments) error {
			if err := requireProject(args); err != nil {
				return err
			}
			return requireExperiment(args)
		},
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			return api.GetSummary(ctx, args.Project, args.ExpId, args.Username)
		},
		Format: formatSummary,
	}
}

func getMetricsTool() Definition {
	return Definition{
		Name:        "swanlab_get_metrics",
		Description: "Fetch the raw step and value rows for the given metric keys of an experiment.",
		InputSchema: objectSchema(map[string]interface{}{
			"exp_id": stringProperty("Unique id (CUID) of the experiment."),
			"keys": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"minItems":    1,
				"description": "Metric keys to fetch, for example [\"loss\", \"accuracy\"]. Keys without data are skipped.",
			},
		}, "exp_id", "keys"),
		ReadOnly: true,
		Validate: func(args Arguments) error {
			if err := requireExperiment(args); err != nil {
				return err
			}
			for _, key := range args.Keys {
				if key != "" {
					return nil
				}
			}
			return openapi.NewValidationError("missing required argument: keys (at least one metric key)")
		},
		Call: func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error) {
			return api.GetMetrics(ctx, args.ExpId, args.Keys)
		},
		Format: formatMetrics,
	}
}
