package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/openapi"
)

func formatWorkspaces(value interface{}) []string {
	workspaces := value.([]openapi.Workspace)
	if len(workspaces) == 0 {
		return []string{"no workspaces found"}
	}
	lines := make([]string, 0, len(workspaces))
	for _, workspace := range workspaces {
		lines = append(lines, fmt.Sprintf("%s (username %s, role %s)", workspace.Name, workspace.Username, workspace.Role))
	}
	return lines
}

func formatProjects(value interface{}) []string {
	projects := value.([]openapi.Project)
	if len(projects) == 0 {
		return []string{"no projects found"}
	}
	lines := make([]string, 0, len(projects))
	for _, project := range projects {
		if project.Count != nil {
			lines = append(lines, fmt.Sprintf("%s (%s, %d experiments)", project.Name, project.Visibility, project.Count.Experiments))
		} else {
			lines = append(lines, fmt.Sprintf("%s (%s)", project.Name, project.Visibility))
		}
	}
	return lines
}

func formatExperiments(value interface{}) []string {
	experiments := value.([]openapi.Experiment)
	if len(experiments) == 0 {
		return []string{"no experiments found"}
	}
	lines := make([]string, 0, len(experiments))
	for _, experiment := range experiments {
		lines = append(lines, fmt.Sprintf("%s %s (%s)", experiment.Cuid, experiment.Name, experiment.State))
	}
	return lines
}

func formatExperiment(value interface{}) []string {
	experiment := value.(*openapi.Experiment)
	lines := []string{
		fmt.Sprintf("%s (%s)", experiment.Name, experiment.Cuid),
		fmt.Sprintf("state: %s", experiment.State),
		fmt.Sprintf("created: %s", experiment.CreatedAt),
	}
	if experiment.FinishedAt != nil {
		lines = append(lines, fmt.Sprintf("finished: %s", *experiment.FinishedAt))
	}
	if experiment.Description != "" {
		lines = append(lines, experiment.Description)
	}
	if len(experiment.Tags) > 0 {
		lines = append(lines, "tags: "+strings.Join(experiment.Tags, ", "))
	}
	return lines
}

func formatDeleted(kind string) func(value interface{}) []string {
	return func(value interface{}) []string {
		record := value.(map[string]string)
		name := record["project"]
		if kind == "experiment" {
			name = record["exp_id"]
		}
		return []string{fmt.Sprintf("deleted %s %s", kind, name)}
	}
}

func formatSummary(value interface{}) []string {
	summary := value.(openapi.Summary)
	if len(summary) == 0 {
		return []string{"no summary metrics recorded"}
	}
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		item := summary[name]
		lines = append(lines, fmt.Sprintf("%s: %g at step %d (min %g at step %d, max %g at step %d)",
			name, item.Value, item.Step, item.Min.Value, item.Min.Step, item.Max.Value, item.Max.Step))
	}
	return lines
}

func formatMetrics(value interface{}) []string {
	data := value.(openapi.MetricsData)
	if len(data) == 0 {
		return []string{"no metric data returned"}
	}
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d rows", key, len(data[key])))
	}
	return lines
}
