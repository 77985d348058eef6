package openapi

import (
	"context"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
)

// GetSummary assembles the per-metric summary statistics for an experiment.
// The backend offers no single call for this, so three dependent requests
// are made in order: the project lookup resolves the project id, the
// experiment lookup resolves the clone lineage, and the summaries endpoint
// produces the raw per-metric map. Any step failing aborts the whole
// composition.
func (c *Client) GetSummary(ctx context.Context, project string, expId string, username string) (Summary, error) {
	if project == "" {
		return nil, NewValidationError("project name is required")
	}
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}

	proj, err := c.getProject(ctx, project, username)
	if err != nil {
		return nil, err
	}

	exp, err := c.GetExperiment(ctx, project, expId, username)
	if err != nil {
		return nil, err
	}

	request := summaryRequest{
		ExperimentId: expId,
		ProjectId:    proj.Cuid,
	}
	// A cloned experiment carries its metrics on the original run. Pointing
	// the backend at the root ids requires both of them.
	if exp.RootExpId != "" && exp.RootProId != "" {
		request.RootExperimentId = exp.RootExpId
		request.RootProjectId = exp.RootProId
	}

	var keyed map[string]map[string]rawSummaryItem
	err = c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "POST", c.apiUrl("/house/metrics/summaries"), s,
			cbhttp.BodyObj([]summaryRequest{request}))
	}, &keyed)
	if err != nil {
		return nil, err
	}

	// The batch held a single element, so the response carries exactly one
	// keyed entry.
	summary := Summary{}
	for _, rawItems := range keyed {
		for name, item := range rawItems {
			summary[name] = SummaryItem{
				Step:  item.Step,
				Value: item.Value,
				Min:   SummaryPoint{Step: item.Min.Index, Value: item.Min.Data},
				Max:   SummaryPoint{Step: item.Max.Index, Value: item.Max.Data},
			}
		}
		break
	}
	return summary, nil
}
