package openapi

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	cbhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/clientbase/http"
	lgzip "github.com/Puiching-Memory/LMT4SwanLab/pkg/gzip"
)

const csvRetryAttempts = 3

// GetMetrics retrieves the time series for the requested metric keys. Keys
// are deduplicated preserving first occurrence. A key whose export fails is
// skipped rather than failing the batch, since the backend storage does not
// necessarily hold data for every requested key; skipped keys are simply
// absent from the result.
func (c *Client) GetMetrics(ctx context.Context, expId string, keys []string) (MetricsData, error) {
	if expId == "" {
		return nil, NewValidationError("experiment id is required")
	}

	result := make(MetricsData)
	seen := make(map[string]bool)
	var skipped *multierror.Error
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		rows, err := c.fetchMetric(ctx, expId, key)
		if err != nil {
			skipped = multierror.Append(skipped, errors.Wrapf(err, "key %q", key))
			continue
		}
		result[key] = rows
	}

	if skipped != nil {
		log.Warnf("skipped %d of %d metric keys for experiment %s: %s", len(skipped.Errors), len(seen), expId, skipped)
	}
	return result, nil
}

// fetchMetric resolves the export descriptor for one key and downloads the
// referenced tabular payload.
func (c *Client) fetchMetric(ctx context.Context, expId string, key string) ([]MetricRow, error) {
	var desc columnCsvResponse
	err := c.doEnvelope(ctx, func(s *Session) *cbhttp.Request {
		return c.authedRequest(ctx, "GET", c.apiUrl("/experiment/%s/column/csv", pathSegment(expId)), s,
			cbhttp.Query(url.Values{"key": []string{key}}))
	}, &desc)
	if err != nil {
		return nil, err
	}
	if desc.Url == "" {
		return nil, &TransportError{Message: "column export has no download url"}
	}

	payload, err := c.fetchCsv(ctx, desc.Url)
	if err != nil {
		return nil, err
	}
	return parseMetricRows(payload), nil
}

// fetchCsv downloads the raw export. The URL points at external storage, so
// the request carries no session credential; transient network failures are
// retried a few times.
func (c *Client) fetchCsv(ctx context.Context, uri string) (string, error) {
	req := cbhttp.NewRequest(ctx, "GET", uri,
		cbhttp.SetHeader("accept-encoding", "gzip"),
		cbhttp.RetryAttempts(csvRetryAttempts),
		cbhttp.RetryIf(cbhttp.RetryIfBaseError),
		cbhttp.RetryMaxDelay(2*time.Second))

	resp, herr := c.connections.HttpClient.Do(req)
	if herr != nil {
		return "", fromHttpError(herr)
	}
	defer resp.Close()

	var reader io.Reader = resp
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := lgzip.NewDecompressReader(resp)
		if err != nil {
			return "", &TransportError{Err: err}
		}
		defer gz.Close()
		reader = gz
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	return string(payload), nil
}
