// Package api is the HTTP client for the agent backend. Responses are
// normalized into domain records on the way in; drafts are translated to
// the backend vocabulary on the way out. No retries, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aibox/boxctl/internal/config"
	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/logging"
)

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to one agent backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logging.Logger
}

// New creates a Client from backend configuration.
func New(cfg config.BackendConfig, log *logging.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		log:     log.Sub("api"),
	}
}

// do performs one JSON round trip. A non-2xx status yields a *StatusError;
// out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s: failed to parse response: %w", op, err)
		}
	}
	return nil
}

// List fetches all agent summaries. Summaries carry no config or stats,
// so the normalized records come back with defaults in those fields.
func (c *Client) List(ctx context.Context) ([]domain.Agent, error) {
	var summaries []backendAgentSummary
	if err := c.do(ctx, "list agents", http.MethodGet, "/agents", nil, &summaries); err != nil {
		return nil, err
	}

	zero := 0
	active := true
	agents := make([]domain.Agent, 0, len(summaries))
	for _, s := range summaries {
		agents = append(agents, agentFromBackend(backendAgentDetail{
			backendAgentSummary: s,
			IsActive:            &active,
			ExecutionCount:      &zero,
		}, nil))
	}
	return agents, nil
}

// Get fetches one agent's detail and stats in parallel. A 404 on the
// detail yields (nil, nil): not found is an outcome, not an error. A
// stats failure is absorbed; the record then carries default statistics.
func (c *Client) Get(ctx context.Context, id string) (*domain.Agent, error) {
	var (
		detail   backendAgentDetail
		stats    *backendStats
		notFound bool
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := c.do(ctx, "get agent", http.MethodGet, "/agents/"+id, nil, &detail)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			notFound = true
			return nil
		}
		return err
	})
	g.Go(func() error {
		var s backendStats
		if err := c.do(ctx, "get agent stats", http.MethodGet, "/agents/"+id+"/stats", nil, &s); err != nil {
			c.log.Debug().Err(err).Str("agent", id).Msg("stats fetch failed, using defaults")
			return nil
		}
		stats = &s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if notFound {
		return nil, nil
	}

	agent := agentFromBackend(detail, stats)
	return &agent, nil
}

// Create submits a draft and then re-fetches the created agent, so the
// returned record passes through the same normalization as every other
// read path.
func (c *Client) Create(ctx context.Context, draft domain.CreateAgentDraft) (*domain.Agent, error) {
	var created createAgentResponse
	req := createRequestFromDraft(draft)
	if err := c.do(ctx, "create agent", http.MethodPost, "/agents/create", req, &created); err != nil {
		return nil, err
	}

	agent, err := c.Get(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, fmt.Errorf("create agent: created agent %s not found on re-fetch", created.ID)
	}
	c.log.Info().Str("agent", agent.ID).Str("name", agent.Name).Msg("agent created")
	return agent, nil
}

// Update replaces an agent's configuration.
func (c *Client) Update(ctx context.Context, id string, draft domain.CreateAgentDraft) error {
	req := createRequestFromDraft(draft)
	return c.do(ctx, "update agent", http.MethodPatch, "/agents/"+id, req, nil)
}

// Delete removes an agent by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete agent", http.MethodDelete, "/agents/"+id, nil, nil)
}

// Execute runs an agent once with the given input and returns the
// normalized execution. The call blocks until the backend finishes;
// callers bound it with the context.
func (c *Client) Execute(ctx context.Context, id, input string) (*domain.Execution, error) {
	var resp executeResponse
	req := executeRequest{Input: input}
	if err := c.do(ctx, "execute agent", http.MethodPost, "/agents/"+id+"/execute", req, &resp); err != nil {
		return nil, err
	}

	exec := executionFromBackend(resp, input)
	return &exec, nil
}

// Executions lists an agent's most recent executions, newest first.
func (c *Client) Executions(ctx context.Context, id string, limit int) ([]domain.Execution, error) {
	path := fmt.Sprintf("/agents/%s/executions?limit=%d", id, limit)
	var rows []backendExecutionRow
	if err := c.do(ctx, "list executions", http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}

	executions := make([]domain.Execution, 0, len(rows))
	for _, row := range rows {
		exec := executionFromRow(row)
		exec.AgentID = id
		executions = append(executions, exec)
	}
	return executions, nil
}
