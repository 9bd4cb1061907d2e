package api

import (
	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/domain"
)

// Normalization between backend payloads and domain records. These are
// total functions: every field has a default, unresolvable tool ids are
// dropped, and nothing here performs I/O.

// mapToolsFromBackendIDs resolves backend tool ids against the catalog,
// dropping anything that does not resolve.
func mapToolsFromBackendIDs(ids []string) []domain.Tool {
	tools := make([]domain.Tool, 0, len(ids))
	for _, backendID := range ids {
		if tool, ok := catalog.ToolFromBackend(backendID); ok {
			tools = append(tools, tool)
		}
	}
	return tools
}

// agentFromBackend builds a normalized Agent from a detail payload and
// optional stats. Stats run counts take precedence over the payload's
// execution counter; the success rate comes from stats only.
func agentFromBackend(b backendAgentDetail, stats *backendStats) domain.Agent {
	toolIDs := b.Config.Tools
	if toolIDs == nil {
		toolIDs = b.Tools
	}

	model := b.Config.Model
	if model == "" {
		model = catalog.DefaultModel
	}

	temperature := 0.7
	if b.Config.Temperature != nil {
		temperature = *b.Config.Temperature
	}

	maxIterations := 10
	if b.Config.MaxIterations != nil {
		maxIterations = *b.Config.MaxIterations
	}

	isActive := true
	if b.IsActive != nil {
		isActive = *b.IsActive
	}

	runCount := 0
	switch {
	case stats != nil:
		runCount = stats.Total
	case b.ExecutionCount != nil:
		runCount = *b.ExecutionCount
	}

	successRate := 0.0
	if stats != nil {
		successRate = stats.SuccessRate
	}

	return domain.Agent{
		ID:            b.ID,
		Name:          b.Name,
		Role:          catalog.RoleToDisplay(b.Role),
		Description:   b.Description,
		SystemPrompt:  b.Config.SystemPrompt,
		Model:         model,
		Temperature:   temperature,
		MaxIterations: maxIterations,
		Tools:         mapToolsFromBackendIDs(toolIDs),
		IsActive:      isActive,
		RunCount:      runCount,
		SuccessRate:   successRate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// createRequestFromDraft translates a wizard draft into the backend's
// creation payload. Tools without a backend id are filtered out; the
// trigger list is always the manual singleton.
func createRequestFromDraft(draft domain.CreateAgentDraft) createAgentRequest {
	tools := make([]string, 0, len(draft.Tools))
	for _, t := range draft.Tools {
		if backendID, ok := catalog.ToolToBackend(t.ID); ok {
			tools = append(tools, backendID)
		}
	}

	return createAgentRequest{
		Name:          draft.Name,
		Role:          catalog.RoleToBackend(draft.Role),
		Description:   draft.Description,
		SystemPrompt:  draft.SystemPrompt,
		Tools:         tools,
		Triggers:      []string{"manual"},
		Integrations:  []any{},
		Model:         draft.Model,
		MaxIterations: draft.MaxIterations,
		Temperature:   draft.Temperature,
	}
}

// executionStatusFromBackend folds the backend's status strings into the
// console's execution states.
func executionStatusFromBackend(s string) domain.ExecutionStatus {
	switch s {
	case "completed", "success":
		return domain.ExecutionSuccess
	case "pending":
		return domain.ExecutionPending
	case "running":
		return domain.ExecutionRunning
	default:
		return domain.ExecutionError
	}
}

// executionLogFromBackend normalizes a backend log entry; level defaults
// to info.
func executionLogFromBackend(l backendExecutionLog) domain.ExecutionLog {
	level := domain.LogLevel(l.Level)
	switch level {
	case domain.LogInfo, domain.LogSuccess, domain.LogError, domain.LogWarning:
	default:
		level = domain.LogInfo
	}
	return domain.ExecutionLog{
		Timestamp: l.Timestamp,
		Message:   l.Message,
		Level:     level,
	}
}

// executionFromBackend builds a normalized Execution from an execute
// response. The input echoes what was sent; the backend does not return it.
func executionFromBackend(resp executeResponse, input string) domain.Execution {
	logs := make([]domain.ExecutionLog, 0, len(resp.Logs))
	for _, l := range resp.Logs {
		logs = append(logs, executionLogFromBackend(l))
	}

	return domain.Execution{
		ID:            resp.ExecutionID,
		AgentID:       resp.AgentID,
		Input:         input,
		Output:        resp.Output,
		Status:        executionStatusFromBackend(resp.Status),
		Logs:          logs,
		ExecutionTime: resp.ExecutionTime,
		Iterations:    resp.Iterations,
	}
}

// executionFromRow builds an Execution from a history listing row, which
// carries no logs.
func executionFromRow(row backendExecutionRow) domain.Execution {
	return domain.Execution{
		ID:            row.ID,
		Input:         row.InputText,
		Output:        row.OutputText,
		Status:        executionStatusFromBackend(row.Status),
		ExecutionTime: row.ExecutionTime,
		CreatedAt:     row.CreatedAt,
	}
}
