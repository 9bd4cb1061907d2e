package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibox/boxctl/internal/catalog"
	"github.com/aibox/boxctl/internal/domain"
)

func TestAgentFromBackendDefaults(t *testing.T) {
	agent := agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "Blank", Role: "custom"},
	}, nil)

	assert.Equal(t, catalog.DefaultModel, agent.Model)
	assert.Equal(t, 0.7, agent.Temperature)
	assert.Equal(t, 10, agent.MaxIterations)
	assert.Empty(t, agent.Tools)
	assert.Equal(t, 0, agent.RunCount)
	assert.Equal(t, 0.0, agent.SuccessRate)
	assert.True(t, agent.IsActive)
}

func TestAgentFromBackendExplicitZeroes(t *testing.T) {
	temp := 0.0
	iters := 1
	active := false
	agent := agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "Cold", Role: "custom"},
		Config:              backendAgentConfig{Temperature: &temp, MaxIterations: &iters},
		IsActive:            &active,
	}, nil)

	// Present zero values must not be replaced by defaults.
	assert.Equal(t, 0.0, agent.Temperature)
	assert.Equal(t, 1, agent.MaxIterations)
	assert.False(t, agent.IsActive)
}

func TestAgentFromBackendDropsUnknownTools(t *testing.T) {
	agent := agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "A", Role: "legal_advisor"},
		Config:              backendAgentConfig{Tools: []string{"pdf_parser", "unknown_tool"}},
	}, nil)

	require.Len(t, agent.Tools, 1)
	assert.Equal(t, "pdf-parser", agent.Tools[0].ID)
}

func TestAgentFromBackendToolSourcePrecedence(t *testing.T) {
	// Config tools win over the top-level list.
	agent := agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{
			ID: "1", Name: "A", Role: "custom",
			Tools: []string{"web_search"},
		},
		Config: backendAgentConfig{Tools: []string{"pdf_parser"}},
	}, nil)
	require.Len(t, agent.Tools, 1)
	assert.Equal(t, "pdf-parser", agent.Tools[0].ID)

	// Absent config list falls back to the top-level one.
	agent = agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{
			ID: "1", Name: "A", Role: "custom",
			Tools: []string{"web_search"},
		},
	}, nil)
	require.Len(t, agent.Tools, 1)
	assert.Equal(t, "web-search", agent.Tools[0].ID)
}

func TestAgentFromBackendStatsPrecedence(t *testing.T) {
	count := 3
	detail := backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "A", Role: "custom"},
		ExecutionCount:      &count,
	}

	agent := agentFromBackend(detail, &backendStats{Total: 5, SuccessRate: 80})
	assert.Equal(t, 5, agent.RunCount)
	assert.Equal(t, 80.0, agent.SuccessRate)

	// Without stats the execution counter is used, but the success rate
	// stays at its default.
	agent = agentFromBackend(detail, nil)
	assert.Equal(t, 3, agent.RunCount)
	assert.Equal(t, 0.0, agent.SuccessRate)
}

func TestAgentFromBackendRoleDisplay(t *testing.T) {
	agent := agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "A", Role: "legal_advisor"},
	}, nil)
	assert.Equal(t, "Lawyer", agent.Role)

	agent = agentFromBackend(backendAgentDetail{
		backendAgentSummary: backendAgentSummary{ID: "1", Name: "A", Role: "mystery_role"},
	}, nil)
	assert.Equal(t, "mystery_role", agent.Role)
}

func TestCreateRequestFromDraft(t *testing.T) {
	pdf, _ := catalog.ToolByID("pdf-parser")
	draft := domain.CreateAgentDraft{
		Name:          "Contract checker",
		Role:          "lawyer",
		Description:   "Reviews contracts",
		SystemPrompt:  "You review contracts.",
		Model:         "mistral-7b",
		Temperature:   0.3,
		MaxIterations: 6,
		Tools:         []domain.Tool{pdf, {ID: "telepathy", Name: "Telepathy"}},
	}

	req := createRequestFromDraft(draft)

	assert.Equal(t, "legal_advisor", req.Role)
	assert.Equal(t, []string{"pdf_parser"}, req.Tools, "unmapped tools are filtered out")
	assert.Equal(t, []string{"manual"}, req.Triggers)
	assert.Empty(t, req.Integrations)
	assert.NotNil(t, req.Integrations)
	assert.Equal(t, "Contract checker", req.Name)
	assert.Equal(t, "You review contracts.", req.SystemPrompt)
	assert.Equal(t, "mistral-7b", req.Model)
	assert.Equal(t, 0.3, req.Temperature)
	assert.Equal(t, 6, req.MaxIterations)
}

func TestCreateRequestUnknownRoleFallsBack(t *testing.T) {
	req := createRequestFromDraft(domain.CreateAgentDraft{Role: "astronaut"})
	assert.Equal(t, "custom", req.Role)
}

func TestExecutionStatusFromBackend(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ExecutionStatus
	}{
		{"completed", domain.ExecutionSuccess},
		{"success", domain.ExecutionSuccess},
		{"pending", domain.ExecutionPending},
		{"running", domain.ExecutionRunning},
		{"failed", domain.ExecutionError},
		{"anything-else", domain.ExecutionError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, executionStatusFromBackend(tt.in), tt.in)
	}
}

func TestExecutionFromBackend(t *testing.T) {
	exec := executionFromBackend(executeResponse{
		ExecutionID:   "ex-1",
		AgentID:       "1",
		Output:        "done",
		Status:        "completed",
		ExecutionTime: 1200,
		Iterations:    2,
		Logs: []backendExecutionLog{
			{Message: "starting", Level: "info"},
			{Message: "weird", Level: "shouting"},
		},
	}, "check this contract")

	assert.Equal(t, "ex-1", exec.ID)
	assert.Equal(t, "check this contract", exec.Input)
	assert.Equal(t, domain.ExecutionSuccess, exec.Status)
	require.Len(t, exec.Logs, 2)
	assert.Equal(t, domain.LogInfo, exec.Logs[0].Level)
	assert.Equal(t, domain.LogInfo, exec.Logs[1].Level, "unknown levels fold to info")
	assert.True(t, exec.Done())
}
