package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibox/boxctl/internal/config"
	"github.com/aibox/boxctl/internal/domain"
	"github.com/aibox/boxctl/internal/logging"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.New(nil, "silent", "json")
	return New(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, log)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "1", "name": "Contract bot", "role": "legal_advisor", "tools": []string{"pdf_parser"}},
			{"id": "2", "name": "Posts bot", "role": "marketer"},
		})
	})

	agents, err := testClient(t, mux).List(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)

	assert.Equal(t, "Lawyer", agents[0].Role)
	require.Len(t, agents[0].Tools, 1)
	assert.Equal(t, "pdf-parser", agents[0].Tools[0].ID)
	assert.Equal(t, 0, agents[0].RunCount)
	assert.True(t, agents[0].IsActive)
}

func TestListBackendError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.List(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestGetCombinesDetailAndStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": "1", "name": "Contract bot", "role": "legal_advisor",
			"config": map[string]any{
				"tools":       []string{"pdf_parser", "document_generator"},
				"temperature": 0.3,
			},
		})
	})
	mux.HandleFunc("GET /agents/1/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"total": 5, "success_rate": 80})
	})

	agent, err := testClient(t, mux).Get(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, agent)

	assert.Equal(t, "Lawyer", agent.Role)
	assert.Len(t, agent.Tools, 2)
	assert.Equal(t, 0.3, agent.Temperature)
	assert.Equal(t, 5, agent.RunCount)
	assert.Equal(t, 80.0, agent.SuccessRate)
}

func TestGetNotFoundIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Agent not found"}`, http.StatusNotFound)
	})
	mux.HandleFunc("GET /agents/missing/stats", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no stats either", http.StatusNotFound)
	})

	agent, err := testClient(t, mux).Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, agent)
}

func TestGetToleratesStatsFailure(t *testing.T) {
	count := 3
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": "1", "name": "A", "role": "custom", "execution_count": count,
		})
	})
	mux.HandleFunc("GET /agents/1/stats", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stats exploded", http.StatusInternalServerError)
	})

	agent, err := testClient(t, mux).Get(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, 3, agent.RunCount, "falls back to the payload's execution counter")
	assert.Equal(t, 0.0, agent.SuccessRate)
}

func TestGetDetailErrorPropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents/1", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})
	mux.HandleFunc("GET /agents/1/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"total": 1})
	})

	_, err := testClient(t, mux).Get(context.Background(), "1")
	require.Error(t, err)
}

func TestCreateReFetchesCreatedAgent(t *testing.T) {
	var gotCreate createAgentRequest

	mux := http.NewServeMux()
	mux.HandleFunc("POST /agents/create", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreate))
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": "42", "name": gotCreate.Name})
	})
	mux.HandleFunc("GET /agents/42", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": "42", "name": "Contract bot", "role": "legal_advisor",
			"config": map[string]any{"tools": []string{"pdf_parser"}, "system_prompt": "You review contracts."},
		})
	})
	mux.HandleFunc("GET /agents/42/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"total": 0, "success_rate": 0})
	})

	pdf := domain.Tool{ID: "pdf-parser", Name: "PDF parser"}
	agent, err := testClient(t, mux).Create(context.Background(), domain.CreateAgentDraft{
		Name:          "Contract bot",
		Role:          "lawyer",
		SystemPrompt:  "You review contracts.",
		Model:         "llama3.1-8b",
		Temperature:   0.7,
		MaxIterations: 10,
		Tools:         []domain.Tool{pdf},
	})
	require.NoError(t, err)
	require.NotNil(t, agent)

	// Wire payload used the backend vocabulary.
	assert.Equal(t, "legal_advisor", gotCreate.Role)
	assert.Equal(t, []string{"pdf_parser"}, gotCreate.Tools)
	assert.Equal(t, []string{"manual"}, gotCreate.Triggers)

	// Returned record is fully normalized via the read path.
	assert.Equal(t, "42", agent.ID)
	assert.Equal(t, "Lawyer", agent.Role)
	require.Len(t, agent.Tools, 1)
	assert.Equal(t, "PDF parser", agent.Tools[0].Name)
}

func TestCreateBackendError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid", http.StatusUnprocessableEntity)
	}))

	_, err := c.Create(context.Background(), domain.CreateAgentDraft{Name: "x", Role: "custom"})
	require.Error(t, err)
}

func TestUpdate(t *testing.T) {
	var got createAgentRequest
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /agents/7", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "7"})
	})

	img := domain.Tool{ID: "image-gen", Name: "Image generator"}
	err := testClient(t, mux).Update(context.Background(), "7", domain.CreateAgentDraft{
		Name:          "Banner bot",
		Role:          "designer",
		SystemPrompt:  "You make banners.",
		Model:         "mixtral-8x7b",
		Temperature:   0.5,
		MaxIterations: 8,
		Tools:         []domain.Tool{img},
	})
	require.NoError(t, err)

	assert.Equal(t, "Banner bot", got.Name)
	assert.Equal(t, "artist", got.Role)
	assert.Equal(t, []string{"image_generator"}, got.Tools)
	assert.Equal(t, 0.5, got.Temperature)
	assert.Equal(t, 8, got.MaxIterations)
}

func TestUpdateError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	require.Error(t, c.Update(context.Background(), "7", domain.CreateAgentDraft{Name: "x", Role: "custom"}))
}

func TestDelete(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /agents/7", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, testClient(t, mux).Delete(context.Background(), "7"))
	assert.True(t, deleted)
}

func TestDeleteError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	require.Error(t, c.Delete(context.Background(), "7"))
}

func TestExecute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /agents/1/execute", func(w http.ResponseWriter, r *http.Request) {
		var req executeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "summarize this", req.Input)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"execution_id":   "ex-9",
			"agent_id":       "1",
			"output":         "a summary",
			"status":         "completed",
			"execution_time": 950,
			"iterations":     1,
			"logs": []map[string]any{
				{"message": "calling model", "level": "info"},
				{"message": "done", "level": "success"},
			},
		})
	})

	exec, err := testClient(t, mux).Execute(context.Background(), "1", "summarize this")
	require.NoError(t, err)
	require.NotNil(t, exec)

	assert.Equal(t, domain.ExecutionSuccess, exec.Status)
	assert.Equal(t, "a summary", exec.Output)
	assert.Equal(t, 950, exec.ExecutionTime)
	assert.Len(t, exec.Logs, 2)
}

func TestExecutions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /agents/1/executions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "ex-2", "input_text": "b", "output_text": "out b", "status": "failed", "execution_time": 10, "created_at": "2026-08-27T10:00:00"},
			{"id": "ex-1", "input_text": "a", "output_text": "out a", "status": "completed", "execution_time": 20, "created_at": "2026-08-27T09:00:00"},
		})
	})

	execs, err := testClient(t, mux).Executions(context.Background(), "1", 5)
	require.NoError(t, err)
	require.Len(t, execs, 2)

	assert.Equal(t, domain.ExecutionError, execs[0].Status)
	assert.Equal(t, "1", execs[0].AgentID)
	assert.Equal(t, domain.ExecutionSuccess, execs[1].Status)
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []map[string]any{})
	}))
	t.Cleanup(srv.Close)

	log := logging.New(nil, "silent", "json")
	c := New(config.BackendConfig{BaseURL: srv.URL, Token: "tok-1", TimeoutSeconds: 5}, log)

	_, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestContextCancellation(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
