package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aibox/boxctl/internal/domain"
)

// HistoryStore records executions in the local database.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a history store using the given database.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Insert records one finished execution. A missing id gets a fresh one;
// a missing timestamp gets the current time.
func (s *HistoryStore) Insert(exec domain.Execution) error {
	if exec.ID == "" {
		exec.ID = uuid.New().String()
	}
	createdAt := exec.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.DateTime)
	}

	logs, err := json.Marshal(exec.Logs)
	if err != nil {
		return fmt.Errorf("marshalling logs: %w", err)
	}

	_, err = s.db.sql.Exec(
		`INSERT INTO executions (id, agent_id, input, output, status, execution_time, logs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		exec.ID, exec.AgentID, exec.Input, exec.Output, string(exec.Status),
		exec.ExecutionTime, string(logs), createdAt,
	)
	if err != nil {
		return fmt.Errorf("inserting execution: %w", err)
	}
	return nil
}

// ListByAgent returns an agent's recorded executions, newest first.
func (s *HistoryStore) ListByAgent(agentID string, limit int) ([]domain.Execution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.sql.Query(
		`SELECT id, agent_id, input, output, status, execution_time, logs, created_at
		 FROM executions WHERE agent_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		agentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying executions: %w", err)
	}
	defer rows.Close()

	var executions []domain.Execution
	for rows.Next() {
		exec, err := scanExecution(rows)
		if err != nil {
			return nil, err
		}
		executions = append(executions, exec)
	}
	return executions, rows.Err()
}

// DeleteByAgent removes all recorded executions for an agent, returning
// the number of rows removed. Used when the agent itself is deleted.
func (s *HistoryStore) DeleteByAgent(agentID string) (int64, error) {
	res, err := s.db.sql.Exec(`DELETE FROM executions WHERE agent_id = ?`, agentID)
	if err != nil {
		return 0, fmt.Errorf("deleting executions: %w", err)
	}
	return res.RowsAffected()
}

func scanExecution(rows *sql.Rows) (domain.Execution, error) {
	var (
		exec   domain.Execution
		status string
		logs   sql.NullString
	)
	if err := rows.Scan(&exec.ID, &exec.AgentID, &exec.Input, &exec.Output,
		&status, &exec.ExecutionTime, &logs, &exec.CreatedAt); err != nil {
		return domain.Execution{}, fmt.Errorf("scanning execution: %w", err)
	}

	exec.Status = domain.ExecutionStatus(status)
	if logs.Valid && logs.String != "" {
		if err := json.Unmarshal([]byte(logs.String), &exec.Logs); err != nil {
			return domain.Execution{}, fmt.Errorf("parsing logs: %w", err)
		}
	}
	return exec, nil
}
