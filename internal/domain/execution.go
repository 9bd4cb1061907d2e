package domain

// ExecutionStatus is the lifecycle state of a manual agent invocation.
type ExecutionStatus string

const (
	ExecutionPending ExecutionStatus = "pending"
	ExecutionRunning ExecutionStatus = "running"
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionError   ExecutionStatus = "error"
)

// LogLevel classifies a single execution log line.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogError   LogLevel = "error"
	LogWarning LogLevel = "warning"
)

// ExecutionLog is one append-only log entry within an execution.
type ExecutionLog struct {
	Timestamp string   `json:"timestamp"`
	Message   string   `json:"message"`
	Level     LogLevel `json:"level"`
}

// Execution is the outcome of one manual invocation of an agent.
type Execution struct {
	ID            string          `json:"id"`
	AgentID       string          `json:"agent_id"`
	Input         string          `json:"input"`
	Output        string          `json:"output"`
	Status        ExecutionStatus `json:"status"`
	Logs          []ExecutionLog  `json:"logs"`
	ExecutionTime int             `json:"execution_time"` // milliseconds
	Iterations    int             `json:"iterations,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// Done reports whether the execution reached a terminal state.
func (e Execution) Done() bool {
	return e.Status == ExecutionSuccess || e.Status == ExecutionError
}
