package store

// migration represents a single schema migration.
type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of all schema migrations.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create executions",
		SQL: `
			CREATE TABLE executions (
				id              TEXT PRIMARY KEY,
				agent_id        TEXT NOT NULL,
				input           TEXT NOT NULL,
				output          TEXT NOT NULL DEFAULT '',
				status          TEXT NOT NULL,
				execution_time  INTEGER NOT NULL DEFAULT 0,
				logs            TEXT,
				created_at      TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE INDEX idx_executions_agent ON executions (agent_id, created_at DESC);
		`,
	},
}
