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
		Name:    "create transcripts",
		SQL: `
			CREATE TABLE transcripts (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				conversation  TEXT NOT NULL,
				agent         TEXT NOT NULL,
				role          TEXT NOT NULL,
				content       TEXT NOT NULL,
				created_at    TEXT NOT NULL DEFAULT (datetime('now'))
			);

			CREATE INDEX idx_transcripts_conversation ON transcripts (conversation, id);
			CREATE INDEX idx_transcripts_agent ON transcripts (agent);
		`,
	},
}
