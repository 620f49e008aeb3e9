package store

import (
	"database/sql"
	"fmt"
)

// TranscriptMessage is one cached chat turn.
type TranscriptMessage struct {
	ID           int64
	Conversation string
	Agent        string
	Role         string
	Content      string
	CreatedAt    string
}

// Append records a chat turn in a conversation's local transcript.
func (db *DB) Append(conversation, agent, role, content string) error {
	_, err := db.sql.Exec(
		"INSERT INTO transcripts (conversation, agent, role, content) VALUES (?, ?, ?, ?)",
		conversation, agent, role, content,
	)
	if err != nil {
		return fmt.Errorf("appending transcript message: %w", err)
	}
	return nil
}

// History returns the most recent limit messages of a conversation in
// chronological order. limit <= 0 returns everything.
func (db *DB) History(conversation string, limit int) ([]TranscriptMessage, error) {
	query := "SELECT id, conversation, agent, role, content, created_at FROM transcripts WHERE conversation = ? ORDER BY id DESC"
	args := []any{conversation}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.sql.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	var messages []TranscriptMessage
	for rows.Next() {
		var m TranscriptMessage
		if err := rows.Scan(&m.ID, &m.Conversation, &m.Agent, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transcript row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Conversations lists the cached conversation names, most recently active
// first.
func (db *DB) Conversations() ([]string, error) {
	rows, err := db.sql.Query(
		"SELECT conversation FROM transcripts GROUP BY conversation ORDER BY MAX(id) DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteConversation drops a conversation's cached transcript. Returns the
// number of messages removed.
func (db *DB) DeleteConversation(conversation string) (int64, error) {
	res, err := db.sql.Exec("DELETE FROM transcripts WHERE conversation = ?", conversation)
	if err != nil {
		return 0, fmt.Errorf("deleting transcript: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return n, nil
}
