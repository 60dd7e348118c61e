package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, is_staff, is_superuser)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, password_hash, is_staff, is_superuser, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, is_staff, is_superuser, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, is_staff, is_superuser, created_at
    FROM users
    WHERE user_id = $1;`

	createNote = `INSERT INTO notes (title, content, author_id)
    VALUES ($1, $2, $3)
    RETURNING note_id, created_at;`

	// deleteNote removes the note and produces its snapshot (joined with the
	// author's username) in a single statement. The existence check and the
	// delete cannot race: a concurrent second deleter gets zero rows back.
	deleteNote = `WITH deleted AS (
        DELETE FROM notes
        WHERE note_id = $1
        RETURNING note_id, title, content, author_id, created_at
    )
    SELECT d.note_id, d.title, d.content, d.author_id, u.username, d.created_at
    FROM deleted d
    JOIN users u ON u.user_id = d.author_id;`
)

// buildGetAllNotesQuery builds the notes listing query: all notes joined with
// their author's username, newest first.
func buildGetAllNotesQuery() (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(
			"n.note_id",
			"n.title",
			"n.content",
			"n.author_id",
			"u.username",
			"n.created_at",
		).
		From("notes n").
		Join("users u ON u.user_id = n.author_id").
		OrderBy("n.created_at DESC").
		ToSql()
}
