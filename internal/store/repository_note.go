package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It handles note creation, listing, and deletion against the "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note record. The author and content fields come
// from the caller; NoteID and CreatedAt are assigned by the database and
// filled into the returned [models.Note].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.Title, note.Content, note.AuthorID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: insert failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&note.NoteID, &note.CreatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetAllNotes returns every note joined with its author's username, ordered
// by creation time descending. The query is built with squirrel (see
// [buildGetAllNotesQuery]).
func (r *noteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error building notes query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetAllNotes").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.NoteID, &note.Title, &note.Content, &note.AuthorID, &note.AuthorUsername, &note.CreatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAllNotes").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// DeleteNote deletes the note with the given id and returns a snapshot of the
// deleted record, including the author's username.
//
// The delete and the snapshot read are a single CTE statement, so the
// existence check is atomic with the removal: when two callers race on the
// same id, exactly one receives the snapshot and the other gets
// [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, deleteNote, noteID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: delete failed")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&note.NoteID, &note.Title, &note.Content, &note.AuthorID, &note.AuthorUsername, &note.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}
