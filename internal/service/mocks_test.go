package service

import (
	"context"

	"github.com/MKhiriev/go-notes-server/models"
)

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

type mockNoteRepository struct {
	createNoteFn  func(ctx context.Context, note models.Note) (models.Note, error)
	getAllNotesFn func(ctx context.Context) ([]models.Note, error)
	deleteNoteFn  func(ctx context.Context, noteID int64) (models.Note, error)
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createNoteFn(ctx, note)
}

func (m *mockNoteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return m.getAllNotesFn(ctx)
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, noteID int64) (models.Note, error) {
	return m.deleteNoteFn(ctx, noteID)
}
