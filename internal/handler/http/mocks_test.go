package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/service"
	"github.com/MKhiriev/go-notes-server/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	registerUserFn     func(ctx context.Context, user models.User) (models.User, error)
	loginFn            func(ctx context.Context, user models.User) (models.User, error)
	createTokenPairFn  func(ctx context.Context, user models.User) (models.TokenPair, error)
	refreshTokenFn     func(ctx context.Context, refreshToken string) (models.Token, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByIDFn      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	return m.createTokenPairFn(ctx, user)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (models.Token, error) {
	return m.refreshTokenFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseAccessTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

type mockNoteService struct {
	listNotesFn  func(ctx context.Context, principal models.User) ([]models.Note, error)
	createNoteFn func(ctx context.Context, principal models.User, note models.Note) (models.Note, error)
	deleteNoteFn func(ctx context.Context, principal models.User, noteID int64) (models.Note, error)
}

func (m *mockNoteService) ListNotes(ctx context.Context, principal models.User) ([]models.Note, error) {
	return m.listNotesFn(ctx, principal)
}

func (m *mockNoteService) CreateNote(ctx context.Context, principal models.User, note models.Note) (models.Note, error) {
	return m.createNoteFn(ctx, principal, note)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, principal models.User, noteID int64) (models.Note, error) {
	return m.deleteNoteFn(ctx, principal, noteID)
}

// newTestRouter builds a fully routed handler backed by the given mocks, so
// tests exercise the real middleware chain including authentication.
func newTestRouter(auth service.AuthService, notes service.NoteService) *chi.Mux {
	h := NewHandler(&service.Services{AuthService: auth, NoteService: notes}, logger.Nop())
	return h.Init()
}

// authAs returns a mockAuthService that accepts the bearer token "valid" and
// resolves it to the given principal.
func authAs(principal models.User) *mockAuthService {
	return &mockAuthService{
		parseAccessTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: principal.UserID, TokenType: models.TokenTypeAccess}, nil
		},
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return principal, nil
		},
	}
}

func doRequest(t *testing.T, router *chi.Mux, req *http.Request) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return rec, resp
}
