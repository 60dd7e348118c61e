package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-server/internal/config"
	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/store"
	"github.com/MKhiriev/go-notes-server/internal/validators"
	"github.com/MKhiriev/go-notes-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "go-notes-server-test",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestRegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			user.CreatedAt = time.Now()
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{Username: "john", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "john", registered.Username)
	assert.False(t, registered.IsStaff)
	assert.False(t, registered.IsSuperuser)
	assert.NotEqual(t, "secret", registered.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(registered.PasswordHash), []byte("secret")))
}

func TestRegisterUser_BlankFields(t *testing.T) {
	tests := []struct {
		name  string
		user  models.User
		field string
	}{
		{name: "blank username", user: models.User{Username: "", Password: "secret"}, field: validators.FieldUsername},
		{name: "blank password", user: models.User{Username: "john", Password: ""}, field: validators.FieldPassword},
		{name: "whitespace username", user: models.User{Username: "   ", Password: "secret"}, field: validators.FieldUsername},
	}

	svc := newTestAuthService(&mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("repository must not be called for invalid registration")
			return models.User{}, nil
		},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)

			var validationErr *validators.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)
		})
	}
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "john", Password: "secret"})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{validators.ReasonUsernameTaken}, validationErr.Fields[validators.FieldUsername])
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 5, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.User{Username: "john", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 5, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.User{Username: "john", Password: "not-secret"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{Username: "ghost", Password: "whatever"})

	// unknown user and wrong password must be indistinguishable
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateTokenPair_AndParse(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	pair, err := svc.CreateTokenPair(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	token, err := svc.ParseAccessToken(context.Background(), pair.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, models.TokenTypeAccess, token.TokenType)
}

func TestParseAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	pair, err := svc.CreateTokenPair(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(context.Background(), pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseAccessToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRefreshToken_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "john"}, nil
		},
	}
	svc := newTestAuthService(repo)

	pair, err := svc.CreateTokenPair(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	access, err := svc.RefreshToken(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), access.UserID)
	assert.Equal(t, models.TokenTypeAccess, access.TokenType)
	assert.NotEmpty(t, access.SignedString)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	pair, err := svc.CreateTokenPair(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.Access)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRefreshToken_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	pair, err := svc.CreateTokenPair(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.GetUserByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGetUserByID_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.GetUserByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
