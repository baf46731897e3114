package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/session/app"
	"workdesk/internal/session/domain/entities"
)

var errBackendDown = errors.New("backend down")

// fakeUserRepo - репозиторий пользователей в памяти для тестов.
type fakeUserRepo struct {
	byEmail map[string]*entities.User
	nextID  string
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entities.User), nextID: "user-1"}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) (string, error) {
	stored := *user
	stored.ID = r.nextID
	r.byEmail[user.Email] = &stored

	return r.nextID, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, entities.ErrUserNotFound
}

// fakePasswords хэширует пароли обратимой заглушкой.
type fakePasswords struct{}

func (fakePasswords) Hash(_ context.Context, password string) (string, error) {
	return "hash:" + password, nil
}

func (fakePasswords) Verify(_ context.Context, password, hash string) (bool, error) {
	return hash == "hash:"+password, nil
}

// fakeTokens выпускает предсказуемые токены.
type fakeTokens struct {
	validateErr error
}

func (t *fakeTokens) Generate(_ context.Context, userID string) (string, time.Time, error) {
	return "token-for-" + userID, time.Now().Add(time.Hour), nil
}

func (t *fakeTokens) Validate(_ context.Context, token string) (string, error) {
	if t.validateErr != nil {
		return "", t.validateErr
	}
	if len(token) > 10 && token[:10] == "token-for-" {
		return token[10:], nil
	}

	return "", errors.New("bad token")
}

// fakeSessions - кэш сессий в памяти.
type fakeSessions struct {
	sessions map[string]string
	storeErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]string)}
}

func (s *fakeSessions) Store(_ context.Context, token, userID string, _ time.Duration) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.sessions[token] = userID

	return nil
}

func (s *fakeSessions) Get(_ context.Context, token string) (string, error) {
	return s.sessions[token], nil
}

func (s *fakeSessions) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)

	return nil
}

func setupUseCase() (*app.SessionUseCase, *fakeUserRepo, *fakeTokens, *fakeSessions) {
	users := newFakeUserRepo()
	tokens := &fakeTokens{}
	sessions := newFakeSessions()
	uc := app.NewSessionUseCase(users, fakePasswords{}, tokens, sessions, time.Hour)

	return uc, users, tokens, sessions
}

func TestSessionUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		user, err := uc.Register(ctx, "Dev@Example.com", "dev", "password123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "dev@example.com", user.Email, "email is normalized")
		assert.Equal(t, "hash:password123", user.PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)

		_, err = uc.Register(ctx, "dev@example.com", "other", "password456")

		require.ErrorIs(t, err, app.ErrEmailAlreadyExists)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		for _, email := range []string{"", "plain", "@nouser.com", "user@", "user@nodot"} {
			_, err := uc.Register(ctx, email, "dev", "password123")
			require.ErrorIs(t, err, entities.ErrInvalidEmail, email)
		}
	})

	t.Run("empty username is rejected", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		_, err := uc.Register(ctx, "dev@example.com", "   ", "password123")

		require.ErrorIs(t, err, entities.ErrEmptyUsername)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		_, err := uc.Register(ctx, "dev@example.com", "dev", "short")

		require.ErrorIs(t, err, entities.ErrPasswordTooShort)
	})
}

func TestSessionUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a session for valid credentials", func(t *testing.T) {
		uc, _, _, sessions := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)

		token, expiresAt, err := uc.Login(ctx, "dev@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "token-for-user-1", token)
		assert.False(t, expiresAt.IsZero())
		assert.Equal(t, "user-1", sessions.sessions[token])
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		_, _, err := uc.Login(ctx, "ghost@example.com", "password123")

		require.ErrorIs(t, err, app.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)

		_, _, err = uc.Login(ctx, "dev@example.com", "password456")

		require.ErrorIs(t, err, app.ErrInvalidCredentials)
	})

	t.Run("session store failure surfaces", func(t *testing.T) {
		uc, _, _, sessions := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)

		sessions.storeErr = errBackendDown
		_, _, err = uc.Login(ctx, "dev@example.com", "password123")

		require.ErrorIs(t, err, errBackendDown)
	})
}

func TestSessionUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid session passes", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)
		token, _, err := uc.Login(ctx, "dev@example.com", "password123")
		require.NoError(t, err)

		userID, err := uc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("empty token", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		_, err := uc.Authenticate(ctx, "")

		require.ErrorIs(t, err, app.ErrUnauthorized)
	})

	t.Run("token missing from the cache is revoked", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		_, err := uc.Authenticate(ctx, "token-for-user-1")

		require.ErrorIs(t, err, app.ErrUnauthorized)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)
		token, _, err := uc.Login(ctx, "dev@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, uc.Logout(ctx, token))

		_, err = uc.Authenticate(ctx, token)
		require.ErrorIs(t, err, app.ErrUnauthorized)
	})
}

func TestSessionUseCase_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the session owner", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()
		_, err := uc.Register(ctx, "dev@example.com", "dev", "password123")
		require.NoError(t, err)
		token, _, err := uc.Login(ctx, "dev@example.com", "password123")
		require.NoError(t, err)

		user, err := uc.CurrentUser(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "dev@example.com", user.Email)
		assert.Equal(t, "dev", user.Username)
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, _, _, _ := setupUseCase()

		user, err := uc.CurrentUser(ctx, "garbage")

		require.Nil(t, user)
		require.ErrorIs(t, err, app.ErrUnauthorized)
	})
}
