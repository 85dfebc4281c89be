package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/ibeloyar/cupcake/internal/model"
	"github.com/ibeloyar/cupcake/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStorage struct{}

func (failingStorage) GetUserByEmail(string) *model.User { return nil }
func (failingStorage) CreateUser(model.User) error       { return errors.New("storage is down") }

func newTestAuth(t *testing.T) (*Auth, *memory.Repository) {
	t.Helper()

	repo := memory.New()
	return NewAuth(repo, zap.NewNop().Sugar()), repo
}

func enterCredentials(a *Auth, email, password string) {
	a.OnEmailChange(email)
	a.OnPasswordChange(password)
}

func TestAuth_New_Anonymous(t *testing.T) {
	a, _ := newTestAuth(t)

	assert.Equal(t, model.UiState{}, a.State())
	assert.Nil(t, a.CurrentUser())
}

func TestAuth_OnEmailChange_CreatesDraft(t *testing.T) {
	a, _ := newTestAuth(t)

	a.OnEmailChange("alice@example.com")

	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, model.User{Email: "alice@example.com"}, *a.CurrentUser())
}

func TestAuth_OnPasswordChange_CreatesDraft(t *testing.T) {
	a, _ := newTestAuth(t)

	a.OnPasswordChange("secret1")

	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, model.User{Password: "secret1"}, *a.CurrentUser())
}

func TestAuth_OnChange_KeepsOtherField(t *testing.T) {
	a, _ := newTestAuth(t)

	a.OnEmailChange("alice@example.com")
	a.OnPasswordChange("secret1")
	a.OnEmailChange("alice@example.org")

	assert.Equal(t, model.User{Email: "alice@example.org", Password: "secret1"}, *a.CurrentUser())
}

func TestAuth_OnChange_KeepsErrorMessage(t *testing.T) {
	a, _ := newTestAuth(t)

	require.ErrorIs(t, a.LoginUser(), model.ErrMissingCredentials)
	a.OnEmailChange("alice@example.com")

	assert.Equal(t, model.ErrMissingCredentialsMessage, a.State().ErrorMessage)
}

func TestAuth_RegisterNewUser_Success(t *testing.T) {
	a, repo := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")

	err := a.RegisterNewUser()
	require.NoError(t, err)

	assert.Equal(t, model.UiState{IsLoggedIn: true}, a.State())
	want := model.User{Email: "alice@example.com", Password: "secret1", Username: "alice"}
	assert.Equal(t, want, *a.CurrentUser())
	assert.Equal(t, want, *repo.GetUserByEmail("alice@example.com"))
}

func TestAuth_RegisterNewUser_MissingCredentials(t *testing.T) {
	a, _ := newTestAuth(t)

	err := a.RegisterNewUser()

	assert.ErrorIs(t, err, model.ErrMissingCredentials)
	assert.Equal(t, model.UiState{ErrorMessage: model.ErrMissingCredentialsMessage}, a.State())
	assert.Nil(t, a.CurrentUser())
}

func TestAuth_RegisterNewUser_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "short password", email: "a@b.c", password: "short"},
		{name: "bad email", email: "not-an-email", password: "longpass"},
		{name: "empty email", email: "", password: "longpass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, repo := newTestAuth(t)
			enterCredentials(a, tt.email, tt.password)

			err := a.RegisterNewUser()

			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
			assert.Equal(t, model.ErrInvalidCredentialsMessage, a.State().ErrorMessage)
			assert.False(t, a.State().IsLoggedIn)
			assert.Equal(t, model.User{Email: tt.email, Password: tt.password}, *a.CurrentUser())
			assert.Nil(t, repo.GetUserByEmail(tt.email))
		})
	}
}

func TestAuth_RegisterNewUser_Twice(t *testing.T) {
	a, repo := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())
	assert.True(t, a.State().IsLoggedIn)

	a.OnPasswordChange("another1")
	err := a.RegisterNewUser()

	assert.ErrorIs(t, err, model.ErrUserExists)
	assert.Equal(t, model.UiState{ErrorMessage: model.ErrUserExistsMessage}, a.State())
	assert.Equal(t, "secret1", repo.GetUserByEmail("alice@example.com").Password)
	assert.Equal(t, "another1", a.CurrentUser().Password)
}

func TestAuth_RegisterNewUser_StorageError(t *testing.T) {
	a := NewAuth(failingStorage{}, zap.NewNop().Sugar())
	enterCredentials(a, "alice@example.com", "secret1")

	err := a.RegisterNewUser()

	assert.EqualError(t, err, "storage is down")
	assert.Equal(t, "storage is down", a.State().ErrorMessage)
	assert.Empty(t, a.CurrentUser().Username)
}

func TestAuth_LoginUser_Success(t *testing.T) {
	a, _ := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())
	a.LogoutUser()

	enterCredentials(a, "alice@example.com", "secret1")
	err := a.LoginUser()
	require.NoError(t, err)

	assert.Equal(t, model.UiState{IsLoggedIn: true}, a.State())
	require.NotNil(t, a.CurrentUser())
	assert.Equal(t, "alice", a.CurrentUser().Username)
}

func TestAuth_LoginUser_MissingCredentials(t *testing.T) {
	a, _ := newTestAuth(t)

	err := a.LoginUser()

	assert.ErrorIs(t, err, model.ErrMissingCredentials)
	assert.Equal(t, model.ErrMissingCredentialsMessage, a.State().ErrorMessage)
}

func TestAuth_LoginUser_UnknownEmail(t *testing.T) {
	a, _ := newTestAuth(t)
	enterCredentials(a, "ghost@example.com", "secret1")

	err := a.LoginUser()

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Equal(t, model.UiState{ErrorMessage: model.ErrInvalidCredentialsMessage}, a.State())
	assert.Equal(t, model.User{Email: "ghost@example.com", Password: "secret1"}, *a.CurrentUser())
}

func TestAuth_LoginUser_WrongPassword(t *testing.T) {
	a, _ := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())
	a.LogoutUser()

	enterCredentials(a, "alice@example.com", "wrong12")
	err := a.LoginUser()

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.False(t, a.State().IsLoggedIn)
	assert.Empty(t, a.CurrentUser().Username)
}

func TestAuth_LoginUser_SkipsFormatValidation(t *testing.T) {
	a, repo := newTestAuth(t)
	require.NoError(t, repo.CreateUser(model.User{Email: "x", Password: "1", Username: "x"}))

	enterCredentials(a, "x", "1")
	err := a.LoginUser()

	assert.NoError(t, err)
	assert.True(t, a.State().IsLoggedIn)
}

func TestAuth_LogoutUser(t *testing.T) {
	a, repo := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())

	a.LogoutUser()

	assert.Equal(t, model.UiState{}, a.State())
	assert.Nil(t, a.CurrentUser())
	assert.NotNil(t, repo.GetUserByEmail("alice@example.com"))
}

func TestAuth_Snapshot(t *testing.T) {
	a, _ := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())

	snap := a.Snapshot()

	assert.True(t, snap.UiState.IsLoggedIn)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "alice", snap.CurrentUser.Username)
}

func TestAuth_CurrentUser_ReturnsCopy(t *testing.T) {
	a, _ := newTestAuth(t)
	a.OnEmailChange("alice@example.com")

	u := a.CurrentUser()
	u.Email = "mallory@example.com"

	assert.Equal(t, "alice@example.com", a.CurrentUser().Email)
}

func TestAuth_Subscribe(t *testing.T) {
	a, _ := newTestAuth(t)

	var states []model.UiState
	var users []*model.User
	a.SubscribeState(func(s model.UiState) { states = append(states, s) })
	a.SubscribeUser(func(u *model.User) { users = append(users, u) })

	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())
	a.LogoutUser()

	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoggedIn)
	assert.False(t, states[1].IsLoggedIn)

	require.Len(t, users, 4)
	assert.Equal(t, "alice", users[2].Username)
	assert.Nil(t, users[3])
}

func TestAuth_Snapshot_ConsistentDuringOperations(t *testing.T) {
	a, _ := newTestAuth(t)
	enterCredentials(a, "alice@example.com", "secret1")
	require.NoError(t, a.RegisterNewUser())

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			a.LogoutUser()
			enterCredentials(a, "alice@example.com", "secret1")
			_ = a.LoginUser()
		}
	}()

	for i := 0; i < 2000; i++ {
		snap := a.Snapshot()
		if snap.UiState.IsLoggedIn {
			require.NotNil(t, snap.CurrentUser)
			require.Equal(t, "alice", snap.CurrentUser.Username)
		}
	}

	close(stop)
	wg.Wait()
}
