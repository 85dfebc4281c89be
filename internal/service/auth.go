package service

import (
	"sync"

	"github.com/ibeloyar/cupcake/internal/model"
	"github.com/ibeloyar/cupcake/pgk/observable"
	"go.uber.org/zap"
)

// Auth is the session of the toy authentication flow. It holds the credential
// draft (or the authenticated user) and the UI flags.
type Auth struct {
	mu      sync.Mutex
	storage StorageRepo
	lg      *zap.SugaredLogger

	uiState     *observable.Value[model.UiState]
	currentUser *observable.Value[*model.User]
}

func NewAuth(s StorageRepo, lg *zap.SugaredLogger) *Auth {
	return &Auth{
		storage:     s,
		lg:          lg,
		uiState:     observable.NewValue(model.UiState{}),
		currentUser: observable.NewValue[*model.User](nil),
	}
}

func (a *Auth) State() model.UiState {
	return a.uiState.Load()
}

// CurrentUser returns a copy of the draft or authenticated user, nil if absent.
func (a *Auth) CurrentUser() *model.User {
	user := a.currentUser.Load()
	if user == nil {
		return nil
	}

	u := *user
	return &u
}

// Snapshot returns the UI state and the current user as one consistent pair.
// It waits for a running operation to finish, so it must not be called from a
// subscriber callback.
func (a *Auth) Snapshot() model.AuthSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return model.AuthSnapshot{
		UiState:     a.State(),
		CurrentUser: a.CurrentUser(),
	}
}

func (a *Auth) SubscribeState(fn func(model.UiState)) (cancel func()) {
	return a.uiState.Subscribe(fn)
}

func (a *Auth) SubscribeUser(fn func(*model.User)) (cancel func()) {
	return a.currentUser.Subscribe(fn)
}

func (a *Auth) OnEmailChange(newEmail string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.currentUser.Update(func(u *model.User) *model.User {
		if u == nil {
			return &model.User{Email: newEmail}
		}
		next := *u
		next.Email = newEmail
		return &next
	})
}

func (a *Auth) OnPasswordChange(newPassword string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.currentUser.Update(func(u *model.User) *model.User {
		if u == nil {
			return &model.User{Password: newPassword}
		}
		next := *u
		next.Password = newPassword
		return &next
	})
}

func (a *Auth) RegisterNewUser() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	draft := a.currentUser.Load()
	if draft == nil {
		return a.fail(model.ErrMissingCredentials)
	}

	if !validateCredentials(draft.Email, draft.Password) {
		return a.fail(model.ErrInvalidCredentials)
	}

	user := *draft
	user.Username = usernameFromEmail(draft.Email)

	if err := a.storage.CreateUser(user); err != nil {
		return a.fail(err)
	}

	a.currentUser.Store(&user)
	a.uiState.Store(model.UiState{IsLoggedIn: true})
	a.lg.Infof("user %s registered", user.Username)

	return nil
}

// LoginUser checks the draft against the directory only. Credential format is
// not validated here.
func (a *Auth) LoginUser() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	draft := a.currentUser.Load()
	if draft == nil {
		return a.fail(model.ErrMissingCredentials)
	}

	stored := a.storage.GetUserByEmail(draft.Email)
	if stored == nil || stored.Password != draft.Password {
		return a.fail(model.ErrInvalidCredentials)
	}

	a.currentUser.Store(stored)
	a.uiState.Store(model.UiState{IsLoggedIn: true})
	a.lg.Infof("user %s logged in", stored.Username)

	return nil
}

func (a *Auth) LogoutUser() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.currentUser.Store(nil)
	a.uiState.Store(model.UiState{})
	a.lg.Info("user logged out")
}

// fail publishes err as the error message. The current user is left as is.
func (a *Auth) fail(err error) error {
	a.uiState.Store(model.UiState{
		IsLoading:    false,
		ErrorMessage: err.Error(),
		IsLoggedIn:   false,
	})
	a.lg.Debugf("auth operation rejected: %v", err)

	return err
}
