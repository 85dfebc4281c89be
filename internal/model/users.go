package model

type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Username string `json:"username"`
}

// UiState is replaced as a whole by every auth operation.
type UiState struct {
	IsLoading    bool   `json:"is_loading"`
	ErrorMessage string `json:"error_message,omitempty"`
	IsLoggedIn   bool   `json:"is_logged_in"`
}

type AuthSnapshot struct {
	UiState     UiState `json:"ui_state"`
	CurrentUser *User   `json:"current_user"`
}

type EmailDTO struct {
	Email string `json:"email"`
}

type PasswordDTO struct {
	Password string `json:"password"`
}
