package model

import "errors"

const (
	ErrInvalidRequestBodyMessage = "invalid request body"
	ErrMissingCredentialsMessage = "Please enter email and password"
	ErrInvalidCredentialsMessage = "Invalid email or password"
	ErrUserExistsMessage         = "User already exists"
)

var (
	ErrMissingCredentials = errors.New(ErrMissingCredentialsMessage)
	ErrInvalidCredentials = errors.New(ErrInvalidCredentialsMessage)
	ErrUserExists         = errors.New(ErrUserExistsMessage)
)
