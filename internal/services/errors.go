package services

import "errors"

// Domain errors. Controllers map these to HTTP statuses with errors.Is;
// anything else is treated as an internal failure.
var (
	// ErrActAlreadySaved the user already saved this act
	ErrActAlreadySaved = errors.New("act already saved by user")

	// ErrActNotFound the referenced act does not exist
	ErrActNotFound = errors.New("act not found")

	// ErrActsServiceUnavailable the acts service could not be reached or errored
	ErrActsServiceUnavailable = errors.New("acts service unavailable")

	// ErrGroqUnavailable the Groq API could not be reached or errored
	ErrGroqUnavailable = errors.New("groq api unavailable")

	// ErrUserNotFound no user with the given email
	ErrUserNotFound = errors.New("user not found")
)
