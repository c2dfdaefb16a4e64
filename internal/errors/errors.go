package errors

import "errors"

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrIncorrectPassword is returned when the password hash comparison fails.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrPostNotFound is returned when a blog post id does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrEventNotFound is returned when an event id does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrSubscriberExists is returned when an email is already on the newsletter list.
	ErrSubscriberExists = errors.New("subscriber already exists")
)

// ErrorResponse is the JSON body used for failures reported under an "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body used for outcomes reported under a "message" key.
type MessageResponse struct {
	Message string `json:"message"`
}
