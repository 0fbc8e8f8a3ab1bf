package application

import "errors"

var (
	// ErrInvalidCredentials is deliberately undifferentiated: unknown user,
	// missing credential and wrong password all look the same to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyExists means a user with that student id is already registered.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrPictureTooLarge means the encoded profile picture exceeds the limit.
	ErrPictureTooLarge = errors.New("profile picture too large")
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference means the post owner does not resolve to a user.
	ErrInvalidReference = errors.New("referenced user does not exist")
	// ErrUserReferenced means the user still owns posts and cannot be deleted.
	ErrUserReferenced = errors.New("user is still referenced")
)
