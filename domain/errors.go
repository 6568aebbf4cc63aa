package domain

import "errors"

var (
	// ErrEmptyPost indicates the user submitted a post with no text.
	ErrEmptyPost = errors.New("post cannot be empty")

	// ErrEmptyComment indicates the user submitted an empty comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrEmptyMessage indicates the user submitted an empty chat message.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrEmptyCredentials indicates the login form was submitted without
	// both an email and a password.
	ErrEmptyCredentials = errors.New("email and password are required")
)
