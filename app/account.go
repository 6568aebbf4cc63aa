package app

import "sfera/domain"

// ProfileUpdate carries the fields to merge into the session's user.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	Username *string
	Bio      *string
	Avatar   *string
}

// AccountService provides the session's own user.
type AccountService interface {
	// CurrentUser returns the session's user.
	CurrentUser() domain.User

	// UpdateProfile merges the given fields into the current user and
	// returns the result.
	UpdateProfile(update ProfileUpdate) domain.User
}
