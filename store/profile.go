package store

import (
	"go.uber.org/zap"

	"sfera/app"
	"sfera/domain"
)

// UpdateProfile merges the given fields into the current user. Nil fields
// keep their previous values, so callers can update a single field (e.g. the
// avatar source finishing its read) without clobbering the rest.
func (s *Store) UpdateProfile(update app.ProfileUpdate) domain.User {
	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Username != nil {
		s.current.Username = *update.Username
	}
	if update.Bio != nil {
		s.current.Bio = *update.Bio
	}
	if update.Avatar != nil {
		s.current.Avatar = *update.Avatar
	}
	s.log.Debug("profile updated", zap.String("user_id", s.current.ID))
	return s.current
}
