package store

import (
	"strings"

	"sfera/domain"
)

// SearchUsers filters the static directory by a case-insensitive substring
// match on name or username. An empty query returns everyone in seed order.
// Pure read: the directory is never mutated.
func (s *Store) SearchUsers(query string) []domain.User {
	q := strings.ToLower(query)
	out := make([]domain.User, 0, len(s.directory))
	for _, u := range s.directory {
		if q == "" ||
			strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Username), q) {
			out = append(out, u)
		}
	}
	return out
}
