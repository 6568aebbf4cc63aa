package app

import "sfera/domain"

// DirectoryService searches the static user directory.
type DirectoryService interface {
	// SearchUsers returns directory entries whose name or username contains
	// the query as a case-insensitive substring. An empty query returns the
	// full directory in seed order. Pure read, no mutation.
	SearchUsers(query string) []domain.User
}
