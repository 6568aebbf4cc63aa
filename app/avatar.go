package app

import "context"

// AvatarSource turns a user-picked file into a displayable reference.
// Implemented by infrastructure (infra/avatar reading the file into a data
// URI). The store treats the reference as an opaque string.
type AvatarSource interface {
	Load(ctx context.Context, path string) (string, error)
}
