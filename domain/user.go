package domain

// LocalUserID is the ID of the session's own user. Exactly one User carries
// it, and it never appears in the searchable directory.
const LocalUserID = "0"

// User represents a profile, either the session's own or a directory entry.
type User struct {
	ID        string
	Name      string
	Username  string
	Bio       string
	Followers int
	Following int
	Avatar    string // Opaque displayable reference (e.g. data URI), may be empty
}

// IsLocal reports whether the user is the session's own profile.
func (u User) IsLocal() bool {
	return u.ID == LocalUserID
}
