package domain

// Post is a single feed entry. Author fields are denormalized at creation
// time, the way the original demo carried them on every post.
type Post struct {
	ID             string
	AuthorID       string
	AuthorName     string
	AuthorUsername string
	AuthorAvatar   string
	Text           string
	CreatedLabel   string // Human label ("2 мин назад", "только что"), not a timestamp
	Likes          int
	Liked          bool
	Comments       []Comment
	ShowComments   bool
}

// IsOwn reports whether the post belongs to the session's user.
func (p Post) IsOwn() bool {
	return p.AuthorID == LocalUserID
}

// Comment lives inside exactly one post. Comments are append-only and keep
// insertion order.
type Comment struct {
	ID         string
	AuthorID   string
	AuthorName string
	Text       string
	Likes      int
	Liked      bool
}
