package app

import "sfera/domain"

// FeedService exposes the feed collection and its intents. Every mutating
// method is total: unknown IDs and empty-after-trim text are no-ops and the
// returned bool reports whether the intent was applied.
type FeedService interface {
	// Posts returns the feed, newest first.
	Posts() []domain.Post

	// OwnPosts returns the session user's posts, newest first.
	OwnPosts() []domain.Post

	// AddPost prepends a new post by the given author. No-op on empty text.
	AddPost(author domain.User, text string) (domain.Post, bool)

	// AddComment appends a comment to the post's comment list.
	AddComment(postID string, author domain.User, text string) (domain.Comment, bool)

	// TogglePostLike flips the like flag and adjusts the count by one.
	TogglePostLike(postID string) bool

	// ToggleCommentLike flips the like flag on a comment within a post.
	ToggleCommentLike(postID, commentID string) bool

	// ToggleComments expands or collapses a post's comment section.
	ToggleComments(postID string) bool
}
