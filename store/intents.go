package store

import (
	"strings"

	"go.uber.org/zap"

	"sfera/domain"
)

// Every intent is atomic and total: unknown IDs and empty-after-trim text
// are no-ops that leave the state untouched, never errors. The returned bool
// reports whether the intent was applied.

// TogglePostLike flips the like flag on a post, adjusting the count by
// exactly one in the same direction.
func (s *Store) TogglePostLike(postID string) bool {
	i := s.findPost(postID)
	if i < 0 {
		return false
	}
	p := &s.posts[i]
	p.Liked = !p.Liked
	if p.Liked {
		p.Likes++
	} else {
		p.Likes--
	}
	s.log.Debug("post like toggled",
		zap.String("post_id", postID),
		zap.Bool("liked", p.Liked),
		zap.Int("likes", p.Likes))
	return true
}

// ToggleCommentLike flips the like flag on a comment within a post.
func (s *Store) ToggleCommentLike(postID, commentID string) bool {
	i := s.findPost(postID)
	if i < 0 {
		return false
	}
	for j := range s.posts[i].Comments {
		c := &s.posts[i].Comments[j]
		if c.ID != commentID {
			continue
		}
		c.Liked = !c.Liked
		if c.Liked {
			c.Likes++
		} else {
			c.Likes--
		}
		s.log.Debug("comment like toggled",
			zap.String("post_id", postID),
			zap.String("comment_id", commentID),
			zap.Bool("liked", c.Liked))
		return true
	}
	return false
}

// ToggleComments expands or collapses a post's comment section.
func (s *Store) ToggleComments(postID string) bool {
	i := s.findPost(postID)
	if i < 0 {
		return false
	}
	s.posts[i].ShowComments = !s.posts[i].ShowComments
	return true
}

// AddPost prepends a new post by the given author. The text is kept as
// submitted; only its trimmed form is checked for emptiness.
func (s *Store) AddPost(author domain.User, text string) (domain.Post, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Post{}, false
	}
	post := domain.Post{
		ID:             s.newID(),
		AuthorID:       author.ID,
		AuthorName:     author.Name,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
		Text:           text,
		CreatedLabel:   "только что",
	}
	s.posts = append([]domain.Post{post}, s.posts...)
	s.log.Debug("post added", zap.String("post_id", post.ID))
	return post, true
}

// AddComment appends a comment to the end of a post's comment list.
func (s *Store) AddComment(postID string, author domain.User, text string) (domain.Comment, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, false
	}
	i := s.findPost(postID)
	if i < 0 {
		return domain.Comment{}, false
	}
	comment := domain.Comment{
		ID:         s.newID(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Text:       text,
	}
	s.posts[i].Comments = append(s.posts[i].Comments, comment)
	s.log.Debug("comment added",
		zap.String("post_id", postID),
		zap.String("comment_id", comment.ID))
	return comment, true
}

// SendMessage appends an outgoing message to a dialog, mirrors it into the
// dialog preview, and marks the dialog read.
func (s *Store) SendMessage(dialogID, text string) (domain.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, false
	}
	i := s.findDialog(dialogID)
	if i < 0 {
		return domain.ChatMessage{}, false
	}
	msg := domain.ChatMessage{
		ID:        s.newID(),
		FromMe:    true,
		Text:      text,
		TimeLabel: s.now().Format("15:04"),
	}
	d := &s.dialogs[i]
	d.Messages = append(d.Messages, msg)
	d.Preview = msg.Text
	d.LastTime = msg.TimeLabel
	d.Unread = 0
	s.log.Debug("message sent",
		zap.String("dialog_id", dialogID),
		zap.String("message_id", msg.ID))
	return msg, true
}

// OpenDialog resets a dialog's unread counter. Opening is the only thing
// that clears unread; nothing in the demo increments it.
func (s *Store) OpenDialog(dialogID string) bool {
	i := s.findDialog(dialogID)
	if i < 0 {
		return false
	}
	s.dialogs[i].Unread = 0
	return true
}
