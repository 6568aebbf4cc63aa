package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sfera/app"
	"sfera/domain"
)

var (
	_ app.FeedService      = (*Store)(nil)
	_ app.DialogService    = (*Store)(nil)
	_ app.DirectoryService = (*Store)(nil)
	_ app.AccountService   = (*Store)(nil)
)

// Store owns the session's in-memory social state: the current user, the
// searchable directory, the feed and the dialogs. All mutation goes through
// the intent methods; the view layer only reads the accessors and re-renders
// after every intent.
//
// The store is owned by the UI update loop. Intents run to completion before
// the next event is processed, so there is no locking here.
type Store struct {
	log *zap.Logger

	// Swappable in tests for deterministic IDs and labels.
	newID func() string
	now   func() time.Time

	current   domain.User
	directory []domain.User
	posts     []domain.Post
	dialogs   []domain.Dialog
}

// Seed is the initial state the store is built from. Nothing outlives the
// session; every run starts from the same seed.
type Seed struct {
	Current   domain.User
	Directory []domain.User
	Posts     []domain.Post
	Dialogs   []domain.Dialog
}

// New builds a store from seed state. A nil logger disables logging.
//
// Fresh entity IDs come from a collision-resistant generator rather than a
// wall-clock timestamp, so two creations in the same instant can never
// collide.
func New(seed Seed, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
		current:   seed.Current,
		directory: seed.Directory,
		posts:     seed.Posts,
		dialogs:   seed.Dialogs,
	}
}

// CurrentUser returns the session's user.
func (s *Store) CurrentUser() domain.User {
	return s.current
}

// Posts returns the feed, newest first.
func (s *Store) Posts() []domain.Post {
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// OwnPosts returns the session user's posts, newest first.
func (s *Store) OwnPosts() []domain.Post {
	var out []domain.Post
	for _, p := range s.posts {
		if p.IsOwn() {
			out = append(out, p)
		}
	}
	return out
}

// Dialogs returns all dialogs in seed order.
func (s *Store) Dialogs() []domain.Dialog {
	out := make([]domain.Dialog, len(s.dialogs))
	copy(out, s.dialogs)
	return out
}

// Dialog returns a dialog by ID.
func (s *Store) Dialog(id string) (domain.Dialog, bool) {
	for _, d := range s.dialogs {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Dialog{}, false
}

// UnreadTotal returns the sum of unread counters across dialogs. Used for
// the navigation badge.
func (s *Store) UnreadTotal() int {
	total := 0
	for _, d := range s.dialogs {
		total += d.Unread
	}
	return total
}

func (s *Store) findPost(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findDialog(id string) int {
	for i := range s.dialogs {
		if s.dialogs[i].ID == id {
			return i
		}
	}
	return -1
}
