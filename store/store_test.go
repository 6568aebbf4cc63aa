package store

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"sfera/app"
	"sfera/domain"
)

func newTestStore() *Store {
	s := New(DemoSeed(), nil)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	s.now = func() time.Time {
		return time.Date(2024, 5, 17, 15, 4, 0, 0, time.UTC)
	}
	return s
}

// snapshot deep-copies everything mutable so tests can assert that a no-op
// intent left no partial side effects behind.
type snapshot struct {
	current domain.User
	posts   []domain.Post
	dialogs []domain.Dialog
}

func (s *Store) capture() snapshot {
	posts := make([]domain.Post, len(s.posts))
	for i, p := range s.posts {
		comments := make([]domain.Comment, len(p.Comments))
		copy(comments, p.Comments)
		p.Comments = comments
		posts[i] = p
	}
	dialogs := make([]domain.Dialog, len(s.dialogs))
	for i, d := range s.dialogs {
		msgs := make([]domain.ChatMessage, len(d.Messages))
		copy(msgs, d.Messages)
		d.Messages = msgs
		dialogs[i] = d
	}
	return snapshot{current: s.current, posts: posts, dialogs: dialogs}
}

func assertUnchanged(t *testing.T, s *Store, before snapshot) {
	t.Helper()
	after := s.capture()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on a no-op intent:\nbefore: %+v\nafter:  %+v", before, after)
	}
}

func TestTogglePostLike_IncrementsAndSetsFlag(t *testing.T) {
	s := newTestStore()
	before := s.Posts()[0]
	if before.Liked {
		t.Fatalf("seed post p1 must start unliked")
	}

	if !s.TogglePostLike("p1") {
		t.Fatalf("toggle on existing post must apply")
	}

	after := s.Posts()[0]
	if !after.Liked {
		t.Fatalf("expected Liked=true after toggle")
	}
	if after.Likes != before.Likes+1 {
		t.Fatalf("expected likes %d, got %d", before.Likes+1, after.Likes)
	}
}

func TestTogglePostLike_RoundTripRestoresState(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	s.TogglePostLike("p2")
	s.TogglePostLike("p2")

	assertUnchanged(t, s, before)
}

func TestTogglePostLike_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	if s.TogglePostLike("missing") {
		t.Fatalf("toggle on unknown post must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestToggleCommentLike_FlipsWithinNamedPost(t *testing.T) {
	s := newTestStore()

	if !s.ToggleCommentLike("p1", "c2") {
		t.Fatalf("toggle on existing comment must apply")
	}

	c := s.Posts()[0].Comments[1]
	if !c.Liked || c.Likes != 4 {
		t.Fatalf("expected liked=true likes=4, got liked=%v likes=%d", c.Liked, c.Likes)
	}

	// Siblings untouched.
	sibling := s.Posts()[0].Comments[0]
	if sibling.Liked || sibling.Likes != 5 {
		t.Fatalf("sibling comment changed: %+v", sibling)
	}
}

func TestToggleCommentLike_RoundTripRestoresState(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	s.ToggleCommentLike("p1", "c1")
	s.ToggleCommentLike("p1", "c1")

	assertUnchanged(t, s, before)
}

func TestToggleCommentLike_UnknownIDsAreNoOps(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	if s.ToggleCommentLike("missing", "c1") {
		t.Fatalf("unknown post must not apply")
	}
	if s.ToggleCommentLike("p1", "missing") {
		t.Fatalf("unknown comment must not apply")
	}
	if s.ToggleCommentLike("p3", "c1") {
		t.Fatalf("comment from another post must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestToggleComments_FlipsAndFlipsBack(t *testing.T) {
	s := newTestStore()

	if !s.ToggleComments("p1") {
		t.Fatalf("toggle on existing post must apply")
	}
	if !s.Posts()[0].ShowComments {
		t.Fatalf("expected comments expanded")
	}

	s.ToggleComments("p1")
	if s.Posts()[0].ShowComments {
		t.Fatalf("expected comments collapsed again")
	}

	before := s.capture()
	if s.ToggleComments("missing") {
		t.Fatalf("unknown post must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestAddPost_EmptyTextIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	for _, text := range []string{"", "   ", "\n\t "} {
		if _, ok := s.AddPost(s.CurrentUser(), text); ok {
			t.Fatalf("AddPost(%q) must not apply", text)
		}
	}
	assertUnchanged(t, s, before)
}

func TestAddPost_PrependsWithZeroCounters(t *testing.T) {
	s := newTestStore()
	lenBefore := len(s.Posts())

	post, ok := s.AddPost(s.CurrentUser(), "hello")
	if !ok {
		t.Fatalf("AddPost must apply for non-empty text")
	}

	posts := s.Posts()
	if len(posts) != lenBefore+1 {
		t.Fatalf("expected %d posts, got %d", lenBefore+1, len(posts))
	}
	got := posts[0]
	if got.ID != post.ID {
		t.Fatalf("new post must be at index 0, found %q there", got.ID)
	}
	if got.Likes != 0 || got.Liked || len(got.Comments) != 0 || got.ShowComments {
		t.Fatalf("new post must start clean, got %+v", got)
	}
	if got.AuthorID != domain.LocalUserID || got.AuthorName != "Вы" || got.AuthorUsername != "me" {
		t.Fatalf("author fields not copied: %+v", got)
	}
	if got.CreatedLabel != "только что" {
		t.Fatalf("unexpected created label %q", got.CreatedLabel)
	}
}

func TestAddPost_RapidCreationsGetDistinctIDs(t *testing.T) {
	// The original demo derived IDs from wall-clock millis, which collide
	// under rapid programmatic calls. The store's generator must not.
	s := New(DemoSeed(), nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, ok := s.AddPost(s.CurrentUser(), "post")
		if !ok {
			t.Fatalf("AddPost must apply")
		}
		if seen[p.ID] {
			t.Fatalf("duplicate post ID %q on iteration %d", p.ID, i)
		}
		seen[p.ID] = true
	}
}

func TestAddComment_AppendsLastWithZeroCounters(t *testing.T) {
	s := newTestStore()
	existing := len(s.Posts()[0].Comments)

	comment, ok := s.AddComment("p1", s.CurrentUser(), "nice")
	if !ok {
		t.Fatalf("AddComment must apply")
	}

	comments := s.Posts()[0].Comments
	if len(comments) != existing+1 {
		t.Fatalf("expected %d comments, got %d", existing+1, len(comments))
	}
	last := comments[len(comments)-1]
	if last.ID != comment.ID || last.Text != "nice" {
		t.Fatalf("new comment must be last, got %+v", last)
	}
	if last.Likes != 0 || last.Liked {
		t.Fatalf("new comment must start with zero likes, got %+v", last)
	}
	if last.AuthorID != domain.LocalUserID || last.AuthorName != "Вы" {
		t.Fatalf("author fields not copied: %+v", last)
	}
}

func TestAddComment_EmptyTextOrUnknownPostIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	if _, ok := s.AddComment("p1", s.CurrentUser(), "  "); ok {
		t.Fatalf("empty comment must not apply")
	}
	if _, ok := s.AddComment("missing", s.CurrentUser(), "hi"); ok {
		t.Fatalf("comment on unknown post must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestSendMessage_AppendsAndUpdatesDialogHeader(t *testing.T) {
	s := newTestStore()
	d, _ := s.Dialog("d1")
	if d.Unread != 2 {
		t.Fatalf("seed dialog d1 must start with unread=2, got %d", d.Unread)
	}
	existing := len(d.Messages)

	msg, ok := s.SendMessage("d1", "hi")
	if !ok {
		t.Fatalf("SendMessage must apply")
	}
	if !msg.FromMe {
		t.Fatalf("outgoing message must have FromMe=true")
	}
	if msg.TimeLabel != "15:04" {
		t.Fatalf("expected wall-clock label 15:04, got %q", msg.TimeLabel)
	}

	d, _ = s.Dialog("d1")
	if len(d.Messages) != existing+1 {
		t.Fatalf("expected %d messages, got %d", existing+1, len(d.Messages))
	}
	if d.Messages[len(d.Messages)-1].ID != msg.ID {
		t.Fatalf("new message must be appended last")
	}
	if d.Preview != "hi" || d.LastTime != "15:04" {
		t.Fatalf("dialog header not mirrored: preview=%q last=%q", d.Preview, d.LastTime)
	}
	if d.Unread != 0 {
		t.Fatalf("sending must reset unread, got %d", d.Unread)
	}
}

func TestSendMessage_EmptyTextOrUnknownDialogIsNoOp(t *testing.T) {
	s := newTestStore()
	before := s.capture()

	if _, ok := s.SendMessage("d1", " \t"); ok {
		t.Fatalf("empty message must not apply")
	}
	if _, ok := s.SendMessage("missing", "hi"); ok {
		t.Fatalf("message to unknown dialog must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestOpenDialog_ResetsUnreadAndStaysZero(t *testing.T) {
	s := newTestStore()

	if !s.OpenDialog("d1") {
		t.Fatalf("open on existing dialog must apply")
	}
	d, _ := s.Dialog("d1")
	if d.Unread != 0 {
		t.Fatalf("expected unread=0 after open, got %d", d.Unread)
	}

	s.OpenDialog("d1")
	d, _ = s.Dialog("d1")
	if d.Unread != 0 {
		t.Fatalf("repeated opens must stay at 0, got %d", d.Unread)
	}

	before := s.capture()
	if s.OpenDialog("missing") {
		t.Fatalf("open on unknown dialog must not apply")
	}
	assertUnchanged(t, s, before)
}

func TestUnreadTotal_SumsAcrossDialogs(t *testing.T) {
	s := newTestStore()
	if got := s.UnreadTotal(); got != 3 {
		t.Fatalf("seed unread total must be 3, got %d", got)
	}
	s.OpenDialog("d1")
	if got := s.UnreadTotal(); got != 1 {
		t.Fatalf("expected 1 after opening d1, got %d", got)
	}
}

func TestSearchUsers(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name  string
		query string
		want  []string // usernames, in order
	}{
		{"empty query returns all in seed order", "", []string{"alexgromov", "mariasova", "ivanpetrov"}},
		{"username substring", "maria", []string{"mariasova"}},
		{"username substring uppercase", "MARIA", []string{"mariasova"}},
		{"name substring cyrillic", "Сова", []string{"mariasova"}},
		{"name substring cyrillic case-insensitive", "пЕтрОв", []string{"ivanpetrov"}},
		{"shared substring matches several", "ov", []string{"alexgromov", "mariasova", "ivanpetrov"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SearchUsers(tt.query)
			var names []string
			for _, u := range got {
				names = append(names, u.Username)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Fatalf("SearchUsers(%q) = %v, want %v", tt.query, names, tt.want)
			}
		})
	}
}

func TestSearchUsers_DoesNotMutateDirectory(t *testing.T) {
	s := newTestStore()
	before := len(s.directory)
	got := s.SearchUsers("maria")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	got[0].Name = "mutated"
	if s.directory[1].Name != "Мария Сова" || len(s.directory) != before {
		t.Fatalf("directory mutated through search result")
	}
}

func TestUpdateProfile_MergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore()
	bio := "Go-разработчик"
	got := s.UpdateProfile(app.ProfileUpdate{Bio: &bio})

	if got.Bio != bio {
		t.Fatalf("bio not updated: %+v", got)
	}
	if got.Name != "Вы" || got.Username != "me" || got.Avatar != "" {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	avatar := "data:image/png;base64,AAAA"
	name := "Никита"
	got = s.UpdateProfile(app.ProfileUpdate{Name: &name, Avatar: &avatar})
	if got.Name != name || got.Avatar != avatar || got.Bio != bio {
		t.Fatalf("merge lost fields: %+v", got)
	}
	if got.ID != domain.LocalUserID {
		t.Fatalf("current user ID must never change, got %q", got.ID)
	}
}

func TestOwnPosts_FiltersByLocalAuthor(t *testing.T) {
	s := newTestStore()
	if got := s.OwnPosts(); len(got) != 0 {
		t.Fatalf("seed feed has no own posts, got %d", len(got))
	}

	s.AddPost(s.CurrentUser(), "первый")
	s.AddPost(s.CurrentUser(), "второй")

	own := s.OwnPosts()
	if len(own) != 2 {
		t.Fatalf("expected 2 own posts, got %d", len(own))
	}
	if own[0].Text != "второй" || own[1].Text != "первый" {
		t.Fatalf("own posts must keep feed order (newest first): %+v", own)
	}
}

func TestPostsAccessor_ReturnsIndependentSlice(t *testing.T) {
	s := newTestStore()
	posts := s.Posts()
	posts[0] = domain.Post{ID: "clobbered"}
	if s.Posts()[0].ID != "p1" {
		t.Fatalf("accessor must hand out a copy of the post slice")
	}
}
