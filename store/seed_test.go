package store

import "testing"

func TestDemoSeed_IDsUniquePerCollection(t *testing.T) {
	seed := DemoSeed()

	assertUnique := func(scope string, ids []string) {
		t.Helper()
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if id == "" {
				t.Fatalf("%s: empty ID", scope)
			}
			if seen[id] {
				t.Fatalf("%s: duplicate ID %q", scope, id)
			}
			seen[id] = true
		}
	}

	var userIDs []string
	userIDs = append(userIDs, seed.Current.ID)
	for _, u := range seed.Directory {
		userIDs = append(userIDs, u.ID)
	}
	assertUnique("users", userIDs)

	var postIDs, commentIDs []string
	for _, p := range seed.Posts {
		postIDs = append(postIDs, p.ID)
		for _, c := range p.Comments {
			commentIDs = append(commentIDs, c.ID)
		}
	}
	assertUnique("posts", postIDs)
	assertUnique("comments", commentIDs)

	var dialogIDs, messageIDs []string
	for _, d := range seed.Dialogs {
		dialogIDs = append(dialogIDs, d.ID)
		for _, m := range d.Messages {
			messageIDs = append(messageIDs, m.ID)
		}
	}
	assertUnique("dialogs", dialogIDs)
	assertUnique("messages", messageIDs)
}

func TestDemoSeed_CurrentUserIsLocalAndOutsideDirectory(t *testing.T) {
	seed := DemoSeed()
	if !seed.Current.IsLocal() {
		t.Fatalf("current user must carry the local ID, got %q", seed.Current.ID)
	}
	for _, u := range seed.Directory {
		if u.IsLocal() {
			t.Fatalf("directory must not contain the local user: %+v", u)
		}
	}
	if len(seed.Directory) != 3 {
		t.Fatalf("demo directory must have exactly 3 users, got %d", len(seed.Directory))
	}
}

func TestDemoSeed_DialogPreviewsMatchLastMessage(t *testing.T) {
	seed := DemoSeed()
	for _, d := range seed.Dialogs {
		if len(d.Messages) == 0 {
			t.Fatalf("dialog %s has no message history", d.ID)
		}
		last := d.Messages[len(d.Messages)-1]
		if d.Preview != last.Text {
			t.Fatalf("dialog %s preview %q does not match last message %q", d.ID, d.Preview, last.Text)
		}
		if d.LastTime != last.TimeLabel {
			t.Fatalf("dialog %s time %q does not match last message %q", d.ID, d.LastTime, last.TimeLabel)
		}
	}
}

func TestDemoSeed_FreshCopyEachCall(t *testing.T) {
	a := DemoSeed()
	a.Posts[0].Likes = 9999
	a.Dialogs[0].Unread = 0

	b := DemoSeed()
	if b.Posts[0].Likes != 48 || b.Dialogs[0].Unread != 2 {
		t.Fatalf("DemoSeed must return an independent copy each call")
	}
}
