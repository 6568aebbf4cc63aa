package domain

// Dialog is a two-party conversation between the session's user and one peer.
type Dialog struct {
	ID       string
	PeerName string
	Preview  string // Text of the most recent message
	LastTime string // Human label ("14:32", "Вчера")
	Unread   int
	Messages []ChatMessage
}

// ChatMessage lives inside exactly one dialog, appended at the end.
type ChatMessage struct {
	ID        string
	FromMe    bool
	Text      string
	TimeLabel string
}
