package app

import "sfera/domain"

// DialogService exposes the direct-message dialogs and their intents.
type DialogService interface {
	// Dialogs returns all dialogs in seed order.
	Dialogs() []domain.Dialog

	// Dialog returns a dialog by ID.
	Dialog(id string) (domain.Dialog, bool)

	// UnreadTotal sums unread counters across all dialogs.
	UnreadTotal() int

	// OpenDialog marks a dialog read, resetting its unread counter.
	OpenDialog(id string) bool

	// SendMessage appends an outgoing message and updates the dialog
	// preview. No-op on empty text or unknown dialog.
	SendMessage(dialogID, text string) (domain.ChatMessage, bool)
}
