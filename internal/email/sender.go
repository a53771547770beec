package email

import "context"

// Sender is the interface that all email providers must implement.
// This abstraction allows swapping email providers (Resend, Gmail, ...)
// without changing business logic.
type Sender interface {
	// Send delivers msg and returns the provider's message receipt.
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message represents an email message to be sent.
type Message struct {
	From     string // "Display Name <address>" of a verified sender
	To       string // recipient email address
	ReplyTo  string // optional Reply-To address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// Receipt is what a provider hands back for an accepted message.
type Receipt struct {
	ID string
}

// FormatAddress returns `name <address>`, or address alone when name is empty.
func FormatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return name + " <" + address + ">"
}
