// Package emailtest provides an in-memory email.Sender for tests.
package emailtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/contactrelay/contactrelay/internal/email"
)

// Recorder records every message it is asked to send.
type Recorder struct {
	mu   sync.Mutex
	sent []email.Message

	// Err, when set, is returned from Send and nothing is recorded.
	Err error
	// ID is returned as the receipt ID; defaults to "msg-<n>".
	ID string
}

// Send implements email.Sender.
func (r *Recorder) Send(ctx context.Context, msg email.Message) (email.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return email.Receipt{}, r.Err
	}
	r.sent = append(r.sent, msg)

	id := r.ID
	if id == "" {
		id = fmt.Sprintf("msg-%d", len(r.sent))
	}
	return email.Receipt{ID: id}, nil
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []email.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]email.Message(nil), r.sent...)
}
