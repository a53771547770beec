package email

import (
	"context"

	"github.com/google/uuid"

	"github.com/contactrelay/contactrelay/internal/logger"
)

// LogSender implements Sender for local development.
// Messages are written to the log instead of being delivered.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a development sender that logs every message.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.WithComponent("log_sender")}
}

// Send logs msg and returns a random receipt ID.
func (s *LogSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	id := uuid.New().String()
	s.log.Info().
		Str("id", id).
		Str("from", msg.From).
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("text", msg.TextBody).
		Msg("email not delivered (log provider)")

	return Receipt{ID: id}, nil
}
