package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactrelay/contactrelay/internal/logger"
)

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(logger.NewWithWriter(&buf, "info", "json"))

	receipt, err := sender.Send(context.Background(), Message{To: "owner@example.com", Subject: "Nueva consulta de Ana"})
	require.NoError(t, err)

	_, err = uuid.Parse(receipt.ID)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), receipt.ID)
	assert.Contains(t, buf.String(), "Nueva consulta de Ana")
}

func TestLogSenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLogSender(logger.Nop()).Send(ctx, Message{})
	assert.ErrorIs(t, err, context.Canceled)
}
