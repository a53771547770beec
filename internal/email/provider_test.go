package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/logger"
)

func TestNewSender(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	s, err := NewSender(ctx, config.EmailConfig{Provider: "log"}, log)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	s, err = NewSender(ctx, config.EmailConfig{
		Provider: "resend",
		Resend:   config.ResendEmailConfig{APIKey: "re_test"},
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	_, err = NewSender(ctx, config.EmailConfig{Provider: "resend"}, log)
	assert.ErrorContains(t, err, "API key is required")

	_, err = NewSender(ctx, config.EmailConfig{Provider: "gmail", SenderAddress: "me@example.com"}, log)
	assert.ErrorContains(t, err, "refresh token is required")

	_, err = NewSender(ctx, config.EmailConfig{Provider: "smtp"}, log)
	assert.ErrorContains(t, err, `unknown email provider "smtp"`)
}
