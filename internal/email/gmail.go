package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig holds the configuration for the Gmail email sender.
type GmailConfig struct {
	// CredentialsJSON is the OAuth2 service account credentials JSON.
	CredentialsJSON string
	// ClientID, ClientSecret and RefreshToken are used instead of
	// CredentialsJSON for personal accounts without domain-wide delegation.
	ClientID     string
	ClientSecret string
	RefreshToken string
	// SenderAddress is the mailbox emails are sent from.
	SenderAddress string
}

// GmailSender implements Sender using the Gmail API.
type GmailSender struct {
	service       *gmail.Service
	senderAddress string
}

// NewGmailSender creates a new GmailSender.
// A service account (impersonating SenderAddress) is used when CredentialsJSON
// is set, otherwise the OAuth2 client credentials and refresh token.
func NewGmailSender(ctx context.Context, cfg GmailConfig) (*GmailSender, error) {
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	var opt option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), gmail.GmailSendScope)
		if err != nil {
			return nil, fmt.Errorf("gmail: failed to parse credentials: %w", err)
		}
		jwtConfig.Subject = cfg.SenderAddress
		opt = option.WithHTTPClient(jwtConfig.Client(ctx))
	case cfg.RefreshToken != "":
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailSendScope},
		}
		opt = option.WithHTTPClient(oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
	default:
		return nil, fmt.Errorf("gmail: credentials JSON or refresh token is required")
	}

	svc, err := gmail.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return newGmailSender(svc, cfg.SenderAddress), nil
}

func newGmailSender(svc *gmail.Service, senderAddress string) *GmailSender {
	return &GmailSender{service: svc, senderAddress: senderAddress}
}

// Send sends an email via the Gmail API.
func (g *GmailSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	raw, err := g.buildMIME(msg)
	if err != nil {
		return Receipt{}, err
	}
	gmailMsg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := g.service.Users.Messages.Send("me", gmailMsg).Context(ctx).Do()
	if err != nil {
		return Receipt{}, fmt.Errorf("gmail: failed to send email: %w", err)
	}

	return Receipt{ID: sent.Id}, nil
}

// buildMIME builds the raw RFC 822 message. The multipart boundary is random
// per message, so body text cannot close a part early.
func (g *GmailSender) buildMIME(msg Message) (string, error) {
	from := msg.From
	if from == "" {
		from = g.senderAddress
	}

	var buf bytes.Buffer
	buf.WriteString("From: " + from + "\r\n")
	buf.WriteString("To: " + msg.To + "\r\n")
	if msg.ReplyTo != "" {
		buf.WriteString("Reply-To: " + msg.ReplyTo + "\r\n")
	}
	buf.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		mw := multipart.NewWriter(&buf)
		buf.WriteString("Content-Type: multipart/alternative; boundary=" + mw.Boundary() + "\r\n\r\n")

		for _, part := range []struct{ contentType, body string }{
			{"text/plain; charset=UTF-8", msg.TextBody},
			{"text/html; charset=UTF-8", msg.HTMLBody},
		} {
			w, err := mw.CreatePart(textproto.MIMEHeader{
				"Content-Type":              {part.contentType},
				"Content-Transfer-Encoding": {"8bit"},
			})
			if err != nil {
				return "", fmt.Errorf("gmail: failed to build message: %w", err)
			}
			if _, err := io.WriteString(w, part.body); err != nil {
				return "", fmt.Errorf("gmail: failed to build message: %w", err)
			}
		}
		if err := mw.Close(); err != nil {
			return "", fmt.Errorf("gmail: failed to build message: %w", err)
		}
	case msg.HTMLBody != "":
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n" + msg.HTMLBody)
	default:
		buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n" + msg.TextBody)
	}

	return buf.String(), nil
}
