package email

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/http"

	gomail "github.com/wneessen/go-mail"
	"github.com/ryuk156/backend-AOL/internal/config"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
	"github.com/ryuk156/backend-AOL/internal/logger"
)

// Gateway delivers verification mail over SMTP. The client is constructed
// once at startup and shared across requests; every send is bounded by the
// configured client timeout, so a slow or dead SMTP server degrades to a
// delivery error instead of a hang.
type Gateway struct {
	client     *gomail.Client
	from       string
	senderName string
}

func New(pub *config.Public, priv *config.Private) (*Gateway, error) {
	opts := []gomail.Option{
		gomail.WithPort(pub.Smtp.Port),
		gomail.WithTimeout(pub.Smtp.Timeout.Std()),
	}

	if priv.SmtpUsername != "" && priv.SmtpPassword != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(priv.SmtpUsername),
			gomail.WithPassword(priv.SmtpPassword),
		)
	}

	if pub.Smtp.TLS {
		opts = append(opts,
			gomail.WithTLSConfig(&tls.Config{ServerName: pub.Smtp.Host}),
			gomail.WithTLSPolicy(gomail.TLSMandatory),
		)
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(pub.Smtp.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Gateway{
		client:     client,
		from:       pub.Smtp.From,
		senderName: pub.Smtp.SenderName,
	}, nil
}

func (g *Gateway) IsCorrect(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (g *Gateway) Send(recipientEmail, recipientName, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(g.senderName, g.from); err != nil {
		return fmt.Errorf("%w: invalid sender address", internal_errors.ErrDelivery)
	}
	if err := msg.AddToFormat(recipientName, recipientEmail); err != nil {
		return fmt.Errorf("%w: invalid recipient address", internal_errors.ErrDelivery)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := g.client.DialAndSend(msg); err != nil {
		logger.Log.Error("failed to send mail", "recipient", recipientEmail, "error", err)
		return fmt.Errorf("%w: %v", internal_errors.ErrDelivery, err)
	}
	return nil
}
