package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/rss-digest/internal/modules/notify/domain"
	"github.com/reshetovitsme/rss-digest/internal/shared/config"
	"github.com/reshetovitsme/rss-digest/internal/shared/text"
	"github.com/samber/oops"
	"github.com/wneessen/go-mail"
)

// Mailer sends HTML digests over SMTP, upgrading the session with STARTTLS
type Mailer struct {
	timeout   time.Duration
	tlsPolicy mail.TLSPolicy
	logger    *slog.Logger
}

// NewMailer creates a mailer with the given session timeout and STARTTLS policy
func NewMailer(timeout time.Duration, policy config.TLSPolicy) *Mailer {
	return &Mailer{
		timeout:   timeout,
		tlsPolicy: toMailPolicy(policy),
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (m *Mailer) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// Send delivers one multipart message with a plain-text and an HTML part. It
// authenticates with the username, which is also the sender address, using
// the strongest of CRAM-MD5, PLAIN and LOGIN the server offers.
func (m *Mailer) Send(ctx context.Context, creds domain.Credentials, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(creds.Username); err != nil {
		return oops.With("smtp_user", creds.Username, "context", "invalid sender address").Wrap(err)
	}
	if err := msg.To(creds.Recipient); err != nil {
		return oops.With("recipient", creds.Recipient, "context", "invalid recipient address").Wrap(err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text.Plain(htmlBody))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	auth := newMechanismAuth(creds.Username, creds.Password, creds.Host, m.tlsPolicy == mail.NoTLS)
	client, err := mail.NewClient(creds.Host,
		mail.WithPort(creds.Port),
		mail.WithTimeout(m.timeout),
		mail.WithTLSPolicy(m.tlsPolicy),
		mail.WithSMTPAuthCustom(auth),
	)
	if err != nil {
		return oops.With(creds.LogAttrs()...).With("context", "failed to create smtp client").Wrap(err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return oops.With(creds.LogAttrs()...).Wrap(err)
	}

	m.logger.Info("Digest email sent", creds.LogAttrs()...)
	return nil
}

func toMailPolicy(policy config.TLSPolicy) mail.TLSPolicy {
	switch policy {
	case config.TLSPolicyOpportunistic:
		return mail.TLSOpportunistic
	case config.TLSPolicyNone:
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}
