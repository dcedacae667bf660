package service

import (
	"strings"

	"github.com/reshetovitsme/rss-digest/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/wneessen/go-mail/smtp"
)

// Strongest first.
var authPreference = []string{"CRAM-MD5", "PLAIN", "LOGIN"}

// mechanismAuth picks the first mechanism of authPreference the server
// advertises once the EHLO reply is known, then delegates to it. One value
// serves one session.
type mechanismAuth struct {
	username         string
	password         string
	host             string
	allowUnencrypted bool
	selected         smtp.Auth
}

func newMechanismAuth(username, password, host string, allowUnencrypted bool) *mechanismAuth {
	return &mechanismAuth{
		username:         username,
		password:         password,
		host:             host,
		allowUnencrypted: allowUnencrypted,
	}
}

func (a *mechanismAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	mech, ok := lo.Find(authPreference, func(mech string) bool {
		return lo.ContainsBy(server.Auth, func(offered string) bool {
			return strings.EqualFold(offered, mech)
		})
	})
	if !ok {
		return "", nil, oops.With("offered", server.Auth).Wrap(errors.ErrNoAuthMechanism)
	}

	switch mech {
	case "CRAM-MD5":
		a.selected = smtp.CRAMMD5Auth(a.username, a.password)
	case "PLAIN":
		a.selected = smtp.PlainAuth("", a.username, a.password, a.host, a.allowUnencrypted)
	default:
		a.selected = smtp.LoginAuth(a.username, a.password, a.host, a.allowUnencrypted)
	}
	return a.selected.Start(server)
}

func (a *mechanismAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if a.selected == nil {
		return nil, errors.ErrNoAuthMechanism
	}
	return a.selected.Next(fromServer, more)
}
