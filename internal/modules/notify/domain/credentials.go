package domain

import (
	"net"
	"strconv"
)

// Credentials are the SMTP settings typed into the send form. They live only
// for the duration of one send.
type Credentials struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// Addr is host:port of the SMTP server.
func (c Credentials) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogAttrs omits the password so credentials can be logged safely.
func (c Credentials) LogAttrs() []any {
	return []any{"smtp_addr", c.Addr(), "smtp_user", c.Username, "recipient", c.Recipient}
}
