package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog/log"
)

// SendFunc matches smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through a plain SMTP relay
type SMTPSender struct {
	addr     string
	host     string
	from     string
	username string
	password string
	send     SendFunc
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		host:     host,
		from:     from,
		username: username,
		password: password,
		send:     smtp.SendMail,
	}
}

func (s *SMTPSender) auth() smtp.Auth {
	if s.username == "" {
		return nil
	}
	return smtp.PlainAuth("", s.username, s.password, s.host)
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := Message{From: s.from, To: to, Subject: subject, Body: body}
	if err := s.send(s.addr, s.auth(), s.from, []string{to}, msg.Bytes()); err != nil {
		log.Error().Err(err).Str("to", to).Str("smtp_addr", s.addr).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
