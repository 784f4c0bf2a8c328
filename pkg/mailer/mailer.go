package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

// Message is one outbound templated mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends templated account mail. Failures are surfaced to the
// caller but never roll back the store mutation that preceded them.
type Mailer interface {
	Send(msg Message) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log,
	}
}

func (m *smtpMailer) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	var body strings.Builder
	body.WriteString("From: " + m.config.From + "\r\n")
	body.WriteString("To: " + msg.To + "\r\n")
	body.WriteString("Subject: " + msg.Subject + "\r\n")
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{msg.To}, []byte(body.String())); err != nil {
		m.log.Error("Failed to send mail",
			zap.Error(err),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	m.log.Info("Mail sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
