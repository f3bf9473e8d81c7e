package mailer

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/solarmach/internal/config"
)

const dialTimeout = 10 * time.Second

// Submission carries one contact-form submission to the dispatcher.
type Submission struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string
}

// Dispatcher sends best-effort notification mail for new submissions.
// Send never returns an error: a submission must not fail because the
// mail server is down.
type Dispatcher struct {
	cfg     config.Mail
	timeout time.Duration
}

// New returns a dispatcher for the given mail configuration.
func New(cfg config.Mail) *Dispatcher {
	return &Dispatcher{cfg: cfg, timeout: dialTimeout}
}

// Send delivers a notification for one submission and reports whether
// delivery succeeded. Missing credentials disable delivery without an
// attempt; transport or auth errors are logged and swallowed.
func (d *Dispatcher) Send(sub Submission) bool {
	if !d.cfg.Configured() {
		return false
	}

	addr := net.JoinHostPort(d.cfg.Server, d.cfg.Port)
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: d.timeout}, "tcp", addr, &tls.Config{ServerName: d.cfg.Server})
	if err != nil {
		log.Printf("mailer: connect %s: %v", addr, err)
		return false
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, d.cfg.Server)
	if err != nil {
		log.Printf("mailer: handshake %s: %v", addr, err)
		return false
	}
	defer client.Close()

	auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Server)
	if err := client.Auth(auth); err != nil {
		log.Printf("mailer: auth as %s: %v", d.cfg.Username, err)
		return false
	}

	if err := client.Mail(d.cfg.Username); err != nil {
		log.Printf("mailer: mail from: %v", err)
		return false
	}
	if err := client.Rcpt(d.cfg.Recipient); err != nil {
		log.Printf("mailer: rcpt to %s: %v", d.cfg.Recipient, err)
		return false
	}

	wc, err := client.Data()
	if err != nil {
		log.Printf("mailer: data: %v", err)
		return false
	}
	if _, err := wc.Write([]byte(d.compose(sub))); err != nil {
		wc.Close()
		log.Printf("mailer: write: %v", err)
		return false
	}
	if err := wc.Close(); err != nil {
		log.Printf("mailer: close data: %v", err)
		return false
	}

	if err := client.Quit(); err != nil {
		log.Printf("mailer: quit: %v", err)
	}
	return true
}

func (d *Dispatcher) compose(sub Submission) string {
	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}
	interest := sub.Interest
	if interest == "" {
		interest = "Not specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", d.cfg.Username)
	fmt.Fprintf(&b, "To: %s\r\n", d.cfg.Recipient)
	fmt.Fprintf(&b, "Subject: New Contact Form Submission from %s\r\n", sub.Name)
	b.WriteString("\r\n")
	b.WriteString("New contact form submission:\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\r\n", phone)
	fmt.Fprintf(&b, "Interest: %s\r\n", interest)
	fmt.Fprintf(&b, "\r\nMessage:\r\n%s\r\n", sub.Message)
	fmt.Fprintf(&b, "\r\nSubmitted: %s\r\n", time.Now().Format("2006-01-02 15:04:05"))
	return b.String()
}
