package services

import (
	"fmt"
	"log"
	"net/smtp"

	socketio "github.com/googollee/go-socket.io"

	"peerfinder_server/models"
	"peerfinder_server/socket"
)

// Notifier delivers a notification to one participant. Best-effort
// contract: returns false on any failure, and callers never treat a false
// return as an operation error.
type Notifier interface {
	Notify(p models.Participant, subject, body, link string) bool
}

// EmailNotifier sends HTML mail over SMTP
type EmailNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Notify sends one email. Missing SMTP configuration or a missing
// recipient address counts as a delivery failure, not an error.
func (en *EmailNotifier) Notify(p models.Participant, subject, body, link string) bool {
	if en.Host == "" || p.Email == "" {
		return false
	}

	msg := fmt.Sprintf("From: PeerFinder <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		en.From, p.Email, subject, renderEmailHTML(p.Program, subject, body, link))

	var auth smtp.Auth
	if en.Username != "" {
		auth = smtp.PlainAuth("", en.Username, en.Password, en.Host)
	}
	if err := smtp.SendMail(en.Host+":"+en.Port, auth, en.From, []string{p.Email}, []byte(msg)); err != nil {
		log.Printf("Email delivery failed for %s: %v", p.Email, err)
		return false
	}
	return true
}

// renderEmailHTML wraps the body in the branded shell used by the legacy
// mailer, with an optional call-to-action button
func renderEmailHTML(program, subject, body, link string) string {
	button := ""
	if link != "" {
		button = fmt.Sprintf(`<div style="text-align: center; margin-top: 30px;"><a href="%s" style="background-color: #D4AF37; color: #091F40; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: bold; display: inline-block;">View</a></div>`, link)
	}
	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; background-color: #f4f6f8; padding: 20px;">
<div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 10px; overflow: hidden;">
	<div style="background-color: #091F40; padding: 20px; text-align: center;">
		<h1 style="color: #ffffff; margin: 0; font-size: 24px;">PeerFinder (%s)</h1>
	</div>
	<div style="padding: 30px; color: #333333;">
		<h2 style="color: #091F40;">%s</h2>
		<div style="font-size: 16px; white-space: pre-wrap;">%s</div>
		%s
	</div>
</div></body></html>`, program, subject, body, button)
}

// SocketNotifier broadcasts match events to the participant's socket room
type SocketNotifier struct {
	Server *socketio.Server
}

func (sn *SocketNotifier) Notify(p models.Participant, subject, body, link string) bool {
	if sn.Server == nil {
		return false
	}
	sn.Server.BroadcastToRoom("/", socket.Room(p.ID), "matchFound", map[string]interface{}{
		"subject": subject,
		"body":    body,
		"link":    link,
	})
	return true
}

// MultiNotifier fans a notification out to several channels. Delivery
// counts as successful when any channel succeeds.
type MultiNotifier []Notifier

func (mn MultiNotifier) Notify(p models.Participant, subject, body, link string) bool {
	delivered := false
	for _, n := range mn {
		if n.Notify(p, subject, body, link) {
			delivered = true
		}
	}
	return delivered
}
