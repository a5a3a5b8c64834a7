package email

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/smtp"
	"os"
	"strings"

	"github.com/domodwyer/mailyak/v3"

	"Courier/Models"
)

// Status texts written back into the spreadsheet's status column.
const (
	SentStatus   = "Sent successfully"
	DryRunStatus = "Test mode - not sent"
)

// Sender delivers one assembled message. Implementations report transport
// problems through the error value and never panic on them.
type Sender interface {
	Send(message Models.EmailMessage) (status string, err error)
}

// SMTPSender submits messages over an authenticated SMTP session, one
// session per message.
type SMTPSender struct {
	Config Models.EmailConfig
}

// Send builds the MIME message and submits it to every envelope recipient.
func (s SMTPSender) Send(message Models.EmailMessage) (string, error) {
	config := s.Config
	serverAddr := fmt.Sprintf("%s:%d", config.SMTPServer, config.SMTPPort)
	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPServer)

	var mail *mailyak.MailYak
	if config.TLSEnabled {
		tlsConfig := &tls.Config{
			ServerName:         config.SMTPServer,
			InsecureSkipVerify: config.SkipTLSCheck,
		}
		var err error
		mail, err = mailyak.NewWithTLS(serverAddr, auth, tlsConfig)
		if err != nil {
			return "", fmt.Errorf("failed to connect to SMTP server: %v", err)
		}
	} else {
		// Plain session, upgraded via STARTTLS when the server offers it.
		mail = mailyak.New(serverAddr, auth)
	}

	mail.From(config.FromEmail)
	if config.FromName != "" {
		mail.FromName(config.FromName)
	}
	mail.To(message.To...)
	if len(message.CC) > 0 {
		mail.Cc(message.CC...)
	}
	if len(message.BCC) > 0 {
		mail.Bcc(message.BCC...)
	}
	mail.Subject(message.Subject)
	if message.IsHTML {
		mail.HTML().Set(message.Body)
	} else {
		mail.Plain().Set(message.Body)
	}

	// Attachment readers must stay open until Send has consumed them.
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, attachment := range message.Attachments {
		f, err := os.Open(attachment.Path)
		if err != nil {
			return "", fmt.Errorf("failed to open attachment %s: %v", attachment.Path, err)
		}
		files = append(files, f)
		mail.Attach(attachment.Filename, f)
	}

	if err := mail.Send(); err != nil {
		return "", fmt.Errorf("failed to send email: %v", err)
	}
	return SentStatus, nil
}

// DryRunSender never opens a connection. It prints a full preview of what
// would have been sent and always reports success with a status text that
// is distinguishable from a real send.
type DryRunSender struct {
	From string
	Out  io.Writer
}

// Send writes the preview and reports success.
func (d DryRunSender) Send(message Models.EmailMessage) (string, error) {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	divider := strings.Repeat("=", 50)

	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, "TEST MODE - Email Preview")
	fmt.Fprintln(out, divider)
	fmt.Fprintf(out, "From: %s\n", d.From)
	fmt.Fprintf(out, "To: %s\n", strings.Join(message.To, ", "))
	if len(message.CC) > 0 {
		fmt.Fprintf(out, "CC: %s\n", strings.Join(message.CC, ", "))
	}
	if len(message.BCC) > 0 {
		fmt.Fprintf(out, "BCC: %s\n", strings.Join(message.BCC, ", "))
	}
	fmt.Fprintf(out, "Subject: %s\n", message.Subject)

	names := make([]string, 0, len(message.Attachments))
	for _, attachment := range message.Attachments {
		names = append(names, attachment.Filename)
	}
	attachments := "None"
	if len(names) > 0 {
		attachments = strings.Join(names, ", ")
	}
	fmt.Fprintf(out, "Attachments: %s\n", attachments)

	body := message.Body
	if len(body) > 500 {
		body = body[:500] + "..."
	}
	fmt.Fprintln(out, "\nEmail Content Preview (first 500 chars):")
	fmt.Fprintln(out, body)
	fmt.Fprintln(out, divider)

	return DryRunStatus, nil
}
